// internal/score/store_test.go
package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "highscore.json"))
	require.NoError(t, s.Load())
	assert.Zero(t, s.Best())
}

func TestUpdateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")

	s := NewStore(path)
	improved, err := s.Update(12)
	require.NoError(t, err)
	assert.True(t, improved)

	// Меньший счёт рекорд не трогает и на диск не пишет.
	improved, err = s.Update(5)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, 12, s.Best())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 12, reloaded.Best())
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	s := NewStore(path)
	require.NoError(t, s.Save())

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	assert.Error(t, NewStore(path).Load())
}
