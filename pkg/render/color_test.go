// pkg/render/color_test.go
package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-tower-stacker/internal/config"
)

func TestBlockColorIsStablePerTag(t *testing.T) {
	for tag := 0; tag < 20; tag++ {
		assert.Equal(t, BlockColor(tag), BlockColor(tag))
		assert.Equal(t, config.BlockPalette[tag%len(config.BlockPalette)], BlockColor(tag))
	}
	// Отрицательная метка не должна ронять отрисовку.
	assert.NotPanics(t, func() { BlockColor(-3) })
}

func TestDarkenColorKeepsAlpha(t *testing.T) {
	c := config.BlockPalette[0]
	d := DarkenColor(c, 0.5)
	assert.Equal(t, c.A, d.A)
	assert.Less(t, d.R, c.R)
}
