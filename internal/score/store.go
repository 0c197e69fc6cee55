// internal/score/store.go
package score

import (
	"encoding/json"
	"fmt"
	"os"
)

// record — формат файла рекорда.
type record struct {
	Best int `json:"best"`
}

// Store хранит лучший счёт и умеет читать/писать его в JSON-файл
// рядом с бинарником. Ошибки ввода-вывода не фатальны для игры:
// вызывающий логирует их и продолжает с нулевым рекордом.
type Store struct {
	path string
	best int
}

// NewStore создаёт хранилище для указанного пути, ничего не читая.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Best возвращает текущий известный рекорд.
func (s *Store) Best() int { return s.best }

// Load читает рекорд с диска. Отсутствующий файл — не ошибка.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read high score file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	s.best = rec.Best
	return nil
}

// Save пишет текущий рекорд на диск.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(record{Best: s.best}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	return nil
}

// Update поднимает рекорд, если новый счёт выше, и сохраняет его.
// Возвращает true, когда рекорд побит.
func (s *Store) Update(score int) (bool, error) {
	if score <= s.best {
		return false, nil
	}
	s.best = score
	return true, s.Save()
}
