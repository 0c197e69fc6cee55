// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Sign возвращает +1 или -1 с равной вероятностью.
// Используется для выбора направления вращения обломков.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}
