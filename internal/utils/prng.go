// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// Roller выдаёт равномерно распределённое целое из [lo, hi] включительно.
// Через него идут все случайные решения симуляции.
type Roller interface {
	Roll(lo, hi int) int
}

// PRNGService: обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Roll возвращает случайное целое число в диапазоне [lo, hi].
func (s *PRNGService) Roll(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// RollFloat возвращает целый бросок в границах [lo, hi], заданных дробными
// координатами. Используется для случайных позиций на экране.
func RollFloat(r Roller, lo, hi float64) float64 {
	return float64(r.Roll(int(math.Ceil(lo)), int(math.Floor(hi))))
}

// SequenceRoller выдаёт заранее заданные значения по порядку, прижимая
// их к [lo, hi]. Когда последовательность кончилась, возвращает hi: при
// пороговых значениях из config это «ничего не происходит».
type SequenceRoller struct {
	values []int
	calls  int
}

func NewSequenceRoller(values ...int) *SequenceRoller {
	return &SequenceRoller{values: values}
}

func (r *SequenceRoller) Roll(lo, hi int) int {
	r.calls++
	if len(r.values) == 0 {
		return hi
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Push добавляет значения в конец последовательности.
func (r *SequenceRoller) Push(values ...int) {
	r.values = append(r.values, values...)
}

// Calls возвращает число сделанных бросков.
func (r *SequenceRoller) Calls() int {
	return r.calls
}

// Remaining возвращает число неиспользованных значений.
func (r *SequenceRoller) Remaining() int {
	return len(r.values)
}
