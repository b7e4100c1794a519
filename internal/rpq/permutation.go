package rpq

import (
	"math/rand"

	"golang.org/x/xerrors"
)

// ValidatePermutation проверяет, что расписание содержит ровно те же работы,
// что и входной набор (как мультимножество троек).
func ValidatePermutation(schedule, set Jobs) error {
	if len(schedule) != len(set) {
		return xerrors.Errorf("длина расписания должна быть %d (получено %d): %w", len(set), len(schedule), ErrNotPermutation)
	}
	remaining := make(map[Job]int, len(set))
	for _, j := range set {
		remaining[j]++
	}
	for i, j := range schedule {
		if remaining[j] == 0 {
			return xerrors.Errorf("лишняя работа %v в позиции %d: %w", j, i, ErrNotPermutation)
		}
		remaining[j]--
	}
	return nil
}

// ValidateOrder проверяет, что perm - перестановка индексов [0, n).
func ValidateOrder(perm []int, n int) error {
	if len(perm) != n {
		return xerrors.Errorf("длина перестановки должна быть %d (получено %d): %w", n, len(perm), ErrNotPermutation)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return xerrors.Errorf("perm[%d]=%d вне диапазона [0,%d): %w", i, v, n, ErrNotPermutation)
		}
		if seen[v] {
			return xerrors.Errorf("повторный индекс работы %d: %w", v, ErrNotPermutation)
		}
		seen[v] = true
	}
	return nil
}

// IndexOrder сопоставляет расписанию order индексы работ набора set.
// Одинаковые работы получают индексы в порядке их следования в set.
func IndexOrder(order, set Jobs) ([]int, error) {
	if err := ValidatePermutation(order, set); err != nil {
		return nil, err
	}
	free := make(map[Job][]int, len(set))
	for i, j := range set {
		free[j] = append(free[j], i)
	}
	perm := make([]int, len(order))
	for k, j := range order {
		perm[k] = free[j][0]
		free[j] = free[j][1:]
	}
	return perm, nil
}

// IdentityOrder возвращает перестановку [0, 1, ..., n-1].
func IdentityOrder(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// ShuffleOrder перемешивает перестановку на месте (Фишер-Йетс).
func ShuffleOrder(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}
