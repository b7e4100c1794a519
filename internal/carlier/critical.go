package carlier

import (
	"fmt"
	"math"

	"golang.org/x/xerrors"

	"singleMachine/internal/rpq"
)

// Block описывает критический блок расписания pi: работы Start..End
// выполняются без простоев и определяют Cmax. Critical - индекс
// работы c внутри блока или -1, если такой работы нет.
type Block struct {
	Start    int
	End      int
	Critical int
}

func (b Block) String() string {
	return fmt.Sprintf("[%d,%d] c=%d", b.Start, b.End, b.Critical)
}

// HasCritical сообщает, найдена ли работа c. Без неё порядок внутри
// блока уже оптимален и ветвиться не на чем.
func (b Block) HasCritical() bool { return b.Critical >= 0 }

// FindBlock находит критический блок расписания pi с Cmax = cmax.
func FindBlock(pi rpq.Jobs, cmax int) (Block, error) {
	if len(pi) == 0 {
		return Block{}, rpq.ErrEmptySchedule
	}
	end := criticalEnd(pi, cmax)
	if end < 0 {
		return Block{}, xerrors.Errorf("Cmax=%d: %w", cmax, ErrNoCriticalBlock)
	}
	start := criticalStart(pi, cmax, end)
	if start < 0 {
		return Block{}, xerrors.Errorf("Cmax=%d, b=%d: %w", cmax, end, ErrNoCriticalBlock)
	}
	return Block{
		Start:    start,
		End:      end,
		Critical: criticalJob(pi, start, end),
	}, nil
}

// criticalEnd возвращает последний индекс b, для которого C_b + q_b = Cmax.
func criticalEnd(pi rpq.Jobs, cmax int) int {
	end := -1
	for i, c := range rpq.NewSchedule(pi).Completions() {
		if c+pi[i].Tail == cmax {
			end = i
		}
	}
	return end
}

// criticalStart возвращает первый индекс a <= b, для которого
// r_a + sum(p_a..p_b) + q_b = Cmax.
func criticalStart(pi rpq.Jobs, cmax, end int) int {
	sum := pi[end].Tail
	for i := 0; i <= end; i++ {
		sum += pi[i].Duration
	}
	for i := 0; i <= end; i++ {
		if pi[i].Release+sum == cmax {
			return i
		}
		sum -= pi[i].Duration
	}
	return -1
}

// criticalJob возвращает наибольший индекс c из [a, b] с q_c < q_b или -1.
func criticalJob(pi rpq.Jobs, start, end int) int {
	c := -1
	for i := start; i <= end; i++ {
		if pi[i].Tail < pi[end].Tail {
			c = i
		}
	}
	return c
}

// suffix возвращает min r, min q и сумму p по работам (c, b].
func (b Block) suffix(pi rpq.Jobs) (minRelease, minTail, sumDuration int) {
	minRelease, minTail = math.MaxInt, math.MaxInt
	for _, j := range pi[b.Critical+1 : b.End+1] {
		minRelease = min(minRelease, j.Release)
		minTail = min(minTail, j.Tail)
		sumDuration += j.Duration
	}
	return minRelease, minTail, sumDuration
}
