package opt

import (
	"context"
	"time"

	"singleMachine/internal/rpq"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go singleMachine/internal/opt Optimizer

type Optimizer interface {
	Solve(ctx context.Context, inst *rpq.Instance) (Result, error)
}

// Result - итог работы алгоритма. Нулевые LowerBound/UpperBound означают,
// что алгоритм соответствующую оценку не вычислял; пустой Schedule - что
// алгоритм не возвращает порядок.
type Result struct {
	Schedule    rpq.Jobs
	Makespan    int
	LowerBound  int
	UpperBound  int
	Nodes       int
	Pruned      int
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}
