package schrage

import (
	"context"
	"time"

	"golang.org/x/xerrors"

	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
)

// Solver - эвристика Шраге как opt.Optimizer. Помимо расписания сообщает
// нижнюю оценку, полученную алгоритмом Шраге с прерываниями.
type Solver struct{}

func New() *Solver { return &Solver{} }

func (s *Solver) Solve(ctx context.Context, inst *rpq.Instance) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return opt.Result{}, err
	}

	sched, cmax, err := Dispatch(inst.Jobs)
	if err != nil {
		return opt.Result{}, xerrors.Errorf("schrage: %w", err)
	}
	lb, err := LowerBound(inst.Jobs)
	if err != nil {
		return opt.Result{}, xerrors.Errorf("schrage с прерываниями: %w", err)
	}

	return opt.Result{
		Schedule:    sched.Jobs,
		Makespan:    cmax,
		LowerBound:  lb,
		UpperBound:  cmax,
		Evaluations: 1,
		Iterations:  inst.Len(),
		Duration:    time.Since(start),
		Meta: map[string]any{
			"gap": cmax - lb,
		},
	}, nil
}

// Order возвращает порядок Шраге как перестановку индексов inst.Jobs.
// Служит начальным решением локального поиска.
func Order(inst *rpq.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	sched, _, err := Dispatch(inst.Jobs)
	if err != nil {
		return nil, err
	}
	return rpq.IndexOrder(sched.Jobs, inst.Jobs)
}
