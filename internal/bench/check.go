package bench

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"

	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
)

var (
	// ErrBoundViolated - результат вышел за собственные оценки алгоритма.
	ErrBoundViolated = xerrors.New("нарушено LB <= Cmax <= UB")

	// ErrMakespanMismatch - заявленный Cmax не совпадает с Cmax возвращённого расписания.
	ErrMakespanMismatch = xerrors.New("Cmax расписания не совпадает с заявленным")
)

// CheckResult проверяет результат одного запуска на экземпляре inst.
// Пустое расписание и нулевые оценки не проверяются.
func CheckResult(inst *rpq.Instance, res opt.Result) error {
	var err error

	if len(res.Schedule) > 0 {
		if perr := rpq.ValidatePermutation(res.Schedule, inst.Jobs); perr != nil {
			err = multierror.Append(err, perr)
		} else if ms := rpq.NewSchedule(res.Schedule).MustMakespan(); ms != res.Makespan {
			err = multierror.Append(err, xerrors.Errorf("%d != %d: %w", ms, res.Makespan, ErrMakespanMismatch))
		}
	}
	if res.LowerBound > 0 && res.LowerBound > res.Makespan {
		err = multierror.Append(err, xerrors.Errorf("LB=%d > Cmax=%d: %w", res.LowerBound, res.Makespan, ErrBoundViolated))
	}
	if res.UpperBound > 0 && res.Makespan > res.UpperBound {
		err = multierror.Append(err, xerrors.Errorf("Cmax=%d > UB=%d: %w", res.Makespan, res.UpperBound, ErrBoundViolated))
	}
	return err
}
