package carlier

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
	"singleMachine/internal/schrage"
)

// Solver - точный алгоритм Карлье как opt.Optimizer. Возвращает
// оптимальный Cmax без самого порядка работ.
type Solver struct {
	Cfg Config
}

func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, xerrors.Errorf("carlier: ошибка конфигурации: %w", err)
	}
	return &Solver{Cfg: cfg}, nil
}

func (s *Solver) Solve(ctx context.Context, inst *rpq.Instance) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}

	lb, err := schrage.LowerBound(inst.Jobs)
	if err != nil {
		return opt.Result{}, err
	}

	log := s.Cfg.Logger.WithFields(logrus.Fields{
		"instance": inst.Name,
		"jobs":     inst.Len(),
	})
	log.WithField("lower_bound", lb).Info("запуск метода ветвей и границ")

	best := math.MaxInt
	stats, err := run(ctx, s.Cfg, inst.Jobs, &best)
	res := opt.Result{
		Makespan:   best,
		LowerBound: lb,
		UpperBound: stats.UpperBound,
		Nodes:      stats.Nodes,
		Pruned:     stats.Pruned,
		Duration:   time.Since(start),
		Meta: map[string]any{
			"max_depth": stats.MaxDepth,
		},
	}
	if err != nil {
		res.Meta["stopped"] = err.Error()
		return res, err
	}

	log.WithFields(logrus.Fields{
		"makespan": best,
		"nodes":    stats.Nodes,
		"pruned":   stats.Pruned,
		"elapsed":  res.Duration.String(),
	}).Info("поиск завершён")
	return res, nil
}
