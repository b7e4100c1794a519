package ts

import (
	"context"
	"math"
	"math/rand"
	"time"

	"golang.org/x/xerrors"

	"singleMachine/internal/carlier"
	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
	"singleMachine/internal/schrage"
)

// Solver - табу-поиск по порядкам работ, стартующий с расписания Шраге.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый TS-солвер с валидацией конфигурации.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, xerrors.New("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

type move struct {
	from, to int
	job      int
	cost     int
}

func (s *Solver) Solve(ctx context.Context, inst *rpq.Instance) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, xerrors.New("генератор случайных чисел не инициализирован (nil)")
	}

	eval, err := rpq.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Len()

	maxIter := s.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = s.Cfg.IterationsPerJob * n
	}

	curr, err := schrage.Order(inst)
	if err != nil {
		return opt.Result{}, err
	}
	cand := make([]int, n)

	currCost := eval.MustMakespan(curr)
	evals := 1

	best := make([]int, n)
	copy(best, curr)
	bestCost := currCost

	// Ёмкость с запасом относительно длины табу
	tabu := newTabuList(max(32, (s.Cfg.TabuTenure+s.Cfg.TabuTenureRand)*4))

	iter := 0
	for ; iter < maxIter && n > 1; iter++ {
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Schedule:    eval.Order(best),
				Makespan:    bestCost,
				Evaluations: evals,
				Iterations:  iter,
				Duration:    time.Since(start),
				Meta: map[string]any{
					"stopped": "context",
				},
			}, err
		}

		lo, hi := 0, n-1
		if s.Cfg.CriticalMoves {
			lo, hi = s.criticalRange(eval, curr, currCost)
		}

		// Лучший допустимый ход и запасной (лучший без учёта табу)
		chosen := move{from: -1, cost: math.MaxInt}
		fallback := move{from: -1, cost: math.MaxInt}

		for k := 0; k < s.Cfg.NeighborsPerIter; k++ {
			from := lo + s.Rng.Intn(hi-lo+1)
			to := s.Rng.Intn(n - 1)
			if to >= from {
				to++
			}
			m := move{from: from, to: to, job: curr[from]}

			copy(cand, curr)
			s.apply(cand, from, to)
			m.cost = eval.MustMakespan(cand)
			evals++

			if m.cost < fallback.cost {
				fallback = m
			}

			// критерий аспирации
			if tabu.IsTabu(moveKey(m.job, from, to), iter) && m.cost >= bestCost {
				continue
			}
			if m.cost < chosen.cost {
				chosen = m
			}
		}

		if chosen.from < 0 {
			chosen = fallback
		}
		if chosen.from < 0 {
			break
		}

		s.apply(curr, chosen.from, chosen.to)
		currCost = chosen.cost

		// Запрет обратного хода
		tenure := s.Cfg.TabuTenure
		if s.Cfg.TabuTenureRand > 0 {
			tenure += s.Rng.Intn(s.Cfg.TabuTenureRand + 1)
		}
		tabu.Add(moveKey(chosen.job, chosen.to, chosen.from), iter+tenure)

		if currCost < bestCost {
			bestCost = currCost
			copy(best, curr)
		}
	}

	return opt.Result{
		Schedule:    eval.Order(best),
		Makespan:    bestCost,
		Evaluations: evals,
		Iterations:  iter,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"tabu_tenure":        s.Cfg.TabuTenure,
			"tabu_tenure_rand":   s.Cfg.TabuTenureRand,
			"neighbors_per_iter": s.Cfg.NeighborsPerIter,
			"neighborhood":       string(s.Cfg.Neighborhood),
			"critical_moves":     s.Cfg.CriticalMoves,
		},
	}, nil
}

func (s *Solver) apply(p []int, from, to int) {
	if s.Cfg.Neighborhood == NeighborhoodSwap {
		applySwap(p, from, to)
		return
	}
	applyInsert(p, from, to)
}

// criticalRange возвращает позиции критического блока текущего порядка.
// Если блок не найден, перемещаться может любая работа.
func (s *Solver) criticalRange(eval *rpq.Evaluator, perm []int, cmax int) (int, int) {
	b, err := carlier.FindBlock(eval.Order(perm), cmax)
	if err != nil {
		return 0, len(perm) - 1
	}
	return b.Start, b.End
}
