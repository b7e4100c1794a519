package sa

import (
	"context"
	"math"
	"math/rand"
	"time"

	"golang.org/x/xerrors"

	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
	"singleMachine/internal/schrage"
)

// Solver - структура реализации алгоритма имитации отжига
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

// Solve - основной цикл отжига.
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

	// Текущее и кандидатное решения
	curr, err := s.initial(inst)
	if err != nil {
		return opt.Result{}, err
	}
	cand := make([]int, n)

	currCost := eval.MustMakespan(curr)
	bestCost := currCost
	best := make([]int, n)
	copy(best, curr)

	evals := 1
	T := s.Cfg.InitialTemp

	iter := 0
	for ; iter < maxIter && T > s.Cfg.FinalTemp; iter++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Schedule:    eval.Order(best),
				Makespan:    bestCost,
				Evaluations: evals,
				Iterations:  iter,
				Duration:    time.Since(start),
				Meta: map[string]any{
					"stopped": "context",
					"T":       T,
				},
			}, err
		}

		copy(cand, curr)
		switch s.Cfg.Neighborhood {
		case NeighborhoodInsert:
			neighborInsert(cand, s.Rng)
		default:
			neighborSwap(cand, s.Rng)
		}

		candCost := eval.MustMakespan(cand)
		evals++

		delta := candCost - currCost
		accept := delta <= 0
		if !accept {
			// Критерий Метрополиса
			accept = s.Rng.Float64() < math.Exp(-float64(delta)/T)
		}

		if accept {
			curr, cand = cand, curr
			currCost = candCost

			if currCost < bestCost {
				bestCost = currCost
				copy(best, curr)
			}
		}

		T *= s.Cfg.Alpha
	}

	return opt.Result{
		Schedule:    eval.Order(best),
		Makespan:    bestCost,
		Evaluations: evals,
		Iterations:  iter,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"initial_temp": s.Cfg.InitialTemp,
			"final_temp":   s.Cfg.FinalTemp,
			"alpha":        s.Cfg.Alpha,
			"neighborhood": string(s.Cfg.Neighborhood),
			"init":         string(s.Cfg.Init),
		},
	}, nil
}

// initial строит начальную перестановку индексов.
func (s *Solver) initial(inst *rpq.Instance) ([]int, error) {
	if s.Cfg.Init == InitRandom {
		p := rpq.IdentityOrder(inst.Len())
		rpq.ShuffleOrder(p, s.Rng)
		return p, nil
	}
	return schrage.Order(inst)
}

// Формирует соседнее решение путём обмена двух случайных позиций.
func neighborSwap(p []int, rng *rand.Rand) {
	if len(p) < 2 {
		return
	}
	i := rng.Intn(len(p))
	j := rng.Intn(len(p) - 1)
	if j >= i {
		j++
	}
	p[i], p[j] = p[j], p[i]
}

// Формирует соседнее решение путём извлечения элемента из позиции i и вставки его в позицию j.
func neighborInsert(p []int, rng *rand.Rand) {
	n := len(p)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	val := p[i]
	if i < j {
		copy(p[i:j], p[i+1:j+1])
	} else {
		copy(p[j+1:i+1], p[j:i])
	}
	p[j] = val
}
