package rpq

import "golang.org/x/xerrors"

// Schedule - расписание: порядок Jobs и есть порядок диспетчеризации на машине.
// Cmax всегда пересчитывается, кэширования нет.
type Schedule struct {
	Jobs Jobs
}

func NewSchedule(order Jobs) Schedule {
	return Schedule{Jobs: order}
}

// Completions возвращает моменты завершения обработки каждой работы
// (без учёта времени остывания).
func (s Schedule) Completions() []int {
	completions := make([]int, len(s.Jobs))
	t := 0
	for i, j := range s.Jobs {
		t = max(t, j.Release) + j.Duration
		completions[i] = t
	}
	return completions
}

// Makespan возвращает Cmax = max(C_j + q_j) для фиксированного порядка.
func (s Schedule) Makespan() (int, error) {
	if len(s.Jobs) == 0 {
		return 0, ErrEmptySchedule
	}
	cmax := 0
	for i, c := range s.Completions() {
		cmax = max(cmax, c+s.Jobs[i].Tail)
	}
	return cmax, nil
}

func (s Schedule) MustMakespan() int {
	ms, err := s.Makespan()
	if err != nil {
		panic(err)
	}
	return ms
}

// Len возвращает число работ в расписании.
func (s Schedule) Len() int { return len(s.Jobs) }

func (s Schedule) Equal(other Schedule) bool {
	return s.Jobs.Equal(other.Jobs)
}

// Evaluator вычисляет Cmax для перестановок индексов работ экземпляра.
type Evaluator struct {
	inst  *Instance
	order Jobs
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst, order: make(Jobs, inst.Len())}, nil
}

// Makespan возвращает Cmax порядка perm, где perm[k] - индекс работы в inst.Jobs.
func (e *Evaluator) Makespan(perm []int) (int, error) {
	if e == nil || e.inst == nil {
		return 0, xerrors.New("evaluator не инициализирован (nil)")
	}
	if err := ValidateOrder(perm, e.inst.Len()); err != nil {
		return 0, err
	}
	for k, idx := range perm {
		e.order[k] = e.inst.Jobs[idx]
	}
	return NewSchedule(e.order).Makespan()
}

func (e *Evaluator) MustMakespan(perm []int) int {
	ms, err := e.Makespan(perm)
	if err != nil {
		panic(err)
	}
	return ms
}

// Order возвращает работы экземпляра в порядке perm.
func (e *Evaluator) Order(perm []int) Jobs {
	out := make(Jobs, len(perm))
	for k, idx := range perm {
		out[k] = e.inst.Jobs[idx]
	}
	return out
}
