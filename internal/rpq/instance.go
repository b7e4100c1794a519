package rpq

import (
	"math/rand"

	"golang.org/x/xerrors"
)

// Instance - экземпляр задачи 1|r_j,q_j|Cmax.
type Instance struct {
	Name string `yaml:"name"`
	Jobs Jobs   `yaml:"jobs"`
}

func NewInstance(name string, jobs Jobs) (*Instance, error) {
	inst := &Instance{Name: name, Jobs: jobs}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return xerrors.New("экземпляр не задан (nil)")
	}
	return inst.Jobs.Validate()
}

// Len возвращает число работ.
func (inst *Instance) Len() int { return len(inst.Jobs) }

// Bounds задаёт диапазоны [Min, Max] для генерации случайных r, p, q.
type Bounds struct {
	MinRelease, MaxRelease   int
	MinDuration, MaxDuration int
	MinTail, MaxTail         int
}

// DefaultBounds - диапазоны, близкие к классическим тестовым наборам Карлье.
func DefaultBounds(n int) Bounds {
	return Bounds{
		MinRelease: 0, MaxRelease: 30 * n,
		MinDuration: 1, MaxDuration: 99,
		MinTail: 0, MaxTail: 35 * n,
	}
}

func (b Bounds) validate() error {
	if b.MinDuration <= 0 {
		return xerrors.Errorf("MinDuration=%d: %w", b.MinDuration, ErrNonPositiveDuration)
	}
	if b.MinRelease < 0 || b.MinTail < 0 {
		return ErrNegativeTime
	}
	if b.MaxRelease < b.MinRelease || b.MaxDuration < b.MinDuration || b.MaxTail < b.MinTail {
		return xerrors.New("некорректные границы времён")
	}
	return nil
}

// RandomInstance генерирует экземпляр из n работ со случайными r, p, q.
func RandomInstance(n int, b Bounds, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if err := b.validate(); err != nil {
		panic(err)
	}
	jobs := make(Jobs, n)
	for i := range jobs {
		jobs[i] = Job{
			Release:  uniform(rng, b.MinRelease, b.MaxRelease),
			Duration: uniform(rng, b.MinDuration, b.MaxDuration),
			Tail:     uniform(rng, b.MinTail, b.MaxTail),
		}
	}
	inst, err := NewInstance("random", jobs)
	if err != nil {
		panic(err)
	}
	return inst
}

func uniform(rng *rand.Rand, lo, hi int) int {
	span := hi - lo + 1
	if span <= 1 {
		return lo
	}
	return lo + rng.Intn(span)
}
