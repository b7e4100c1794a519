package rpq

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Job описывает работу тройкой (r, p, q):
// Release - момент готовности, Duration - время обработки,
// Tail - время остывания после обработки.
type Job struct {
	Release  int `yaml:"r"`
	Duration int `yaml:"p"`
	Tail     int `yaml:"q"`
}

// NewJob создаёт работу и проверяет её параметры.
func NewJob(release, duration, tail int) (Job, error) {
	j := Job{Release: release, Duration: duration, Tail: tail}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (j Job) Validate() error {
	if j.Duration <= 0 {
		return xerrors.Errorf("%v: %w", j, ErrNonPositiveDuration)
	}
	if j.Release < 0 || j.Tail < 0 {
		return xerrors.Errorf("%v: %w", j, ErrNegativeTime)
	}
	return nil
}

// TotalTime возвращает r + p + q.
func (j Job) TotalTime() int {
	return j.Release + j.Duration + j.Tail
}

func (j Job) String() string {
	return fmt.Sprintf("(%d, %d, %d)", j.Release, j.Duration, j.Tail)
}

// Field выбирает поле работы для сортировки.
type Field int

const (
	ByRelease Field = iota
	ByDuration
	ByTail
)

func (f Field) key(j Job) int {
	switch f {
	case ByDuration:
		return j.Duration
	case ByTail:
		return j.Tail
	default:
		return j.Release
	}
}

// Jobs - упорядоченный набор работ. Один и тот же тип используется и для
// входного набора, и для расписания (порядок = порядок диспетчеризации).
type Jobs []Job

// Validate проверяет все работы набора и собирает все найденные нарушения.
func (js Jobs) Validate() error {
	if len(js) == 0 {
		return ErrEmptyInput
	}
	var err error
	for i, j := range js {
		if jerr := j.Validate(); jerr != nil {
			err = multierror.Append(err, xerrors.Errorf("работа %d: %w", i, jerr))
		}
	}
	return err
}

// SortedBy возвращает новую последовательность, устойчиво отсортированную по полю f.
// Порядок равных элементов сохраняется.
func (js Jobs) SortedBy(f Field) Jobs {
	out := js.Clone()
	slices.SortStableFunc(out, func(a, b Job) int {
		return cmp.Compare(f.key(a), f.key(b))
	})
	return out
}

func (js Jobs) Clone() Jobs {
	if js == nil {
		return Jobs{}
	}
	out := make(Jobs, len(js))
	copy(out, js)
	return out
}

// Equal сравнивает наборы поэлементно, с учётом порядка.
func (js Jobs) Equal(other Jobs) bool {
	return slices.Equal(js, other)
}

// TotalDuration возвращает сумму длительностей всех работ.
func (js Jobs) TotalDuration() int {
	sum := 0
	for _, j := range js {
		sum += j.Duration
	}
	return sum
}

func (js Jobs) String() string {
	var sb strings.Builder
	for _, j := range js {
		sb.WriteString(j.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
