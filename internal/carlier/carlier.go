package carlier

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"singleMachine/internal/rpq"
	"singleMachine/internal/schrage"
)

// Search уменьшает *best до оптимального Cmax для jobs (алгоритм Карлье).
// Перед первым вызовом *best должен содержать заведомо большое значение,
// например math.MaxInt. Набор jobs не изменяется.
func Search(jobs rpq.Jobs, best *int) error {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	_, err := run(context.Background(), cfg, jobs, best)
	return err
}

// Stats - статистика одного поиска.
type Stats struct {
	// Cmax первого расписания Шраге.
	UpperBound int
	Nodes      int
	Pruned     int
	MaxDepth   int
}

func run(ctx context.Context, cfg Config, jobs rpq.Jobs, best *int) (Stats, error) {
	if best == nil {
		return Stats{}, ErrNilBound
	}
	if err := jobs.Validate(); err != nil {
		return Stats{}, err
	}
	s := &searcher{
		ctx:      ctx,
		log:      cfg.Logger,
		maxDepth: cfg.depthLimit(len(jobs)),
		best:     best,
	}
	err := s.search(jobs, 0)
	return s.stats, err
}

type searcher struct {
	ctx      context.Context
	log      *logrus.Entry
	maxDepth int
	best     *int
	stats    Stats
}

func (s *searcher) search(jobs rpq.Jobs, depth int) error {
	if depth > s.maxDepth {
		return xerrors.Errorf("глубина %d > %d: %w", depth, s.maxDepth, ErrDepthExceeded)
	}
	if err := s.ctx.Err(); err != nil {
		return err
	}
	s.stats.Nodes++
	s.stats.MaxDepth = max(s.stats.MaxDepth, depth)

	sched, ub, err := schrage.Dispatch(jobs)
	if err != nil {
		return err
	}
	if depth == 0 {
		s.stats.UpperBound = ub
	}
	if ub < *s.best {
		*s.best = ub
	}

	pi := sched.Jobs
	blk, err := FindBlock(pi, ub)
	if err != nil {
		return err
	}

	log := s.log.WithFields(logrus.Fields{
		"depth":       depth,
		"upper_bound": ub,
		"best":        *s.best,
		"block":       blk.String(),
	})
	if !blk.HasCritical() {
		log.Debug("критическая работа не найдена, ветвь закрыта")
		return nil
	}

	minRelease, minTail, sumDuration := blk.suffix(pi)
	c := blk.Critical

	// c выполняется после всех работ блока (c, b].
	if err := s.branch(log, pi, c, func(j *rpq.Job) {
		j.Release = max(j.Release, minRelease+sumDuration)
	}, depth); err != nil {
		return err
	}

	// c выполняется перед всеми работами блока (c, b].
	return s.branch(log, pi, c, func(j *rpq.Job) {
		j.Tail = max(j.Tail, sumDuration+minTail)
	}, depth)
}

// branch ужесточает ограничение работы pi[c], проверяет нижнюю оценку и,
// если ветвь перспективна, спускается в неё. pi[c] восстанавливается при
// любом выходе.
func (s *searcher) branch(log *logrus.Entry, pi rpq.Jobs, c int, tighten func(*rpq.Job), depth int) error {
	defer pin(&pi[c])()
	tighten(&pi[c])

	lb, err := schrage.LowerBound(pi)
	if err != nil {
		return err
	}
	if lb >= *s.best {
		s.stats.Pruned++
		log.WithFields(logrus.Fields{"lower_bound": lb, "job": pi[c].String()}).Debug("ветвь отсечена")
		return nil
	}
	return s.search(pi, depth+1)
}

// pin запоминает работу и возвращает функцию, восстанавливающую её значение.
func pin(j *rpq.Job) (restore func()) {
	saved := *j
	return func() { *j = saved }
}
