package bench

import (
	"context"
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Optimizer
}

type Case struct {
	Jobs         int
	InstanceSeed int64
}

type Record struct {
	RunID string
	Algo  string
	Jobs  int
	Runs  int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest int
	MakespanMean float64
	MakespanStd  float64

	// Оценки последнего запуска; 0, если алгоритм их не считает.
	LowerBound int
	UpperBound int
	NodesMean  float64
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout

	// RunID помечает все записи одного запуска бенчмарка.
	RunID string

	Clock  clock.Clock
	Logger *logrus.Entry
}

func (r *Runner) validate() error {
	if r.Runs <= 0 {
		return xerrors.Errorf("количество запусков должно быть > 0 (получено %d)", r.Runs)
	}
	if r.PerRunTimeout < 0 {
		return xerrors.Errorf("отрицательный таймаут запуска %v", r.PerRunTimeout)
	}
	if r.RunID == "" {
		r.RunID = uuid.New().String()
	}
	if r.Clock == nil {
		r.Clock = clock.WallClock
	}
	if r.Logger == nil {
		r.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}
	return nil
}

func (r *Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	if err := r.validate(); err != nil {
		return Record{}, err
	}
	if c.Jobs <= 0 {
		return Record{}, xerrors.Errorf("случай %d работ: %w", c.Jobs, rpq.ErrEmptyInput)
	}

	inst := rpq.RandomInstance(c.Jobs, rpq.DefaultBounds(c.Jobs), rand.New(rand.NewSource(c.InstanceSeed)))
	logger := r.Logger.WithFields(logrus.Fields{
		"run_id": r.RunID,
		"algo":   algo.Name,
		"jobs":   c.Jobs,
	})

	makespans := make([]int, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	nodes := make([]int, 0, r.Runs)
	var last opt.Result

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		op := algo.Factory(runSeed)
		if op == nil {
			return Record{}, xerrors.Errorf("запуск %d: фабрика %s вернула nil", i, algo.Name)
		}

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := r.Clock.Now()
		res, err := op.Solve(runCtx, inst)
		dur := r.Clock.Now().Sub(start)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, xerrors.Errorf("запуск %d: отмена или таймаут: %w", i, err)
		}
		if err != nil {
			return Record{}, xerrors.Errorf("запуск %d: ошибка решения: %w", i, err)
		}
		if err := CheckResult(inst, res); err != nil {
			return Record{}, xerrors.Errorf("запуск %d: некорректный результат: %w", i, err)
		}

		logger.WithFields(logrus.Fields{
			"run":      i,
			"seed":     runSeed,
			"makespan": res.Makespan,
			"elapsed":  dur,
		}).Debug("запуск завершён")

		makespans = append(makespans, res.Makespan)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
		nodes = append(nodes, res.Nodes)
		last = res
	}

	msStats := CalcStats(makespans)
	tStats := CalcStats(timesMs)

	logger.WithFields(logrus.Fields{
		"makespan_best": msStats.Best,
		"makespan_mean": msStats.Mean,
		"time_mean_ms":  tStats.Mean,
	}).Info("случай завершён")

	return Record{
		RunID: r.RunID,
		Algo:  algo.Name,
		Jobs:  c.Jobs,
		Runs:  r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,

		LowerBound: last.LowerBound,
		UpperBound: last.UpperBound,
		NodesMean:  CalcStats(nodes).Mean,
	}, nil
}

var csvHeader = []string{
	"run_id", "algo", "jobs", "runs",
	"time_best_ms", "time_mean_ms", "time_std_ms",
	"makespan_best", "makespan_mean", "makespan_std",
	"lower_bound", "upper_bound", "nodes_mean",
}

func WriteCSV(path string, records []Record) error {
	if d := filepath.Dir(path); d != "." {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeRecords(f, records)
}

func writeRecords(out io.Writer, records []Record) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.RunID,
			r.Algo,
			strconv.Itoa(r.Jobs),
			strconv.Itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			strconv.Itoa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),

			strconv.Itoa(r.LowerBound),
			strconv.Itoa(r.UpperBound),
			ftoa(r.NodesMean),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
