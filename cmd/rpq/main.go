package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"singleMachine/internal/bench"
	"singleMachine/internal/carlier"
	"singleMachine/internal/report"
	"singleMachine/internal/rpq"
	"singleMachine/internal/schrage"
)

var (
	appName = "rpq"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	if err := makeApp().Run(os.Args); err != nil {
		logger.WithField("err", err).Error("завершение работы из-за ошибки")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "задача 1|r_j,q_j|Cmax: алгоритм Шраге и метод Карлье"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			EnvVar: "RPQ_LOG_LEVEL",
			Usage:  "уровень логирования: debug, info, warn, error",
		},
		cli.BoolFlag{
			Name:   "json-logs",
			EnvVar: "RPQ_JSON_LOGS",
			Usage:  "писать логи в формате JSON",
		},
	}
	app.Before = setupLogger
	app.Commands = []cli.Command{
		{
			Name:      "solve",
			Usage:     "решить экземпляр из файла (text, yaml, json)",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "max-depth-per-job",
					Value:  carlier.DefaultConfig().MaxDepthPerJob,
					EnvVar: "RPQ_MAX_DEPTH_PER_JOB",
					Usage:  "предельная глубина ветвления на одну работу",
				},
			},
			Action: runSolve,
		},
		{
			Name:   "bench",
			Usage:  "сравнить алгоритмы на случайных экземплярах",
			Flags:  benchFlags(),
			Action: runBench,
		},
	}
	return app
}

func setupLogger(appCtx *cli.Context) error {
	lvl, err := logrus.ParseLevel(appCtx.String("log-level"))
	if err != nil {
		return xerrors.Errorf("некорректный уровень логирования: %w", err)
	}
	logger.Logger.SetLevel(lvl)
	if appCtx.Bool("json-logs") {
		logger.Logger.SetFormatter(new(logrus.JSONFormatter))
	}
	return nil
}

// signalContext отменяется по SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func runSolve(appCtx *cli.Context) error {
	path := appCtx.Args().First()
	if path == "" {
		return xerrors.New("не задан файл экземпляра: rpq solve <file>")
	}

	ctx, cancelFn := signalContext()
	defer cancelFn()

	inst, err := rpq.LoadFile(path)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"instance": inst.Name,
		"jobs":     inst.Len(),
	}).Info("экземпляр загружен")

	heuristic, err := schrage.New().Solve(ctx, inst)
	if err != nil {
		return err
	}

	cfg := carlier.DefaultConfig()
	cfg.MaxDepthPerJob = appCtx.Int("max-depth-per-job")
	cfg.Logger = logger.WithField("component", "carlier")
	solver, err := carlier.New(cfg)
	if err != nil {
		return err
	}
	exact, err := solver.Solve(ctx, inst)
	if err != nil {
		return err
	}

	return report.Solve(appCtx.App.Writer, inst, heuristic, exact)
}

func runBench(appCtx *cli.Context) error {
	ctx, cancelFn := signalContext()
	defer cancelFn()

	cases, err := parseSizes(appCtx.String("sizes"), appCtx.Int64("instance-seed"))
	if err != nil {
		return err
	}
	selected, err := selectAlgorithms(appCtx)
	if err != nil {
		return err
	}

	runner := &bench.Runner{
		Runs:          appCtx.Int("runs"),
		BaseSeed:      appCtx.Int64("seed"),
		PerRunTimeout: appCtx.Duration("per-run-timeout"),
		RunID:         uuid.New().String(),
		Logger:        logger.WithField("component", "bench"),
	}

	var records []bench.Record
	for _, c := range cases {
		for _, a := range selected {
			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				return xerrors.Errorf("%s, %d работ: %w", a.Name, c.Jobs, err)
			}
			records = append(records, rec)
		}
	}

	if err := report.Records(appCtx.App.Writer, records); err != nil {
		return err
	}

	out := appCtx.String("out")
	if err := bench.WriteCSV(out, records); err != nil {
		return xerrors.Errorf("запись CSV: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"run_id": runner.RunID,
		"path":   out,
	}).Info("результаты сохранены")
	return nil
}

// helpers

func parseSizes(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	if len(parts) == 0 {
		return nil, xerrors.New("не задан ни один размер экземпляра")
	}
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		jobs, err := strconv.Atoi(p)
		if err != nil {
			return nil, xerrors.Errorf("размер %q: ошибка парсинга количества работ: %w", p, err)
		}
		if jobs <= 0 {
			return nil, xerrors.Errorf("размер %q: количество работ должно быть > 0", p)
		}

		cases = append(cases, bench.Case{
			Jobs:         jobs,
			InstanceSeed: baseInstanceSeed + int64(i)*10_000 + int64(jobs),
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
