package main

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"singleMachine/internal/bench"
	"singleMachine/internal/carlier"
	"singleMachine/internal/opt"
	"singleMachine/internal/sa"
	"singleMachine/internal/schrage"
	"singleMachine/internal/ts"
)

func benchFlags() []cli.Flag {
	saDefaults := sa.DefaultConfig()
	tsDefaults := ts.DefaultConfig()
	return []cli.Flag{
		cli.StringFlag{
			Name:   "out",
			Value:  "artifacts/results.csv",
			EnvVar: "RPQ_BENCH_OUT",
			Usage:  "путь к выходному CSV-файлу",
		},
		cli.StringFlag{
			Name:  "sizes",
			Value: "10,20,50",
			Usage: "количество работ в случайных экземплярах (через запятую)",
		},
		cli.StringFlag{
			Name:  "algos",
			Value: "schrage,carlier,sa,ts",
			Usage: "список алгоритмов: schrage, carlier, sa, ts (через запятую)",
		},
		cli.IntFlag{
			Name:  "runs",
			Value: 10,
			Usage: "количество запусков каждого алгоритма (с разными сидами)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 1000,
			Usage: "базовый сид для запусков алгоритмов",
		},
		cli.Int64Flag{
			Name:  "instance-seed",
			Value: 777,
			Usage: "базовый сид для генерации экземпляров задачи",
		},
		cli.DurationFlag{
			Name:  "per-run-timeout",
			Usage: "таймаут одного запуска; 0 - без ограничения",
		},

		// --- Метод ветвей и границ ---
		cli.IntFlag{
			Name:  "carlier-max-depth-per-job",
			Value: carlier.DefaultConfig().MaxDepthPerJob,
			Usage: "предельная глубина ветвления на одну работу",
		},

		// --- Алгоритм имитации отжига ---
		cli.IntFlag{
			Name:  "sa-iter-per-job",
			Value: saDefaults.IterationsPerJob,
			Usage: "количество итераций на одну работу (используется, если sa-iter == 0)",
		},
		cli.IntFlag{
			Name:  "sa-iter",
			Usage: "общее количество итераций (0 => sa-iter-per-job × n)",
		},
		cli.Float64Flag{
			Name:  "sa-t0",
			Value: saDefaults.InitialTemp,
			Usage: "начальная температура",
		},
		cli.Float64Flag{
			Name:  "sa-tmin",
			Value: saDefaults.FinalTemp,
			Usage: "конечная температура",
		},
		cli.Float64Flag{
			Name:  "sa-alpha",
			Value: saDefaults.Alpha,
			Usage: "коэффициент охлаждения (alpha)",
		},
		cli.StringFlag{
			Name:  "sa-neigh",
			Value: string(saDefaults.Neighborhood),
			Usage: "тип окрестности: swap | insert",
		},
		cli.StringFlag{
			Name:  "sa-init",
			Value: string(saDefaults.Init),
			Usage: "начальное решение: schrage | random",
		},

		// --- Табу-поиск ---
		cli.IntFlag{
			Name:  "ts-iter-per-job",
			Value: tsDefaults.IterationsPerJob,
			Usage: "количество итераций на одну работу (используется, если ts-iter == 0)",
		},
		cli.IntFlag{
			Name:  "ts-iter",
			Usage: "общее количество итераций (0 => ts-iter-per-job × n)",
		},
		cli.IntFlag{
			Name:  "ts-tenure",
			Value: tsDefaults.TabuTenure,
			Usage: "длина табу-списка (в итерациях)",
		},
		cli.IntFlag{
			Name:  "ts-tenure-rand",
			Value: tsDefaults.TabuTenureRand,
			Usage: "случайное добавление к сроку табу [0..rand]",
		},
		cli.IntFlag{
			Name:  "ts-neighbors",
			Value: tsDefaults.NeighborsPerIter,
			Usage: "количество рассматриваемых соседей на итерацию",
		},
		cli.StringFlag{
			Name:  "ts-neigh",
			Value: string(tsDefaults.Neighborhood),
			Usage: "тип окрестности: insert | swap",
		},
		cli.BoolTFlag{
			Name:  "ts-critical",
			Usage: "перемещать только работы критического блока",
		},
	}
}

// Фабрики

func newSchrageFactory() func(seed int64) opt.Optimizer {
	return func(int64) opt.Optimizer {
		return schrage.New()
	}
}

func newCarlierFactory(cfg carlier.Config) func(seed int64) opt.Optimizer {
	return func(int64) opt.Optimizer {
		solver, _ := carlier.New(cfg)
		return solver
	}
}

func newSAFactory(cfg sa.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := sa.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newTSFactory(cfg ts.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := ts.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func selectAlgorithms(appCtx *cli.Context) ([]bench.Algorithm, error) {
	carlierCfg := carlier.DefaultConfig()
	carlierCfg.MaxDepthPerJob = appCtx.Int("carlier-max-depth-per-job")
	carlierCfg.Logger = logger.WithField("component", "carlier")
	if err := carlierCfg.Validate(); err != nil {
		return nil, xerrors.Errorf("конфликт в конфигурации метода ветвей и границ: %w", err)
	}

	saCfg := sa.Config{
		Iterations:       appCtx.Int("sa-iter"),
		IterationsPerJob: appCtx.Int("sa-iter-per-job"),
		InitialTemp:      appCtx.Float64("sa-t0"),
		FinalTemp:        appCtx.Float64("sa-tmin"),
		Alpha:            appCtx.Float64("sa-alpha"),
		Neighborhood:     sa.Neighborhood(appCtx.String("sa-neigh")),
		Init:             sa.Init(appCtx.String("sa-init")),
	}
	if err := saCfg.Validate(); err != nil {
		return nil, xerrors.Errorf("конфликт в конфигурации алгоритма имитации отжига: %w", err)
	}

	tsCfg := ts.Config{
		Iterations:       appCtx.Int("ts-iter"),
		IterationsPerJob: appCtx.Int("ts-iter-per-job"),
		TabuTenure:       appCtx.Int("ts-tenure"),
		TabuTenureRand:   appCtx.Int("ts-tenure-rand"),
		NeighborsPerIter: appCtx.Int("ts-neighbors"),
		Neighborhood:     ts.Neighborhood(appCtx.String("ts-neigh")),
		CriticalMoves:    appCtx.BoolT("ts-critical"),
	}
	if err := tsCfg.Validate(); err != nil {
		return nil, xerrors.Errorf("конфликт в конфигурации табу-поиска: %w", err)
	}

	available := map[string]bench.Algorithm{
		"schrage": {Name: "schrage", Factory: newSchrageFactory()},
		"carlier": {Name: "carlier", Factory: newCarlierFactory(carlierCfg)},
		"sa":      {Name: "sa", Factory: newSAFactory(saCfg)},
		"ts":      {Name: "ts", Factory: newTSFactory(tsCfg)},
	}

	var selected []bench.Algorithm
	for _, a := range splitCSV(appCtx.String("algos")) {
		al, ok := available[strings.ToLower(a)]
		if !ok {
			return nil, xerrors.Errorf("алгоритм %q не предоставлен в программе; доступные: %v", a, keys(available))
		}
		selected = append(selected, al)
	}
	if len(selected) == 0 {
		return nil, xerrors.New("не выбран ни один алгоритм")
	}
	return selected, nil
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
