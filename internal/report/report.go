// Package report печатает результаты решения и бенчмарка в терминал.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"singleMachine/internal/bench"
	"singleMachine/internal/opt"
	"singleMachine/internal/rpq"
)

var (
	bold      = color.New(color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
	cyan      = color.New(color.FgCyan).SprintFunc()
	green     = color.New(color.FgGreen).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	boldGreen = color.New(color.Bold, color.FgGreen).SprintFunc()
)

// Solve выводит сводку по экземпляру: эвристика, нижняя оценка, оптимум, разрыв.
func Solve(w io.Writer, inst *rpq.Instance, heuristic, exact opt.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s %s\n", bold("Экземпляр:"), cyan(inst.Name),
		dim(fmt.Sprintf("(%d работ, сумма p = %d)", inst.Len(), inst.Jobs.TotalDuration())))
	fmt.Fprintf(tw, "%s\t%s\n", bold("Шраге (UB):"), yellow(heuristic.Makespan))
	fmt.Fprintf(tw, "%s\t%d\n", bold("Шраге с прерываниями (LB):"), heuristic.LowerBound)
	fmt.Fprintf(tw, "%s\t%s %s\n", bold("Оптимум (Карлье):"), boldGreen(exact.Makespan),
		dim(fmt.Sprintf("(узлов %d, отсечено %d, %v)", exact.Nodes, exact.Pruned, exact.Duration)))
	fmt.Fprintf(tw, "%s\t%s\n", bold("Разрыв UB - C*:"), gap(heuristic.Makespan, exact.Makespan))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(heuristic.Schedule) > 0 {
		fmt.Fprintln(w, bold("Порядок Шраге:"))
		for i, j := range heuristic.Schedule {
			fmt.Fprintf(w, "  %s %s\n", dim(fmt.Sprintf("%3d.", i+1)), j)
		}
	}
	return nil
}

func gap(ub, opt int) string {
	if opt <= 0 {
		return dim("-")
	}
	d := ub - opt
	s := fmt.Sprintf("%d (%.2f%%)", d, 100*float64(d)/float64(opt))
	if d == 0 {
		return green(s)
	}
	return yellow(s)
}

// Records выводит таблицу записей бенчмарка.
func Records(w io.Writer, records []bench.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, bold("алгоритм\tn\tзапусков\tCmax лучш.\tCmax ср.\tLB\tузлов ср.\tвремя ср., мс"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.2f\t%d\t%.1f\t%.3f\n",
			cyan(r.Algo), r.Jobs, r.Runs,
			boldGreen(r.MakespanBest), r.MakespanMean,
			r.LowerBound, r.NodesMean, r.TimeMeanMs,
		)
	}
	return tw.Flush()
}
