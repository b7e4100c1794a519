package schrage

import (
	"cmp"
	"slices"

	"singleMachine/internal/rpq"
)

// Dispatch строит расписание алгоритмом Шраге: в каждый момент запускается
// готовая работа с наибольшим q. Возвращает расписание и его Cmax, который
// служит верхней оценкой оптимума.
func Dispatch(jobs rpq.Jobs) (rpq.Schedule, int, error) {
	if err := jobs.Validate(); err != nil {
		return rpq.Schedule{}, 0, err
	}

	pending := jobs.SortedBy(rpq.ByRelease)
	ready := make(rpq.Jobs, 0, len(jobs))
	order := make(rpq.Jobs, 0, len(jobs))
	t := 0

	for len(pending) > 0 || len(ready) > 0 {
		for len(pending) > 0 && pending[0].Release <= t {
			ready = append(ready, pending[0])
			pending = pending[1:]
		}
		if len(ready) == 0 {
			t = pending[0].Release
			continue
		}

		idx := pickMaxTail(ready)
		j := ready[idx]
		ready = slices.Delete(ready, idx, idx+1)
		order = append(order, j)
		t += j.Duration
	}

	sched := rpq.NewSchedule(order)
	return sched, sched.MustMakespan(), nil
}

// pickMaxTail возвращает индекс работы с наибольшим q.
// При равных q порядок задаётся двумя устойчивыми сортировками: по p по
// убыванию, затем по q по возрастанию; берётся последний элемент. Из работ
// с одинаковым q выбирается работа с наименьшим p, при равных p - ранее
// поступившая в очередь.
func pickMaxTail(ready rpq.Jobs) int {
	byDuration := ready.SortedBy(rpq.ByDuration)
	slices.Reverse(byDuration)
	slices.SortStableFunc(byDuration, func(a, b rpq.Job) int {
		return cmp.Compare(a.Tail, b.Tail)
	})
	return slices.Index(ready, byDuration[len(byDuration)-1])
}
