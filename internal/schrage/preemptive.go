package schrage

import "singleMachine/internal/rpq"

// LowerBound вычисляет Cmax алгоритма Шраге с прерываниями. Прерывания
// допускаются только в этой релаксации, поэтому результат не превосходит
// оптимума задачи без прерываний и используется как нижняя оценка.
func LowerBound(jobs rpq.Jobs) (int, error) {
	if err := jobs.Validate(); err != nil {
		return 0, err
	}

	pending := jobs.SortedBy(rpq.ByRelease)
	ready := make(tailQueue, 0, len(jobs))

	// current == nil, пока ни одна работа не запускалась.
	var current *rpq.Job
	t, bound := 0, 0

	for len(pending) > 0 || ready.Len() > 0 {
		for len(pending) > 0 && pending[0].Release <= t {
			next := pending[0]
			pending = pending[1:]
			ready.push(next)

			if current != nil && next.Tail > current.Tail {
				// Прерываем текущую работу в момент поступления next.
				current.Duration = t - next.Release
				t = next.Release
				if current.Duration > 0 {
					ready.push(*current)
				}
			}
		}

		if ready.Len() == 0 {
			t = pending[0].Release
			continue
		}

		j := ready.pop()
		current = &j
		t += j.Duration
		bound = max(bound, t+j.Tail)
	}
	return bound, nil
}
