package carlier

import "golang.org/x/xerrors"

var (
	// ErrDepthExceeded возвращается, если рекурсия превысила заданную глубину.
	ErrDepthExceeded = xerrors.New("превышена глубина рекурсии")

	// ErrNoCriticalBlock возвращается, если Cmax не достигается ни одной работой расписания.
	ErrNoCriticalBlock = xerrors.New("критический блок не найден")

	// ErrNilBound возвращается, если не передан указатель на текущую оценку.
	ErrNilBound = xerrors.New("не задана текущая оценка (nil)")
)
