package rpq

import "golang.org/x/xerrors"

var (
	// ErrEmptyInput возвращается, если операция вызвана на пустом наборе работ.
	ErrEmptyInput = xerrors.New("набор работ пуст")

	// ErrEmptySchedule возвращается при вычислении Cmax пустого расписания.
	ErrEmptySchedule = xerrors.New("расписание пусто")

	// ErrNonPositiveDuration возвращается для работы с длительностью p <= 0.
	ErrNonPositiveDuration = xerrors.New("длительность работы должна быть > 0")

	// ErrNegativeTime возвращается для работы с отрицательным r или q.
	ErrNegativeTime = xerrors.New("времена r и q должны быть >= 0")

	// ErrNotPermutation возвращается, если расписание не является перестановкой набора работ.
	ErrNotPermutation = xerrors.New("расписание не является перестановкой набора работ")

	// ErrBadValue возвращается загрузчиком для значения, не являющегося целым числом.
	ErrBadValue = xerrors.New("значение должно быть целым числом")

	// ErrUnknownFormat возвращается загрузчиком для неподдерживаемого формата файла.
	ErrUnknownFormat = xerrors.New("неизвестный формат экземпляра")
)
