package ts

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Neighborhood определяет тип окрестности.
type Neighborhood string

const (
	NeighborhoodInsert Neighborhood = "insert"
	NeighborhoodSwap   Neighborhood = "swap"
)

type Config struct {
	Iterations       int
	IterationsPerJob int

	TabuTenure int

	TabuTenureRand int

	NeighborsPerIter int

	Neighborhood Neighborhood

	// Перемещать только работы критического блока текущего расписания.
	CriticalMoves bool
}

func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		IterationsPerJob: 50,

		TabuTenure:     7,
		TabuTenureRand: 3,

		NeighborsPerIter: 40,
		Neighborhood:     NeighborhoodInsert,
		CriticalMoves:    true,
	}
}

func (c Config) Validate() error {
	var err error
	if c.Iterations <= 0 && c.IterationsPerJob <= 0 {
		err = multierror.Append(err, xerrors.New(
			"должно быть задано Iterations > 0 или IterationsPerJob > 0",
		))
	}
	if c.TabuTenure <= 0 {
		err = multierror.Append(err, xerrors.Errorf(
			"TabuTenure должно быть > 0 (получено %d)",
			c.TabuTenure,
		))
	}
	if c.TabuTenureRand < 0 {
		err = multierror.Append(err, xerrors.Errorf(
			"TabuTenureRand должно быть >= 0 (получено %d)",
			c.TabuTenureRand,
		))
	}
	if c.NeighborsPerIter <= 0 {
		err = multierror.Append(err, xerrors.Errorf(
			"NeighborsPerIter должно быть > 0 (получено %d)",
			c.NeighborsPerIter,
		))
	}
	switch c.Neighborhood {
	case NeighborhoodInsert, NeighborhoodSwap:
		// ok
	default:
		err = multierror.Append(err, xerrors.Errorf(
			"неизвестный тип окрестности %q",
			c.Neighborhood,
		))
	}
	return err
}
