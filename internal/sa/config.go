package sa

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Тип окрестности
type Neighborhood string

const (
	NeighborhoodSwap   Neighborhood = "swap"
	NeighborhoodInsert Neighborhood = "insert"
)

// Начальное решение
type Init string

const (
	InitSchrage Init = "schrage"
	InitRandom  Init = "random"
)

type Config struct {
	Iterations       int
	IterationsPerJob int

	InitialTemp float64
	FinalTemp   float64
	Alpha       float64

	Neighborhood Neighborhood
	Init         Init
}

func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		IterationsPerJob: 2500,

		InitialTemp: 200.0,
		FinalTemp:   0.5,
		Alpha:       0.995,

		Neighborhood: NeighborhoodInsert,
		Init:         InitSchrage,
	}
}

// Validate возвращает все найденные ошибки конфигурации.
func (c Config) Validate() error {
	var err error
	if c.Iterations <= 0 && c.IterationsPerJob <= 0 {
		err = multierror.Append(err, xerrors.New(
			"должно быть задано Iterations > 0 или IterationsPerJob > 0",
		))
	}
	if c.InitialTemp <= 0 {
		err = multierror.Append(err, xerrors.Errorf(
			"InitialTemp должно быть > 0 (получено %f)",
			c.InitialTemp,
		))
	}
	if c.FinalTemp <= 0 {
		err = multierror.Append(err, xerrors.Errorf(
			"FinalTemp должно быть > 0 (получено %f)",
			c.FinalTemp,
		))
	}
	if c.FinalTemp >= c.InitialTemp {
		err = multierror.Append(err, xerrors.Errorf(
			"FinalTemp должно быть < InitialTemp (получено %f >= %f)",
			c.FinalTemp,
			c.InitialTemp,
		))
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		err = multierror.Append(err, xerrors.Errorf(
			"alpha должно лежать в интервале (0,1) (получено %f)",
			c.Alpha,
		))
	}
	switch c.Neighborhood {
	case NeighborhoodSwap, NeighborhoodInsert:
		// ok
	default:
		err = multierror.Append(err, xerrors.Errorf(
			"неизвестный тип окрестности %q",
			c.Neighborhood,
		))
	}
	switch c.Init {
	case InitSchrage, InitRandom:
		// ok
	default:
		err = multierror.Append(err, xerrors.Errorf(
			"неизвестный способ построения начального решения %q",
			c.Init,
		))
	}
	return err
}
