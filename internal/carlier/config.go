package carlier

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Config задаёт параметры поиска методом ветвей и границ.
type Config struct {
	// Предельная глубина рекурсии. Если 0, используется MaxDepthPerJob × n.
	MaxDepth       int
	MaxDepthPerJob int

	// Если не задан, используется логгер, отбрасывающий вывод.
	Logger *logrus.Entry
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:       0,
		MaxDepthPerJob: 10,
	}
}

// Validate проверяет конфигурацию и проставляет значения по умолчанию.
func (c *Config) Validate() error {
	var err error
	if c.MaxDepth < 0 {
		err = multierror.Append(err, xerrors.Errorf("MaxDepth должно быть >= 0 (получено %d)", c.MaxDepth))
	}
	if c.MaxDepth == 0 && c.MaxDepthPerJob <= 0 {
		err = multierror.Append(err, xerrors.Errorf("должно быть задано MaxDepth > 0 или MaxDepthPerJob > 0"))
	}
	if c.Logger == nil {
		c.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}
	return err
}

// depthLimit возвращает предельную глубину рекурсии для n работ.
func (c Config) depthLimit(n int) int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return c.MaxDepthPerJob * n
}
