package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. Пустой или неизвестный level означает info.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// вне продакшн окружения читаемый формат и debug по умолчанию
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			l.WithError(err).Warn("unknown log level, keeping default")
			return l
		}
		l.SetLevel(parsed)
	}

	return l
}
