package logger

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Setenv("GIN_MODE", "release")

	assert.Equal(t, logrus.InfoLevel, New(io.Discard, "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New(io.Discard, "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(io.Discard, "loud").GetLevel())
	assert.IsType(t, new(logrus.JSONFormatter), New(io.Discard, "").Formatter)
}
