package middleware

import (
	"testing"

	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

// Logger가 Echo의 Logger 인터페이스를 만족하는지 컴파일 시점에 확인합니다.
var _ echo.Logger = (*Logger)(nil)

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    applog.Level
		expected log.Lvl
	}{
		{applog.TraceLevel, log.DEBUG},
		{applog.DebugLevel, log.DEBUG},
		{applog.InfoLevel, log.INFO},
		{applog.WarnLevel, log.WARN},
		{applog.ErrorLevel, log.ERROR},
		{applog.FatalLevel, log.OFF},
	}

	for _, tt := range tests {
		logger := applog.New()
		logger.SetLevel(tt.level)

		assert.Equal(t, tt.expected, NewLogger(logger).Level(), "level=%s", tt.level)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	logger := applog.New()
	l := NewLogger(logger)

	l.SetLevel(log.WARN)
	assert.Equal(t, applog.WarnLevel, logger.GetLevel())

	l.SetLevel(log.OFF)
	assert.Equal(t, applog.PanicLevel, logger.GetLevel())
}

func TestLogger_PrefixIsComponent(t *testing.T) {
	t.Parallel()

	logger := applog.New()
	logger.SetFormatter(&applog.JSONFormatter{})
	hook := &captureHook{}
	logger.AddHook(hook)

	l := NewLogger(logger)
	assert.Equal(t, defaultEchoComponent, l.Prefix())

	l.Info("echo 내부 로그")
	l.SetPrefix("api.echo.custom")
	l.Warnj(log.JSON{"k": "v"})

	if assert.Len(t, hook.entries, 2) {
		assert.Equal(t, defaultEchoComponent, hook.entries[0].Data[applog.FieldComponent])
		assert.Equal(t, "api.echo.custom", hook.entries[1].Data[applog.FieldComponent])
		assert.Equal(t, "v", hook.entries[1].Data["k"])
	}
}

type captureHook struct {
	entries []*applog.Entry
}

func (h *captureHook) Levels() []applog.Level { return applog.AllLevels }

func (h *captureHook) Fire(e *applog.Entry) error {
	h.entries = append(h.entries, e)
	return nil
}
