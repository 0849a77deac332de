package middleware

import (
	"io"
	"sync"

	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// defaultEchoComponent Echo 내부에서 남기는 로그의 component 필드 기본값
const defaultEchoComponent = "api.echo"

// Logger Echo의 log.Logger 인터페이스(github.com/labstack/gommon/log)를 애플리케이션 로거로 연결하는 어댑터입니다.
//
// Echo가 남기는 로그에도 component 필드가 붙도록 Prefix를 component 값으로 사용합니다.
// 대부분의 메서드는 logrus로 단순 위임합니다.
type Logger struct {
	logger *applog.Logger

	mu     sync.RWMutex
	prefix string
}

// NewLogger 애플리케이션 로거를 감싼 Echo 로거를 생성합니다.
func NewLogger(logger *applog.Logger) *Logger {
	return &Logger{
		logger: logger,
		prefix: defaultEchoComponent,
	}
}

func (l *Logger) entry() *applog.Entry {
	return l.logger.WithField(applog.FieldComponent, l.Prefix())
}

func (l *Logger) Output() io.Writer {
	return l.logger.Out
}

func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *Logger) Prefix() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefix
}

func (l *Logger) SetPrefix(p string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = p
}

// Level logrus 레벨을 Echo 레벨로 변환합니다. Echo에 대응 레벨이 없는 Trace는 DEBUG로 취급합니다.
func (l *Logger) Level() log.Lvl {
	switch l.logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

func (l *Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.logger.SetLevel(applog.ErrorLevel)
	case log.OFF:
		l.logger.SetLevel(applog.PanicLevel)
	}
}

// SetHeader Echo 고유의 헤더 템플릿은 사용하지 않습니다.
func (l *Logger) SetHeader(string) {}

func (l *Logger) Print(i ...interface{})                    { l.entry().Print(i...) }
func (l *Logger) Printf(format string, args ...interface{}) { l.entry().Printf(format, args...) }
func (l *Logger) Printj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Print() }

func (l *Logger) Debug(i ...interface{})                    { l.entry().Debug(i...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry().Debugf(format, args...) }
func (l *Logger) Debugj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Debug() }

func (l *Logger) Info(i ...interface{})                    { l.entry().Info(i...) }
func (l *Logger) Infof(format string, args ...interface{}) { l.entry().Infof(format, args...) }
func (l *Logger) Infoj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Info() }

func (l *Logger) Warn(i ...interface{})                    { l.entry().Warn(i...) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.entry().Warnf(format, args...) }
func (l *Logger) Warnj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Warn() }

func (l *Logger) Error(i ...interface{})                    { l.entry().Error(i...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }
func (l *Logger) Errorj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Error() }

func (l *Logger) Fatal(i ...interface{})                    { l.entry().Fatal(i...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.entry().Fatalf(format, args...) }
func (l *Logger) Fatalj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Fatal() }

func (l *Logger) Panic(i ...interface{})                    { l.entry().Panic(i...) }
func (l *Logger) Panicf(format string, args ...interface{}) { l.entry().Panicf(format, args...) }
func (l *Logger) Panicj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Panic() }
