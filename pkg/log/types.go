// Package log 애플리케이션 전역 로깅을 담당합니다.
//
// logrus를 그대로 사용하되, 호출하는 쪽이 logrus를 직접 import하지 않도록
// 자주 쓰는 타입과 함수를 이 패키지에서 다시 노출합니다. (import alias: applog)
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels 모든 로그 레벨 목록입니다.
var AllLevels = logrus.AllLevels

type (
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
	JSONFormatter = logrus.JSONFormatter
)

// StandardLogger 전역 Logger 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields 전역 Logger로 필드가 설정된 Entry를 만듭니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithError 전역 Logger로 error 필드가 설정된 Entry를 만듭니다.
func WithError(err error) *Entry {
	return logrus.WithError(err)
}

// SetLevel 전역 Logger의 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetOutput 전역 Logger의 기본 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 Logger의 기본 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// Info 전역 Logger로 Info 로그를 남깁니다.
func Info(args ...any) {
	logrus.Info(args...)
}

// Fatal 전역 Logger로 Fatal 로그를 남긴 뒤 프로세스를 종료합니다.
func Fatal(args ...any) {
	logrus.Fatal(args...)
}

// New 전역 Logger와 독립된 새 Logger를 생성합니다.
func New() *Logger {
	return logrus.New()
}
