package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// 생성
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"InvalidInput", InvalidInput, "검색어가 비어 있습니다"},
		{"NotFound", NotFound, "검색 결과가 없습니다"},
		{"빈 메시지", System, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, Is(err, tt.errType))

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(Conflict, "이미 존재하는 상점 이름입니다: '%s'", "alpha")

	assert.EqualError(t, err, "[Conflict] 이미 존재하는 상점 이름입니다: 'alpha'")
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "System", System.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}

// =============================================================================
// 래핑
// =============================================================================

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환한다", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, System, "무시"))
		assert.Nil(t, Wrapf(nil, System, "무시 %d", 1))
	})

	t.Run("원인 에러를 보존한다", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errStd, System, "저장 실패")

		assert.EqualError(t, err, "[System] 저장 실패: standard error")
		assert.True(t, errors.Is(err, errStd))
		assert.Equal(t, errStd, RootCause(err))
	})

	t.Run("Wrapf 포맷 메시지", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(errStd, Timeout, "%d초 초과", 5)

		assert.EqualError(t, err, "[Timeout] 5초 초과: standard error")
	})
}

func TestIs_Chain(t *testing.T) {
	t.Parallel()

	inner := New(NotFound, "상점 없음")
	outer := Wrap(inner, System, "조회 실패")

	assert.True(t, Is(outer, System))
	assert.True(t, Is(outer, NotFound))
	assert.False(t, Is(outer, Conflict))
	assert.False(t, Is(errStd, System))
	assert.False(t, Is(nil, System))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errStd, Unknown},
		{"단일 AppError", New(Conflict, "중복"), Conflict},
		{"AppError 체인", Wrap(New(NotFound, "없음"), System, "실패"), NotFound},
		{"외부 에러를 감싼 경우", Wrap(errStd, InvalidInput, "잘못된 입력"), InvalidInput},
		{"fmt.Errorf 사이에 낀 경우", fmt.Errorf("outer: %w", Wrap(New(Forbidden, "권한"), Internal, "x")), Forbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

func TestRootCause_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))
}

// =============================================================================
// 포맷
// =============================================================================

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "상품 없음"), System, "조회 실패")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[System] 조회 실패")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[NotFound] 상품 없음")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "errors_test.go")
}

func TestCaptureStack_PointsToCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestCaptureStack_PointsToCaller")
}
