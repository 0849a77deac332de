package postgres

import (
	"context"
	"errors"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL 에러 코드 (https://www.postgresql.org/docs/current/errcodes-appendix.html)
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapQueryError 분류되지 않은 드라이버 에러를 AppError로 감쌉니다.
// 이미 AppError인 경우(트랜잭션 함수가 돌려준 도메인 에러)는 그대로 반환합니다.
func wrapQueryError(err error, op string) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.Wrapf(err, apperrors.NotFound, "%s: 대상을 찾을 수 없습니다", op)
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return apperrors.Wrapf(err, apperrors.Timeout, "%s: 제한 시간을 초과했습니다", op)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrapf(err, apperrors.Unavailable, "%s: 요청이 취소되었습니다", op)
	case pgErrorCode(err) == codeCheckViolation:
		return apperrors.Wrapf(err, apperrors.InvalidInput, "%s: 값이 허용 범위를 벗어났습니다", op)
	}
	return apperrors.Wrapf(err, apperrors.System, "%s 실패", op)
}
