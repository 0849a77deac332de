package report

import (
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
)

// ErrStatsReaderNotInitialized 서비스 생성 시 통계 조회 저장소가 주입되지 않았을 때 반환됩니다.
var ErrStatsReaderNotInitialized = apperrors.New(apperrors.Internal, "통계 조회 저장소(StatsReader) 객체가 초기화되지 않았습니다")

func newErrInvalidTimeSpec(timeSpec string, err error) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "리포트 스케줄 등록 실패: 잘못된 Cron 표현식입니다 (time_spec=%s)", timeSpec)
}
