package validation

import (
	"fmt"

	"github.com/darkkaiser/shop-compare-server/pkg/cronx"
)

// ValidateCronExpression 초 필드를 포함한 6필드 Cron 표현식인지 검사합니다.
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
