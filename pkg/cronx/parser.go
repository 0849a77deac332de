// Package cronx 애플리케이션 전체에서 공유하는 Cron 표현식 규칙을 정의합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 필드를 포함한 6필드 Cron 표현식 파서를 반환합니다.
//
// 필드 순서는 [초] [분] [시] [일] [월] [요일] 이며, @daily, @every 1h 같은 Descriptor도 허용합니다.
// 5필드 표현식은 거부됩니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
