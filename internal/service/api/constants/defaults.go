package constants

import "time"

const (
	// DefaultRequestTimeout 설정값이 0일 때 적용하는 요청 처리 제한 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문 최대 크기. 카탈로그 등록 요청만 본문을 가집니다.
	DefaultMaxBodySize = "128K"

	DefaultReadTimeout       = 30 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 90 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultHealthCheckTimeout 의존성 하나의 Ping에 허용하는 시간
	DefaultHealthCheckTimeout = 2 * time.Second
)
