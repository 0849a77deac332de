package constants

const (
	// 헬스체크 상태 값

	HealthStatusHealthy = "healthy"

	HealthStatusUnhealthy = "unhealthy"

	// 헬스체크 대상 의존성 이름

	DependencyStore = "store"

	DependencyRedis = "redis"

	MsgDepStatusHealthy = "정상 작동 중"
)
