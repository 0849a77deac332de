package config

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// AppConfig 애플리케이션 설정의 루트입니다.
type AppConfig struct {
	Debug   bool          `json:"debug"`
	HTTP    HTTPConfig    `json:"http"`
	Storage StorageConfig `json:"storage"`
	Redis   RedisConfig   `json:"redis"`
	Auth    AuthConfig    `json:"auth"`
	Alert   AlertConfig   `json:"alert"`
	Report  ReportConfig  `json:"report"`
}

func defaultConfig() AppConfig {
	return AppConfig{
		HTTP: HTTPConfig{
			ListenPort:     8080,
			AllowOrigins:   []string{"*"},
			RequestTimeout: 60 * time.Second,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				Burst:             40,
			},
		},
		Storage: StorageConfig{
			Driver: StorageDriverPostgres,
			Postgres: PostgresConfig{
				MaxConns:         10,
				StatementTimeout: 10 * time.Second,
				ConnectTimeout:   5 * time.Second,
			},
		},
		Redis: RedisConfig{
			ShopNameTTL:  10 * time.Minute,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Auth: AuthConfig{
			Issuer: AppName,
		},
		Report: ReportConfig{
			TimeSpec: "0 0 * * * *",
		},
	}
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.HTTP.validate(v); err != nil {
		return err
	}
	if err := c.Storage.validate(v); err != nil {
		return err
	}
	if err := c.Redis.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.Auth, "인증(auth)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Alert.Telegram, "텔레그램 알림(alert.telegram)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Report, "통계 리포트(report)"); err != nil {
		return err
	}
	if c.Report.NotifyAlert && !c.Alert.Telegram.Enabled {
		return apperrors.New(apperrors.InvalidInput, "리포트를 알림으로 전송하려면(report.notify_alert) 텔레그램 알림(alert.telegram.enabled)이 활성화되어야 합니다")
	}
	return nil
}

// VerifyRecommendations 실행은 가능하지만 운영에 권장되지 않는 설정을 경고 메시지로 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}
	if slices.Contains(c.HTTP.AllowOrigins, "*") {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되었습니다. 운영 환경에서는 허용할 도메인을 명시하세요")
	}
	if c.Storage.Driver == StorageDriverMemory {
		warnings = append(warnings, "메모리 저장소를 사용 중입니다. 프로세스가 종료되면 모든 데이터가 사라집니다")
	}
	if !c.Redis.Enabled {
		warnings = append(warnings, "Redis 캐시가 비활성화되어 상점 이름을 매 요청마다 저장소에서 조회합니다")
	}

	return warnings
}

// HTTPConfig API 서버 설정입니다.
type HTTPConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	AllowOrigins   []string        `json:"allow_origins" validate:"min=1,dive,cors_origin"`
	RequestTimeout time.Duration   `json:"request_timeout" validate:"gt=0"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}
	return checkStruct(v, c, "HTTP 서버(http)")
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한입니다.
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

// StorageConfig 상품, 상점, 이력 레코드를 보관할 저장소 설정입니다.
type StorageConfig struct {
	Driver   string         `json:"driver" validate:"oneof=postgres memory"`
	Postgres PostgresConfig `json:"postgres"`
}

func (c *StorageConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "저장소(storage)"); err != nil {
		return err
	}
	if c.Driver == StorageDriverPostgres {
		return checkStruct(v, c.Postgres, "PostgreSQL(storage.postgres)")
	}
	return nil
}

// PostgresConfig storage.driver가 postgres일 때만 검증됩니다.
type PostgresConfig struct {
	URL              string        `json:"url" validate:"required,conn_url=postgres postgresql"`
	MaxConns         int32         `json:"max_conns" validate:"min=1"`
	StatementTimeout time.Duration `json:"statement_timeout" validate:"gte=0"`
	ConnectTimeout   time.Duration `json:"connect_timeout" validate:"gt=0"`
}

// RedisConfig 상점 이름 캐시용 Redis 설정입니다.
type RedisConfig struct {
	Enabled      bool          `json:"enabled"`
	URL          string        `json:"url" validate:"required_if=Enabled true,omitempty,conn_url=redis rediss"`
	ShopNameTTL  time.Duration `json:"shop_name_ttl" validate:"gt=0"`
	DialTimeout  time.Duration `json:"dial_timeout" validate:"gt=0"`
	ReadTimeout  time.Duration `json:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `json:"write_timeout" validate:"gt=0"`
}

func (c *RedisConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "Redis(redis)")
}

// AuthConfig 요청자 식별용 JWT 검증 설정입니다.
type AuthConfig struct {
	JWTSecret string `json:"jwt_secret" validate:"required,min=16"`
	Issuer    string `json:"issuer"`
}

// AlertConfig 서버 오류와 리포트를 전달할 알림 채널 설정입니다.
type AlertConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 봇 설정입니다.
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

// ReportConfig 저장소 레코드 통계를 주기적으로 기록하는 작업 설정입니다.
type ReportConfig struct {
	Enabled     bool   `json:"enabled"`
	TimeSpec    string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron"`
	NotifyAlert bool   `json:"notify_alert"`
}
