package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// 예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 설정 검증용 Validate 인스턴스를 생성합니다.
// 에러 메시지에는 Go 필드명 대신 설정 파일의 JSON 키가 나타납니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "telegram_bot_token", func(fl validator.FieldLevel) bool {
		return telegramBotTokenRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "cron", func(fl validator.FieldLevel) bool {
		return validation.ValidateCronExpression(fl.Field().String()) == nil
	})
	mustRegister(v, "conn_url", func(fl validator.FieldLevel) bool {
		return validation.ValidateConnectionURL(fl.Field().String(), strings.Fields(fl.Param())...) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 설명하는 에러를 반환합니다.
func checkStruct(v *validator.Validate, s any, section string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 검증 중 알 수 없는 오류가 발생했습니다", section))
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 텔레그램 봇 토큰 형식이 올바르지 않습니다", section))
	case "cron":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 Cron 표현식이 올바르지 않습니다: '%v' (형식: 초 분 시 일 월 요일)", section, fe.Value()))
	case "conn_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 접속 URL(%s)이 올바르지 않습니다 (허용 스키마: %s)", section, fe.Field(), fe.Param()))
	case "required", "required_if":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 필수 설정 값(%s)이 누락되었습니다", section, fe.Field()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s=%s)", section, fe.Field(), fe.Tag(), fe.Param()))
}
