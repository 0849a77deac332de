// Package validator 요청 구조체 검증과 한국어 오류 메시지 변환을 담당합니다.
//
// 필드의 `korean` 태그가 있으면 메시지에 그 이름을 쓰고, 없으면 Go 필드명을 사용합니다.
//
//	type CreateShopRequest struct {
//		Name string `json:"name" validate:"required,max=100" korean:"상점 이름"`
//	}
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Get 애플리케이션 전역에서 공유하는 Validate 인스턴스를 반환합니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("korean"); name != "" {
				return name
			}
			return f.Name
		})
	})
	return instance
}

// Struct 구조체의 validate 태그를 검사합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 검증 오류 중 첫 번째 항목을 사용자에게 보여줄 한국어 문장으로 바꿉니다.
// validator 오류가 아니면 err.Error()를 그대로 반환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	name := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 필수입니다", topic(name))
	case "min", "gte":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("%s 최소 %s자 이상이어야 합니다", topic(name), fe.Param())
		}
		return fmt.Sprintf("%s %s 이상이어야 합니다", topic(name), fe.Param())
	case "max", "lte":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("%s 최대 %s자까지 입력 가능합니다", topic(name), fe.Param())
		}
		return fmt.Sprintf("%s %s 이하이어야 합니다", topic(name), fe.Param())
	case "gt":
		return fmt.Sprintf("%s %s보다 커야 합니다", topic(name), fe.Param())
	case "len":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("%s %s자여야 합니다", topic(name), fe.Param())
		}
		return fmt.Sprintf("%s 개수가 %s개여야 합니다", topic(name), fe.Param())
	case "email":
		return fmt.Sprintf("%s 올바른 이메일 형식이어야 합니다", topic(name))
	case "url", "http_url":
		return fmt.Sprintf("%s 올바른 URL 형식이어야 합니다", topic(name))
	case "oneof":
		return fmt.Sprintf("%s 허용된 값 중 하나여야 합니다 [%s]", topic(name), fe.Param())
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", name, fe.Tag())
	}
}

func isLengthKind(k reflect.Kind) bool {
	return k == reflect.String
}

// topic 이름 뒤에 받침 유무에 맞는 보조사(은/는)를 붙입니다.
func topic(name string) string {
	r, _ := utf8.DecodeLastRuneInString(name)
	if r >= 0xAC00 && r <= 0xD7A3 && (r-0xAC00)%28 != 0 {
		return name + "은"
	}
	return name + "는"
}
