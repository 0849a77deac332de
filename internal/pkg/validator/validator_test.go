package validator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/validator"
	go_validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_싱글톤(t *testing.T) {
	t.Parallel()

	const routines = 50
	got := make([]*go_validator.Validate, routines)

	var wg sync.WaitGroup
	wg.Add(routines)
	for i := range routines {
		go func() {
			defer wg.Done()
			got[i] = validator.Get()
		}()
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, got[0], got[i])
	}
}

type shopForm struct {
	Name     string   `validate:"required,max=5" korean:"상점 이름"`
	Code     string   `validate:"omitempty,len=3" korean:"코드"`
	Rating   int      `validate:"gte=0,lte=5" korean:"평점"`
	Count    int      `validate:"min=1" korean:"수량"`
	URL      string   `validate:"omitempty,url" korean:"주소"`
	Email    string   `validate:"omitempty,email" korean:"이메일"`
	Sort     string   `validate:"omitempty,oneof=mb cb" korean:"정렬"`
	Tags     []string `validate:"omitempty,len=2" korean:"태그"`
	Alpha    string   `validate:"omitempty,alpha" korean:"영문"`
	NoKorean string   `validate:"omitempty,max=2"`
}

func valid() shopForm {
	return shopForm{Name: "가게", Rating: 3, Count: 1}
}

func TestFormatValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*shopForm)
		expect string
	}{
		{"required", func(f *shopForm) { f.Name = "" }, "상점 이름은 필수입니다"},
		{"max 문자열", func(f *shopForm) { f.Name = "abcdef" }, "상점 이름은 최대 5자까지 입력 가능합니다"},
		{"len 문자열", func(f *shopForm) { f.Code = "ab" }, "코드는 3자여야 합니다"},
		{"gte 숫자", func(f *shopForm) { f.Rating = -1 }, "평점은 0 이상이어야 합니다"},
		{"lte 숫자", func(f *shopForm) { f.Rating = 6 }, "평점은 5 이하이어야 합니다"},
		{"min 숫자", func(f *shopForm) { f.Count = 0 }, "수량은 1 이상이어야 합니다"},
		{"url", func(f *shopForm) { f.URL = "not a url" }, "주소는 올바른 URL 형식이어야 합니다"},
		{"email", func(f *shopForm) { f.Email = "nope" }, "이메일은 올바른 이메일 형식이어야 합니다"},
		{"oneof", func(f *shopForm) { f.Sort = "price" }, "정렬은 허용된 값 중 하나여야 합니다 [mb cb]"},
		{"len 슬라이스", func(f *shopForm) { f.Tags = []string{"a"} }, "태그는 개수가 2개여야 합니다"},
		{"처리하지 않는 태그", func(f *shopForm) { f.Alpha = "123" }, "영문 값 검증 실패 (alpha)"},
		{"korean 태그 없음", func(f *shopForm) { f.NoKorean = "abc" }, "NoKorean는 최대 2자까지 입력 가능합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := valid()
			tt.mutate(&f)

			err := validator.Struct(f)
			require.Error(t, err)
			assert.Equal(t, tt.expect, validator.FormatValidationError(err))
		})
	}
}

func TestStruct_정상(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.Struct(valid()))
}

func TestFormatValidationError_검증오류가_아닌_경우(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validator.FormatValidationError(nil))
	assert.Equal(t, "plain", validator.FormatValidationError(errors.New("plain")))

	empty := go_validator.ValidationErrors{}
	assert.Equal(t, empty.Error(), validator.FormatValidationError(empty))
}
