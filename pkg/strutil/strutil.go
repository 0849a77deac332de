// Package strutil 문자열 가공 유틸리티를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

const maskChars = "***"

// Mask 토큰이나 비밀번호처럼 로그에 그대로 남기면 안 되는 값을 가립니다.
//
//	""                 -> ""
//	"abc"              -> "***"
//	"abcdefgh"         -> "abcd***"
//	"abcdefghijklmnop" -> "abcd***mnop"
func Mask(s string) string {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return ""
	case n <= 3:
		return maskChars
	}

	runes := []rune(s)
	if n <= 12 {
		return string(runes[:4]) + maskChars
	}
	return string(runes[:4]) + maskChars + string(runes[n-4:])
}

// Truncate 문자열을 최대 limit 글자(rune)로 자르고, 잘린 경우 "..."을 덧붙입니다.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

// SplitAndTrim 구분자로 나눈 뒤 각 항목의 공백을 제거하고 빈 항목은 버립니다.
// 남는 항목이 없으면 nil을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var out []string
	for part := range strings.SplitSeq(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
