package auth

import (
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
)

var (
	// ErrInvalidToken 토큰 서명이나 형식이 올바르지 않을 때 반환합니다.
	ErrInvalidToken = apperrors.New(apperrors.Unauthorized, "인증 토큰이 유효하지 않습니다")

	// ErrIssuerMismatch 토큰 발급자(iss)가 설정과 다를 때 반환합니다.
	ErrIssuerMismatch = apperrors.New(apperrors.Unauthorized, "허용되지 않은 발급자의 인증 토큰입니다")

	// ErrSubjectRequired 토큰에 사용자 ID(sub)가 없을 때 반환합니다.
	ErrSubjectRequired = apperrors.New(apperrors.Unauthorized, "인증 토큰에 사용자 ID(sub)가 없습니다")
)

func newErrInvalidToken(cause error) error {
	return apperrors.Wrap(cause, apperrors.Unauthorized, "인증 토큰이 유효하지 않습니다")
}

func newErrUnexpectedSigningMethod(alg any) error {
	return apperrors.Newf(apperrors.Unauthorized, "지원하지 않는 서명 알고리즘입니다 (alg=%v)", alg)
}
