package handler

import (
	"net/http"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/validator"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultSortBy sort_by가 생략되었을 때의 값. X 상점 실구매가 오름차순 정렬이 적용됩니다.
const defaultSortBy = "cost_benefit"

// SearchHandler godoc
// @Summary 카탈로그 검색
// @Description 상품명에 검색어가 포함된(대소문자 무시) 상품을 판매 상점 정보와 함께 반환합니다.
// @Description 인증 토큰이 있으면 검색 결과가 사용자의 검색 기록으로 저장되어 /filter_sort의 후보가 됩니다.
// @Tags Compare
// @Produce json
// @Param q query string true "검색어" example(노트북)
// @Param Authorization header string false "Bearer <JWT>"
// @Success 200 {object} response.SearchResponse "검색 결과"
// @Failure 400 {object} response.ErrorResponse "검색어 누락"
// @Failure 401 {object} response.ErrorResponse "유효하지 않은 토큰"
// @Failure 404 {object} response.ErrorResponse "일치하는 상품 없음"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/search [get]
func (h *Handler) SearchHandler(c echo.Context) error {
	req := new(request.SearchRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidQuery()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	identity := auth.IdentityOrAnonymous(c)

	results, err := h.engine.Search(c.Request().Context(), req.Query, identity)
	if err != nil {
		return httputil.FromError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"query":        req.Query,
		"user_id":      identity.UserID,
		"result_count": len(results),
	}).Debug("카탈로그 검색 완료")

	return c.JSON(http.StatusOK, response.NewSearchResponse(results))
}

// FilterSortHandler godoc
// @Summary 상점 간 비교 및 정렬
// @Description 검색어와 일치하는 상품마다 판매 상점 쌍을 만들어 평점 차이(marginal_benefit)와 실구매가 차이(cost_benefit)를 계산합니다.
// @Description 인증된 사용자는 자신의 검색 기록에서, 익명 사용자는 전체 카탈로그에서 후보를 찾습니다.
// @Description 계산된 비교 결과는 매 요청마다 저장됩니다.
// @Description
// @Description 정렬 기준(sort_by):
// @Description - mb: 평점 차이 내림차순
// @Description - cb: 실구매가 차이 오름차순
// @Description - 그 외 또는 생략: X 상점 실구매가 오름차순
// @Tags Compare
// @Produce json
// @Param q query string true "검색어" example(노트북)
// @Param sort_by query string false "정렬 기준" Enums(mb, cb, cost_benefit)
// @Param Authorization header string false "Bearer <JWT>"
// @Success 200 {object} response.ComparisonResponse "비교 결과"
// @Failure 400 {object} response.ErrorResponse "검색어 누락"
// @Failure 401 {object} response.ErrorResponse "유효하지 않은 토큰"
// @Failure 404 {object} response.ErrorResponse "일치하는 상품 없음"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/filter_sort [get]
func (h *Handler) FilterSortHandler(c echo.Context) error {
	req := new(request.FilterSortRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidQuery()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}
	if req.SortBy == "" {
		req.SortBy = defaultSortBy
	}

	identity := auth.IdentityOrAnonymous(c)

	results, err := h.engine.FilterAndSort(c.Request().Context(), req.Query, req.SortBy, identity)
	if err != nil {
		return httputil.FromError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"query":        req.Query,
		"sort_by":      req.SortBy,
		"user_id":      identity.UserID,
		"result_count": len(results),
	}).Debug("상점 간 비교 완료")

	return c.JSON(http.StatusOK, response.NewComparisonResponse(results))
}
