package handler

import (
	"net/http"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/validator"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// ListShopsHandler godoc
// @Summary 상점 목록
// @Description 등록된 모든 상점과 상점별 판매 상품 수를 반환합니다.
// @Tags Shop
// @Produce json
// @Success 200 {object} response.ShopList
// @Router /api/v1/shops [get]
func (h *Handler) ListShopsHandler(c echo.Context) error {
	shops, err := h.catalog.ListShops(c.Request().Context())
	if err != nil {
		return httputil.FromError(err)
	}
	return c.JSON(http.StatusOK, response.NewShopList(shops))
}

// GetShopHandler godoc
// @Summary 상점 조회
// @Description 상점 정보와 그 상점이 판매하는 상품 목록을 반환합니다.
// @Tags Shop
// @Produce json
// @Param id path int true "상점 ID"
// @Success 200 {object} response.ShopDetail
// @Failure 404 {object} response.ErrorResponse "상점 없음"
// @Router /api/v1/shops/{id} [get]
func (h *Handler) GetShopHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.catalog.GetShop(c.Request().Context(), id)
	if err != nil {
		return httputil.FromError(err)
	}
	return c.JSON(http.StatusOK, response.NewShopDetail(detail))
}

// CreateShopHandler godoc
// @Summary 상점 등록
// @Description 관리자 전용. 상점 이름은 중복될 수 없습니다.
// @Tags Shop
// @Accept json
// @Produce json
// @Param shop body request.CreateShopRequest true "상점 정보"
// @Success 201 {object} response.Shop
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure 409 {object} response.ErrorResponse "이름 중복"
// @Security BearerAuth
// @Router /api/v1/shops [post]
func (h *Handler) CreateShopHandler(c echo.Context) error {
	req := new(request.CreateShopRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	shop, err := h.catalog.CreateShop(c.Request().Context(), req.ToShop())
	if err != nil {
		return httputil.FromError(err)
	}

	return c.JSON(http.StatusCreated, response.NewShop(shop))
}

// UpdateShopHandler godoc
// @Summary 상점 수정
// @Description 관리자 전용. 전달된 필드만 변경합니다.
// @Tags Shop
// @Accept json
// @Produce json
// @Param id path int true "상점 ID"
// @Param shop body request.UpdateShopRequest true "변경할 필드"
// @Success 200 {object} response.Shop
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상점 없음"
// @Failure 409 {object} response.ErrorResponse "이름 중복"
// @Security BearerAuth
// @Router /api/v1/shops/{id} [put]
func (h *Handler) UpdateShopHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	req := new(request.UpdateShopRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	shop, err := h.catalog.UpdateShop(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return httputil.FromError(err)
	}

	return c.JSON(http.StatusOK, response.NewShop(shop))
}

// DeleteShopHandler godoc
// @Summary 상점 삭제
// @Description 관리자 전용. 판매 중인 상품이 남아 있으면 삭제할 수 없습니다.
// @Tags Shop
// @Produce json
// @Param id path int true "상점 ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "상점 없음"
// @Failure 409 {object} response.ErrorResponse "상품이 남아 있음"
// @Security BearerAuth
// @Router /api/v1/shops/{id} [delete]
func (h *Handler) DeleteShopHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteShop(c.Request().Context(), id); err != nil {
		return httputil.FromError(err)
	}

	return httputil.Success(c, "상점이 삭제되었습니다")
}
