package handler

import (
	"net/http"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/validator"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 상품 목록
// @Tags Product
// @Produce json
// @Success 200 {object} response.ProductList
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return httputil.FromError(err)
	}
	return c.JSON(http.StatusOK, response.NewProductList(products))
}

// GetProductHandler godoc
// @Summary 상품 조회
// @Tags Product
// @Produce json
// @Param id path int true "상품 ID"
// @Success 200 {object} response.Product
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return httputil.FromError(err)
	}
	return c.JSON(http.StatusOK, response.NewProduct(p))
}

// CreateProductHandler godoc
// @Summary 상품 등록
// @Description 관리자 전용. 상점별 판매 정보를 등록합니다. 같은 이름의 상품은 상점이 달라도 같은 상품으로 비교됩니다.
// @Tags Product
// @Accept json
// @Produce json
// @Param product body request.CreateProductRequest true "상품 정보"
// @Success 201 {object} response.Product
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 또는 존재하지 않는 상점"
// @Failure 403 {object} response.ErrorResponse "관리자 권한 필요"
// @Security BearerAuth
// @Router /api/v1/products [post]
func (h *Handler) CreateProductHandler(c echo.Context) error {
	req := new(request.CreateProductRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	p, err := h.catalog.CreateProduct(c.Request().Context(), req.ToProduct())
	if err != nil {
		return httputil.FromError(err)
	}

	return c.JSON(http.StatusCreated, response.NewProduct(p))
}

// UpdateProductHandler godoc
// @Summary 상품 수정
// @Description 관리자 전용. 전달된 필드만 변경합니다.
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "상품 ID"
// @Param product body request.UpdateProductRequest true "변경할 필드"
// @Success 200 {object} response.Product
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Security BearerAuth
// @Router /api/v1/products/{id} [put]
func (h *Handler) UpdateProductHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	req := new(request.UpdateProductRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	p, err := h.catalog.UpdateProduct(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return httputil.FromError(err)
	}

	return c.JSON(http.StatusOK, response.NewProduct(p))
}

// DeleteProductHandler godoc
// @Summary 상품 삭제
// @Description 관리자 전용. 이미 저장된 검색 기록과 비교 결과는 그대로 남습니다.
// @Tags Product
// @Produce json
// @Param id path int true "상품 ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Security BearerAuth
// @Router /api/v1/products/{id} [delete]
func (h *Handler) DeleteProductHandler(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return httputil.FromError(err)
	}

	return httputil.Success(c, "상품이 삭제되었습니다")
}
