package postgres

import (
	"context"
	"errors"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/jackc/pgx/v5"
)

// tx 요청 하나 동안 사용하는 contract.Tx 구현입니다.
type tx struct {
	q querier
}

func (t *tx) SearchProducts(ctx context.Context, substr string) ([]contract.Product, error) {
	// ILIKE는 %와 _를 와일드카드로 해석하므로 순수 부분 문자열 비교를 위해 strpos를 사용한다.
	rows, err := t.q.Query(ctx, `
SELECT `+productColumns+`
  FROM products
 WHERE strpos(lower(name), lower($1)) > 0
 ORDER BY id`, substr)
	if err != nil {
		return nil, wrapQueryError(err, "상품 검색")
	}
	products, err := collect(rows, scanProduct)
	return products, wrapQueryError(err, "상품 검색")
}

func (t *tx) ListShopsSellingProduct(ctx context.Context, name string) ([]contract.Shop, error) {
	rows, err := t.q.Query(ctx, `
SELECT `+shopColumns+`
  FROM shops s
 WHERE EXISTS (SELECT 1 FROM products p WHERE p.shop_id = s.id AND p.name = $1)
 ORDER BY s.id`, name)
	if err != nil {
		return nil, wrapQueryError(err, "판매 상점 조회")
	}
	shops, err := collect(rows, scanShop)
	return shops, wrapQueryError(err, "판매 상점 조회")
}

func (t *tx) GetListing(ctx context.Context, name string, shopID int64) (contract.Product, bool, error) {
	p, err := scanProduct(t.q.QueryRow(ctx, `
SELECT `+productColumns+`
  FROM products
 WHERE name = $1 AND shop_id = $2
 ORDER BY id
 LIMIT 1`, name, shopID))
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.Product{}, false, nil
	}
	if err != nil {
		return contract.Product{}, false, wrapQueryError(err, "상품 판매 정보 조회")
	}
	return p, true, nil
}

func (t *tx) GetShop(ctx context.Context, id int64) (contract.Shop, error) {
	return getShop(ctx, t.q, id)
}

func (t *tx) FindSearchRecords(ctx context.Context, userID contract.UserID, substr string) ([]contract.SearchRecord, error) {
	rows, err := t.q.Query(ctx, `
SELECT id, user_id, product_id, product_name, product_price, product_rating,
       product_url, delivery_cost, payment_mode, shop_id, shop_name, created_at
  FROM search_records
 WHERE user_id = $1 AND strpos(lower(product_name), lower($2)) > 0
 ORDER BY id`, string(userID), substr)
	if err != nil {
		return nil, wrapQueryError(err, "검색 이력 조회")
	}
	records, err := collect(rows, scanSearchRecord)
	return records, wrapQueryError(err, "검색 이력 조회")
}

func (t *tx) InsertSearchRecord(ctx context.Context, r *contract.SearchRecord) error {
	err := t.q.QueryRow(ctx, `
INSERT INTO search_records (
    user_id, product_id, product_name, product_price, product_rating,
    product_url, delivery_cost, payment_mode, shop_id, shop_name
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created_at`,
		string(r.UserID), r.ProductID, r.ProductName, r.ProductPrice, r.ProductRating,
		r.ProductURL, r.DeliveryCost, r.PaymentMode, r.ShopID, r.ShopName,
	).Scan(&r.ID, &r.CreatedAt)
	return wrapQueryError(err, "검색 이력 저장")
}

func (t *tx) InsertComparison(ctx context.Context, r *contract.ComparisonRecord) error {
	err := t.q.QueryRow(ctx, `
INSERT INTO comparison_records (
    product_id, product_name,
    shop_x_id, shop_x_cost, shop_x_rating, shop_x_delivery_cost, shop_x_payment_mode,
    shop_y_id, shop_y_cost, shop_y_rating, shop_y_delivery_cost, shop_y_payment_mode,
    marginal_benefit, cost_benefit
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id, created_at`,
		r.ProductID, r.ProductName,
		r.ShopXID, r.ShopXCost, r.ShopXRating, r.ShopXDeliveryCost, r.ShopXPaymentMode,
		r.ShopYID, r.ShopYCost, r.ShopYRating, r.ShopYDeliveryCost, r.ShopYPaymentMode,
		r.MarginalBenefit, r.CostBenefit,
	).Scan(&r.ID, &r.CreatedAt)
	return wrapQueryError(err, "비교 결과 저장")
}

func getShop(ctx context.Context, q querier, id int64) (contract.Shop, error) {
	shop, err := scanShop(q.QueryRow(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.Shop{}, contract.NewErrShopNotFound(id)
	}
	return shop, wrapQueryError(err, "상점 조회")
}

func getProduct(ctx context.Context, q querier, id int64) (contract.Product, error) {
	p, err := scanProduct(q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.Product{}, contract.NewErrProductNotFound(id)
	}
	return p, wrapQueryError(err, "상품 조회")
}
