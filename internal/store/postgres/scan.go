package postgres

import (
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/jackc/pgx/v5"
)

const (
	shopColumns    = `id, name, url, created_at`
	productColumns = `id, name, price, rating, delivery_cost, payment_mode, url, shop_id, created_at`
)

func scanShop(row pgx.Row) (contract.Shop, error) {
	var s contract.Shop
	err := row.Scan(&s.ID, &s.Name, &s.URL, &s.CreatedAt)
	return s, err
}

func scanProduct(row pgx.Row) (contract.Product, error) {
	var p contract.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.DeliveryCost, &p.PaymentMode, &p.URL, &p.ShopID, &p.CreatedAt)
	return p, err
}

func scanSearchRecord(row pgx.Row) (contract.SearchRecord, error) {
	var r contract.SearchRecord
	err := row.Scan(
		&r.ID, &r.UserID, &r.ProductID, &r.ProductName, &r.ProductPrice, &r.ProductRating,
		&r.ProductURL, &r.DeliveryCost, &r.PaymentMode, &r.ShopID, &r.ShopName, &r.CreatedAt,
	)
	return r, err
}

// collect pgx.CollectRows에 행 단위 scan 함수를 연결합니다.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}
