package postgres

import (
	"context"
	"errors"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/jackc/pgx/v5"
)

func (s *Store) ListShops(ctx context.Context) ([]contract.ShopSummary, error) {
	rows, err := s.pool.Query(ctx, `
SELECT s.id, s.name, s.url, s.created_at, count(p.id)
  FROM shops s
  LEFT JOIN products p ON p.shop_id = s.id
 GROUP BY s.id
 ORDER BY s.id`)
	if err != nil {
		return nil, wrapQueryError(err, "상점 목록 조회")
	}

	shops, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (contract.ShopSummary, error) {
		var s contract.ShopSummary
		err := row.Scan(&s.ID, &s.Name, &s.URL, &s.CreatedAt, &s.ProductsCount)
		return s, err
	})
	return shops, wrapQueryError(err, "상점 목록 조회")
}

func (s *Store) GetShop(ctx context.Context, id int64) (contract.Shop, error) {
	return getShop(ctx, s.pool, id)
}

func (s *Store) CreateShop(ctx context.Context, shop *contract.Shop) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO shops (name, url) VALUES ($1, $2) RETURNING id, created_at`,
		shop.Name, shop.URL,
	).Scan(&shop.ID, &shop.CreatedAt)
	if pgErrorCode(err) == codeUniqueViolation {
		return contract.NewErrDuplicateShopName(shop.Name)
	}
	return wrapQueryError(err, "상점 등록")
}

func (s *Store) UpdateShop(ctx context.Context, id int64, patch contract.ShopPatch) (contract.Shop, error) {
	var updated contract.Shop
	err := pgx.BeginFunc(ctx, s.pool, func(t pgx.Tx) error {
		shop, err := scanShop(t.QueryRow(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return contract.NewErrShopNotFound(id)
			}
			return err
		}

		patch.Apply(&shop)
		if _, err := t.Exec(ctx, `UPDATE shops SET name = $2, url = $3 WHERE id = $1`, id, shop.Name, shop.URL); err != nil {
			if pgErrorCode(err) == codeUniqueViolation {
				return contract.NewErrDuplicateShopName(shop.Name)
			}
			return err
		}
		updated = shop
		return nil
	})
	return updated, wrapQueryError(err, "상점 수정")
}

// DeleteShop 판매 상품이 남아 있으면 Conflict 에러를 반환합니다.
// 검사와 삭제 사이에 상품이 추가되더라도 외래 키 제약(ON DELETE RESTRICT)이 삭제를 막습니다.
func (s *Store) DeleteShop(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, s.pool, func(t pgx.Tx) error {
		var count int
		if err := t.QueryRow(ctx, `SELECT count(*) FROM products WHERE shop_id = $1`, id).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return contract.NewErrShopHasProducts(id, count)
		}

		tag, err := t.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
		if err != nil {
			if pgErrorCode(err) == codeForeignKeyViolation {
				return contract.NewErrShopHasProducts(id, 1)
			}
			return err
		}
		if tag.RowsAffected() == 0 {
			return contract.NewErrShopNotFound(id)
		}
		return nil
	})
	return wrapQueryError(err, "상점 삭제")
}

func (s *Store) ListProducts(ctx context.Context) ([]contract.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, wrapQueryError(err, "상품 목록 조회")
	}
	products, err := collect(rows, scanProduct)
	return products, wrapQueryError(err, "상품 목록 조회")
}

func (s *Store) GetProduct(ctx context.Context, id int64) (contract.Product, error) {
	return getProduct(ctx, s.pool, id)
}

func (s *Store) ListProductsByShop(ctx context.Context, shopID int64) ([]contract.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE shop_id = $1 ORDER BY id`, shopID)
	if err != nil {
		return nil, wrapQueryError(err, "상점별 상품 조회")
	}
	products, err := collect(rows, scanProduct)
	return products, wrapQueryError(err, "상점별 상품 조회")
}

func (s *Store) CreateProduct(ctx context.Context, p *contract.Product) error {
	err := s.pool.QueryRow(ctx, `
INSERT INTO products (name, price, rating, delivery_cost, payment_mode, url, shop_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`,
		p.Name, p.Price, p.Rating, p.DeliveryCost, p.PaymentMode, p.URL, p.ShopID,
	).Scan(&p.ID, &p.CreatedAt)
	if pgErrorCode(err) == codeForeignKeyViolation {
		return contract.NewErrUnknownShopReference(p.ShopID)
	}
	return wrapQueryError(err, "상품 등록")
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, patch contract.ProductPatch) (contract.Product, error) {
	var updated contract.Product
	err := pgx.BeginFunc(ctx, s.pool, func(t pgx.Tx) error {
		p, err := scanProduct(t.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return contract.NewErrProductNotFound(id)
			}
			return err
		}

		patch.Apply(&p)
		_, err = t.Exec(ctx, `
UPDATE products
   SET name = $2, price = $3, rating = $4, delivery_cost = $5, payment_mode = $6, url = $7, shop_id = $8
 WHERE id = $1`,
			id, p.Name, p.Price, p.Rating, p.DeliveryCost, p.PaymentMode, p.URL, p.ShopID)
		if err != nil {
			if pgErrorCode(err) == codeForeignKeyViolation {
				return contract.NewErrUnknownShopReference(p.ShopID)
			}
			return err
		}
		updated = p
		return nil
	})
	return updated, wrapQueryError(err, "상품 수정")
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapQueryError(err, "상품 삭제")
	}
	if tag.RowsAffected() == 0 {
		return contract.NewErrProductNotFound(id)
	}
	return nil
}
