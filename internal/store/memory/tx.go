package memory

import (
	"context"
	"slices"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
)

// tx WithinTx 동안 데이터 사본을 읽고 씁니다.
type tx struct {
	d   *dataset
	now func() time.Time
}

func (t *tx) SearchProducts(ctx context.Context, substr string) ([]contract.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sortedProducts(t.d, func(p contract.Product) bool {
		return containsFold(p.Name, substr)
	}), nil
}

func (t *tx) ListShopsSellingProduct(ctx context.Context, name string) ([]contract.Shop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ids []int64
	for _, p := range t.d.products {
		if p.Name == name && !slices.Contains(ids, p.ShopID) {
			ids = append(ids, p.ShopID)
		}
	}
	slices.Sort(ids)

	shops := make([]contract.Shop, 0, len(ids))
	for _, id := range ids {
		if shop, ok := t.d.shops[id]; ok {
			shops = append(shops, shop)
		}
	}
	return shops, nil
}

func (t *tx) GetListing(ctx context.Context, name string, shopID int64) (contract.Product, bool, error) {
	if err := ctx.Err(); err != nil {
		return contract.Product{}, false, err
	}

	listings := sortedProducts(t.d, func(p contract.Product) bool {
		return p.Name == name && p.ShopID == shopID
	})
	if len(listings) == 0 {
		return contract.Product{}, false, nil
	}
	return listings[0], true, nil
}

func (t *tx) GetShop(ctx context.Context, id int64) (contract.Shop, error) {
	if err := ctx.Err(); err != nil {
		return contract.Shop{}, err
	}

	shop, ok := t.d.shops[id]
	if !ok {
		return contract.Shop{}, contract.NewErrShopNotFound(id)
	}
	return shop, nil
}

func (t *tx) FindSearchRecords(ctx context.Context, userID contract.UserID, substr string) ([]contract.SearchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []contract.SearchRecord
	for _, r := range t.d.searches {
		if r.UserID == userID && containsFold(r.ProductName, substr) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (t *tx) InsertSearchRecord(ctx context.Context, rec *contract.SearchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.d.nextSearchID++
	rec.ID = t.d.nextSearchID
	rec.CreatedAt = t.now()
	t.d.searches = append(t.d.searches, *rec)
	return nil
}

func (t *tx) InsertComparison(ctx context.Context, rec *contract.ComparisonRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.d.nextComparisonID++
	rec.ID = t.d.nextComparisonID
	rec.CreatedAt = t.now()
	t.d.comparisons = append(t.d.comparisons, *rec)
	return nil
}
