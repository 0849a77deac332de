package memory

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShop(t *testing.T, s *Store, name string) contract.Shop {
	t.Helper()
	shop := contract.Shop{Name: name, URL: "https://" + name + ".example.com"}
	require.NoError(t, s.CreateShop(context.Background(), &shop))
	return shop
}

func mustProduct(t *testing.T, s *Store, name string, shopID int64, price int64) contract.Product {
	t.Helper()
	p := contract.Product{
		Name:         name,
		Price:        decimal.NewFromInt(price),
		Rating:       decimal.RequireFromString("4.5"),
		DeliveryCost: decimal.NewFromInt(30),
		PaymentMode:  "card",
		URL:          "https://example.com/p",
		ShopID:       shopID,
	}
	require.NoError(t, s.CreateProduct(context.Background(), &p))
	return p
}

func TestWithinTx_실패하면_롤백(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(tx contract.Tx) error {
		require.NoError(t, tx.InsertComparison(ctx, &contract.ComparisonRecord{ShopXID: 1, ShopYID: 2}))
		require.NoError(t, tx.InsertSearchRecord(ctx, &contract.SearchRecord{UserID: "u1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	counts, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts.Comparisons)
	assert.Zero(t, counts.SearchRecords)
}

func TestWithinTx_성공하면_반영(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	rec := &contract.ComparisonRecord{ShopXID: 1, ShopYID: 2}
	require.NoError(t, s.WithinTx(ctx, func(tx contract.Tx) error {
		return tx.InsertComparison(ctx, rec)
	}))

	assert.Equal(t, int64(1), rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Len(t, s.Comparisons(), 1)
}

func TestWithinTx_취소된_컨텍스트(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := New().WithinTx(ctx, func(contract.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestTx_카탈로그_조회(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	a := mustShop(t, s, "alpha")
	b := mustShop(t, s, "beta")
	c := mustShop(t, s, "gamma")

	mustProduct(t, s, "Galaxy Phone", c.ID, 900)
	mustProduct(t, s, "Galaxy Phone", a.ID, 1000)
	mustProduct(t, s, "galaxy phone case", b.ID, 20)
	mustProduct(t, s, "Laptop", b.ID, 2000)

	require.NoError(t, s.WithinTx(ctx, func(tx contract.Tx) error {
		products, err := tx.SearchProducts(ctx, "GALAXY")
		require.NoError(t, err)
		require.Len(t, products, 3, "대소문자를 무시한 부분 일치여야 합니다")
		assert.True(t, products[0].ID < products[1].ID && products[1].ID < products[2].ID)

		shops, err := tx.ListShopsSellingProduct(ctx, "Galaxy Phone")
		require.NoError(t, err)
		require.Len(t, shops, 2, "이름이 정확히 같은 상품만 포함해야 합니다")
		assert.Equal(t, []int64{a.ID, c.ID}, []int64{shops[0].ID, shops[1].ID})

		listing, ok, err := tx.GetListing(ctx, "Galaxy Phone", a.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, decimal.NewFromInt(1000).Equal(listing.Price))

		_, ok, err = tx.GetListing(ctx, "Galaxy Phone", b.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = tx.GetShop(ctx, 999)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
		return nil
	}))
}

func TestTx_검색이력_사용자별_조회(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	require.NoError(t, s.WithinTx(ctx, func(tx contract.Tx) error {
		for _, r := range []contract.SearchRecord{
			{UserID: "u1", ProductName: "Galaxy Phone"},
			{UserID: "u2", ProductName: "Galaxy Phone"},
			{UserID: "u1", ProductName: "Laptop"},
		} {
			require.NoError(t, tx.InsertSearchRecord(ctx, &r))
		}
		return nil
	}))

	require.NoError(t, s.WithinTx(ctx, func(tx contract.Tx) error {
		recs, err := tx.FindSearchRecords(ctx, "u1", "galaxy")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, contract.UserID("u1"), recs[0].UserID)
		return nil
	}))

	assert.Len(t, s.SearchRecords("u1"), 2)
}

func TestCatalog_상점(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	a := mustShop(t, s, "alpha")
	b := mustShop(t, s, "beta")
	mustProduct(t, s, "Laptop", a.ID, 1000)

	err := s.CreateShop(ctx, &contract.Shop{Name: "alpha"})
	assert.True(t, apperrors.Is(err, apperrors.Conflict), "상점 이름 중복은 Conflict여야 합니다")

	name := "alpha"
	_, err = s.UpdateShop(ctx, b.ID, contract.ShopPatch{Name: &name})
	assert.True(t, apperrors.Is(err, apperrors.Conflict))

	url := "https://beta2.example.com"
	updated, err := s.UpdateShop(ctx, b.ID, contract.ShopPatch{URL: &url})
	require.NoError(t, err)
	assert.Equal(t, "beta", updated.Name)
	assert.Equal(t, url, updated.URL)

	summaries, err := s.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].ProductsCount)
	assert.Equal(t, 0, summaries[1].ProductsCount)

	err = s.DeleteShop(ctx, a.ID)
	assert.True(t, apperrors.Is(err, apperrors.Conflict), "상품이 남은 상점은 삭제할 수 없어야 합니다")

	require.NoError(t, s.DeleteShop(ctx, b.ID))
	_, err = s.GetShop(ctx, b.ID)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	assert.True(t, apperrors.Is(s.DeleteShop(ctx, 999), apperrors.NotFound))
}

func TestCatalog_상품(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	a := mustShop(t, s, "alpha")
	p := mustProduct(t, s, "Laptop", a.ID, 1000)
	assert.False(t, p.CreatedAt.IsZero())

	err := s.CreateProduct(ctx, &contract.Product{Name: "Ghost", ShopID: 999})
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	price := decimal.NewFromInt(900)
	updated, err := s.UpdateProduct(ctx, p.ID, contract.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, "Laptop", updated.Name)

	ghost := int64(999)
	_, err = s.UpdateProduct(ctx, p.ID, contract.ProductPatch{ShopID: &ghost})
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ShopID, "실패한 수정은 반영되지 않아야 합니다")

	byShop, err := s.ListProductsByShop(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, byShop, 1)

	_, err = s.ListProductsByShop(ctx, 999)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	assert.True(t, apperrors.Is(s.DeleteProduct(ctx, p.ID), apperrors.NotFound))

	all, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCountRecords(t *testing.T) {
	t.Parallel()

	s := New()
	a := mustShop(t, s, "alpha")
	mustProduct(t, s, "Laptop", a.ID, 1000)

	counts, err := s.CountRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contract.RecordCounts{Shops: 1, Products: 1}, counts)
	assert.NoError(t, s.Ping(context.Background()))
}
