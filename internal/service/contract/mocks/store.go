package mocks

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockTx contract.Tx 인터페이스의 Mock 구현체입니다.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) SearchProducts(ctx context.Context, substr string) ([]contract.Product, error) {
	args := m.Called(ctx, substr)
	products, _ := args.Get(0).([]contract.Product)
	return products, args.Error(1)
}

func (m *MockTx) ListShopsSellingProduct(ctx context.Context, name string) ([]contract.Shop, error) {
	args := m.Called(ctx, name)
	shops, _ := args.Get(0).([]contract.Shop)
	return shops, args.Error(1)
}

func (m *MockTx) GetListing(ctx context.Context, name string, shopID int64) (contract.Product, bool, error) {
	args := m.Called(ctx, name, shopID)
	return args.Get(0).(contract.Product), args.Bool(1), args.Error(2)
}

func (m *MockTx) GetShop(ctx context.Context, id int64) (contract.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contract.Shop), args.Error(1)
}

func (m *MockTx) FindSearchRecords(ctx context.Context, userID contract.UserID, substr string) ([]contract.SearchRecord, error) {
	args := m.Called(ctx, userID, substr)
	records, _ := args.Get(0).([]contract.SearchRecord)
	return records, args.Error(1)
}

func (m *MockTx) InsertSearchRecord(ctx context.Context, rec *contract.SearchRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockTx) InsertComparison(ctx context.Context, rec *contract.ComparisonRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// MockTxRunner 전달받은 함수를 Tx Mock으로 바로 실행합니다.
// fn이 반환한 에러를 그대로 돌려주며, 롤백 여부는 RolledBack 필드로 확인합니다.
type MockTxRunner struct {
	Tx         contract.Tx
	RolledBack bool
	Calls      int
}

func (r *MockTxRunner) WithinTx(_ context.Context, fn func(tx contract.Tx) error) error {
	r.Calls++
	if err := fn(r.Tx); err != nil {
		r.RolledBack = true
		return err
	}
	return nil
}
