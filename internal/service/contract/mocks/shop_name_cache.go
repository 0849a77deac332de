package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockShopNameCache contract.ShopNameCache 인터페이스의 Mock 구현체입니다.
type MockShopNameCache struct {
	mock.Mock
}

func (m *MockShopNameCache) Get(ctx context.Context, shopID int64) (string, bool, error) {
	args := m.Called(ctx, shopID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockShopNameCache) Set(ctx context.Context, shopID int64, name string) error {
	args := m.Called(ctx, shopID, name)
	return args.Error(0)
}

func (m *MockShopNameCache) Delete(ctx context.Context, shopID int64) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}
