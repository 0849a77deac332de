// Package contract 서비스 계층과 저장소 계층이 공유하는 도메인 타입과 인터페이스를 정의합니다.
package contract

import "context"

// CatalogReader 비교 엔진이 카탈로그를 조회할 때 사용하는 읽기 전용 계약입니다.
type CatalogReader interface {
	// SearchProducts 이름에 substr이 포함된(대소문자 무시) 상품을 ID 순으로 반환합니다.
	SearchProducts(ctx context.Context, substr string) ([]Product, error)

	// ListShopsSellingProduct 이름이 정확히 name인 상품을 판매하는 상점을 ID 순으로 반환합니다.
	ListShopsSellingProduct(ctx context.Context, name string) ([]Shop, error)

	// GetListing 상점 shopID가 판매하는 name 상품을 반환합니다. 없으면 false를 반환합니다.
	GetListing(ctx context.Context, name string, shopID int64) (Product, bool, error)

	// GetShop 상점을 조회합니다. 없으면 NotFound 에러를 반환합니다.
	GetShop(ctx context.Context, id int64) (Shop, error)
}

// HistoryStore 사용자별 검색 이력 저장소입니다.
type HistoryStore interface {
	// FindSearchRecords userID의 검색 이력 중 상품명에 substr이 포함된(대소문자 무시) 레코드를 기록 순으로 반환합니다.
	FindSearchRecords(ctx context.Context, userID UserID, substr string) ([]SearchRecord, error)

	// InsertSearchRecord 레코드를 저장하고 ID와 CreatedAt을 채웁니다.
	InsertSearchRecord(ctx context.Context, rec *SearchRecord) error
}

// ComparisonStore 비교 결과 저장소입니다.
type ComparisonStore interface {
	// InsertComparison 레코드를 저장하고 ID와 CreatedAt을 채웁니다.
	InsertComparison(ctx context.Context, rec *ComparisonRecord) error
}

// Tx 하나의 요청 안에서 수행되는 모든 읽기와 쓰기를 묶는 트랜잭션입니다.
type Tx interface {
	CatalogReader
	HistoryStore
	ComparisonStore
}

// TxRunner fn을 하나의 트랜잭션 안에서 실행합니다.
// fn이 에러를 반환하면 모든 쓰기를 롤백하고 그 에러를 그대로 반환합니다.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// CatalogWriter 관리자용 카탈로그 CRUD 계약입니다.
//
// 존재하지 않는 대상은 NotFound, 상점명 중복이나 상품이 남아 있는 상점 삭제는 Conflict 에러로 분류합니다.
type CatalogWriter interface {
	ListShops(ctx context.Context) ([]ShopSummary, error)
	GetShop(ctx context.Context, id int64) (Shop, error)
	CreateShop(ctx context.Context, shop *Shop) error
	UpdateShop(ctx context.Context, id int64, patch ShopPatch) (Shop, error)
	DeleteShop(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	ListProductsByShop(ctx context.Context, shopID int64) ([]Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// StatsReader 운영 리포트용 레코드 수 조회 계약입니다.
type StatsReader interface {
	CountRecords(ctx context.Context) (RecordCounts, error)
}

// Pinger 헬스체크용 연결 확인 계약입니다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store 저장소 구현체(postgres, memory)가 제공하는 전체 계약입니다.
type Store interface {
	TxRunner
	CatalogWriter
	StatsReader
	Pinger
	Close()
}

// ShopNameCache 상점 ID → 이름 캐시입니다. 응답 조립 시 상점 이름 조회를 줄이는 데 사용됩니다.
type ShopNameCache interface {
	// Get 캐시된 이름을 반환합니다. 캐시에 없으면 false를 반환합니다.
	Get(ctx context.Context, shopID int64) (string, bool, error)
	Set(ctx context.Context, shopID int64, name string) error
	Delete(ctx context.Context, shopID int64) error
}
