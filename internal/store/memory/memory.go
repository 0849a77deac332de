// Package memory 프로세스 메모리에 데이터를 보관하는 저장소입니다.
//
// 개발 환경과 테스트에서 PostgreSQL 없이 서버를 띄우기 위해 사용합니다.
// 트랜잭션은 데이터 사본 위에서 실행되며, 성공하면 사본으로 교체하고 실패하면 사본을 버립니다.
// 트랜잭션은 한 번에 하나씩만 실행됩니다.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
)

type dataset struct {
	shops       map[int64]contract.Shop
	products    map[int64]contract.Product
	searches    []contract.SearchRecord
	comparisons []contract.ComparisonRecord

	nextShopID       int64
	nextProductID    int64
	nextSearchID     int64
	nextComparisonID int64
}

func newDataset() *dataset {
	return &dataset{
		shops:    make(map[int64]contract.Shop),
		products: make(map[int64]contract.Product),
	}
}

func (d *dataset) clone() *dataset {
	c := *d
	c.shops = maps.Clone(d.shops)
	c.products = maps.Clone(d.products)
	c.searches = slices.Clone(d.searches)
	c.comparisons = slices.Clone(d.comparisons)
	return &c
}

// Store contract.Store의 메모리 구현체입니다.
type Store struct {
	mu   sync.Mutex
	data *dataset

	now func() time.Time
}

// New 빈 저장소를 생성합니다.
func New() *Store {
	return &Store{
		data: newDataset(),
		now:  time.Now,
	}
}

var _ contract.Store = (*Store)(nil)

// WithinTx fn을 데이터 사본 위에서 실행하고, 에러가 없을 때만 사본을 반영합니다.
func (s *Store) WithinTx(ctx context.Context, fn func(tx contract.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(&tx{d: working, now: s.now}); err != nil {
		return err
	}
	s.data = working
	return nil
}

// update CatalogWriter 메서드가 단일 연산 트랜잭션으로 데이터를 바꿀 때 사용합니다.
func (s *Store) update(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(working); err != nil {
		return err
	}
	s.data = working
	return nil
}

func (s *Store) read(fn func(d *dataset)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Ping 메모리 저장소는 항상 사용 가능합니다.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close 메모리 저장소는 정리할 자원이 없습니다.
func (s *Store) Close() {}

// CountRecords 테이블별 레코드 수를 반환합니다.
func (s *Store) CountRecords(_ context.Context) (contract.RecordCounts, error) {
	var c contract.RecordCounts
	s.read(func(d *dataset) {
		c = contract.RecordCounts{
			Shops:         int64(len(d.shops)),
			Products:      int64(len(d.products)),
			SearchRecords: int64(len(d.searches)),
			Comparisons:   int64(len(d.comparisons)),
		}
	})
	return c, nil
}

// SearchRecords userID의 검색 이력 전체를 반환합니다. 테스트에서 기록 결과를 확인할 때 사용합니다.
func (s *Store) SearchRecords(userID contract.UserID) []contract.SearchRecord {
	var out []contract.SearchRecord
	s.read(func(d *dataset) {
		for _, r := range d.searches {
			if r.UserID == userID {
				out = append(out, r)
			}
		}
	})
	return out
}

// Comparisons 저장된 비교 레코드 전체를 반환합니다. 테스트에서 기록 결과를 확인할 때 사용합니다.
func (s *Store) Comparisons() []contract.ComparisonRecord {
	var out []contract.ComparisonRecord
	s.read(func(d *dataset) {
		out = slices.Clone(d.comparisons)
	})
	return out
}

// containsFold PostgreSQL의 ILIKE '%substr%'와 같은 의미의 부분 일치 검사입니다.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sortedProducts(d *dataset, keep func(p contract.Product) bool) []contract.Product {
	var out []contract.Product
	for _, p := range d.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b contract.Product) int { return cmpID(a.ID, b.ID) })
	return out
}

func cmpID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
