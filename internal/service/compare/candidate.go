package compare

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
)

const (
	sourceHistory = "history"
	sourceCatalog = "catalog"
)

// candidate 비교 대상 후보 상품입니다. 이름이 상점 간 동일 상품 판단 기준입니다.
type candidate struct {
	productID int64
	name      string
}

// candidateSet 이름이 같은 후보는 처음 나온 것만 남깁니다.
// 한 상품명은 판매 상점 전체를 한 번에 짝지으므로 같은 이름을 다시 평가하면 쌍이 중복됩니다.
type candidateSet struct {
	items []candidate
	seen  map[string]struct{}
}

func newCandidateSet(capacity int) *candidateSet {
	return &candidateSet{
		items: make([]candidate, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

func (s *candidateSet) add(productID int64, name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.items = append(s.items, candidate{productID: productID, name: name})
}

// resolveCandidates 개인화 경로의 후보를 고릅니다.
// 식별된 사용자는 자신의 검색 이력에서, 익명 사용자는 카탈로그에서 후보를 찾습니다.
func resolveCandidates(ctx context.Context, tx contract.Tx, query string, identity contract.Identity) ([]candidate, string, error) {
	if !identity.Anonymous() {
		records, err := tx.FindSearchRecords(ctx, identity.UserID, query)
		if err != nil {
			return nil, sourceHistory, newErrStoreRead(err, "검색 이력")
		}

		set := newCandidateSet(len(records))
		for _, r := range records {
			set.add(r.ProductID, r.ProductName)
		}
		return set.items, sourceHistory, nil
	}

	products, err := tx.SearchProducts(ctx, query)
	if err != nil {
		return nil, sourceCatalog, newErrStoreRead(err, "상품")
	}

	set := newCandidateSet(len(products))
	for _, p := range products {
		set.add(p.ID, p.Name)
	}
	return set.items, sourceCatalog, nil
}
