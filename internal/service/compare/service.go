// Package compare 상점 간 가격/품질 비교 엔진입니다.
//
// 검색어 정규화 → 후보 상품 선택 → 상점 쌍 비교와 저장 → 정렬 → 응답 조립 순서로 동작하며,
// 요청 하나의 모든 읽기와 쓰기는 하나의 저장소 트랜잭션 안에서 수행됩니다.
package compare

import (
	"context"
	"errors"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
)

const component = "compare.service"

// Service 비교 엔진입니다. 요청 간에 공유하는 상태가 없어 동시에 호출해도 안전합니다.
type Service struct {
	store   contract.TxRunner
	cache   contract.ShopNameCache
	metrics *metrics.Metrics
}

// NewService 비교 엔진을 생성합니다. cache와 m은 nil이어도 됩니다.
func NewService(store contract.TxRunner, cache contract.ShopNameCache, m *metrics.Metrics) *Service {
	if store == nil {
		panic(ErrStoreNotInitialized)
	}
	return &Service{
		store:   store,
		cache:   cache,
		metrics: m,
	}
}

// Search 카탈로그에서 검색어가 포함된 상품을 찾아 상점 정보와 함께 반환합니다.
//
// 식별된 사용자의 요청이면 노출된 상품마다 SearchRecord를 남기며,
// 이 이력은 이후 FilterAndSort의 개인화 후보가 됩니다. 익명 요청은 아무것도 기록하지 않습니다.
func (s *Service) Search(ctx context.Context, rawQuery string, identity contract.Identity) ([]SearchResult, error) {
	query, err := NormalizeQuery(rawQuery)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	var recorded int

	err = s.store.WithinTx(ctx, func(tx contract.Tx) error {
		results, recorded = nil, 0

		products, err := tx.SearchProducts(ctx, query)
		if err != nil {
			return newErrStoreRead(err, "상품")
		}
		if len(products) == 0 {
			return ErrNoMatches
		}

		names := s.newShopNames(tx)
		for _, p := range products {
			shopName, err := names.lookup(ctx, p.ShopID)
			if err != nil {
				if apperrors.UnderlyingType(err) == apperrors.NotFound {
					applog.WithComponentAndFields(component, applog.Fields{
						"product_id": p.ID,
						"shop_id":    p.ShopID,
					}).Warn("상품이 참조하는 상점이 존재하지 않아 검색 결과에서 제외합니다")
					continue
				}
				return err
			}

			results = append(results, newSearchResult(p, shopName))

			if identity.Anonymous() {
				continue
			}

			rec := &contract.SearchRecord{
				UserID:        identity.UserID,
				ProductID:     p.ID,
				ProductName:   p.Name,
				ProductPrice:  p.Price,
				ProductRating: p.Rating,
				ProductURL:    p.URL,
				DeliveryCost:  p.DeliveryCost,
				PaymentMode:   p.PaymentMode,
				ShopID:        p.ShopID,
				ShopName:      shopName,
			}
			if err := tx.InsertSearchRecord(ctx, rec); err != nil {
				return newErrPersistence(err, "검색 이력")
			}
			recorded++
		}

		// 일치한 상품이 모두 제외되었으면 일치 항목이 없는 것과 같다.
		if len(results) == 0 {
			return ErrNoMatches
		}

		return nil
	})
	if err != nil {
		s.logFailure(err, "search", query, identity)
		return nil, err
	}

	s.metrics.SearchRecorded(recorded)

	return results, nil
}

// FilterAndSort 후보 상품마다 판매 상점을 두 개씩 짝지어 비교하고, 결과를 저장한 뒤 sortBy 기준으로 정렬해 반환합니다.
//
// 식별된 사용자는 자신의 검색 이력에서, 익명 사용자는 카탈로그에서 후보를 찾습니다.
// 후보는 있지만 비교 가능한 쌍이 하나도 없으면 빈 결과를 반환합니다.
func (s *Service) FilterAndSort(ctx context.Context, rawQuery, sortBy string, identity contract.Identity) ([]ComparisonResult, error) {
	query, err := NormalizeQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	policy := ParseSortPolicy(sortBy)

	var results []ComparisonResult
	var source string
	var created int

	err = s.store.WithinTx(ctx, func(tx contract.Tx) error {
		candidates, src, err := resolveCandidates(ctx, tx, query, identity)
		source = src
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return ErrNoMatches
		}

		records, err := s.pairAndCompare(ctx, tx, candidates)
		if err != nil {
			return err
		}
		created = len(records)

		Rank(records, policy)

		results, err = assembleComparisons(ctx, s.newShopNames(tx), records)
		return err
	})
	if err != nil {
		s.logFailure(err, "filter_sort", query, identity)
		return nil, err
	}

	s.metrics.ComparisonsCreated(source, created)

	applog.WithComponentAndFields(component, applog.Fields{
		"query":       query,
		"sort_by":     string(policy),
		"source":      source,
		"comparisons": created,
	}).Debug("비교 결과 생성 완료")

	return results, nil
}

// logFailure 서버 장애에 해당하는 에러만 Error 레벨로 남깁니다.
// 검색어 오류와 결과 없음은 정상적인 응답이므로 기록하지 않습니다.
func (s *Service) logFailure(err error, op, query string, identity contract.Identity) {
	if errors.Is(err, ErrInvalidQuery) || errors.Is(err, ErrNoMatches) {
		return
	}
	applog.WithComponentAndFields(component, applog.Fields{
		"operation": op,
		"query":     query,
		"user_id":   identity.UserID,
		"error":     err,
	}).Error("요청 처리 중 저장소 오류가 발생하여 트랜잭션을 롤백했습니다")
}
