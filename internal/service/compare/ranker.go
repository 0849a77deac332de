package compare

import (
	"slices"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
)

// SortPolicy 비교 결과 정렬 기준입니다.
type SortPolicy string

const (
	// SortByMarginalBenefit 평점 우위(MarginalBenefit)가 큰 순서
	SortByMarginalBenefit SortPolicy = "mb"

	// SortByCostBenefit 비용 차이(CostBenefit)가 작은 순서
	SortByCostBenefit SortPolicy = "cb"

	// SortByDefault X 상점의 가격+배송비가 작은 순서. CostBenefit과 다른 기준이라는 점에 주의합니다.
	SortByDefault SortPolicy = "cost_benefit"
)

// ParseSortPolicy sort_by 파라미터를 정렬 기준으로 바꿉니다. 알 수 없는 값은 SortByDefault로 처리합니다.
func ParseSortPolicy(token string) SortPolicy {
	switch SortPolicy(token) {
	case SortByMarginalBenefit, SortByCostBenefit:
		return SortPolicy(token)
	default:
		return SortByDefault
	}
}

// Rank records를 제자리에서 안정 정렬합니다. 정렬 키가 같은 레코드는 생성 순서를 유지합니다.
func Rank(records []*contract.ComparisonRecord, policy SortPolicy) {
	switch policy {
	case SortByMarginalBenefit:
		slices.SortStableFunc(records, func(a, b *contract.ComparisonRecord) int {
			return b.MarginalBenefit.Cmp(a.MarginalBenefit)
		})
	case SortByCostBenefit:
		slices.SortStableFunc(records, func(a, b *contract.ComparisonRecord) int {
			return a.CostBenefit.Cmp(b.CostBenefit)
		})
	default:
		slices.SortStableFunc(records, func(a, b *contract.ComparisonRecord) int {
			return a.ShopXTotalCost().Cmp(b.ShopXTotalCost())
		})
	}
}
