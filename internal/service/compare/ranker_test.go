package compare

import (
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
)

func record(id int64, mb, cb, xCost, xDelivery string) *contract.ComparisonRecord {
	return &contract.ComparisonRecord{
		ID:                id,
		MarginalBenefit:   dec(mb),
		CostBenefit:       dec(cb),
		ShopXCost:         dec(xCost),
		ShopXDeliveryCost: dec(xDelivery),
	}
}

func ids(records []*contract.ComparisonRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestParseSortPolicy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortByMarginalBenefit, ParseSortPolicy("mb"))
	assert.Equal(t, SortByCostBenefit, ParseSortPolicy("cb"))
	assert.Equal(t, SortByDefault, ParseSortPolicy("cost_benefit"))
	assert.Equal(t, SortByDefault, ParseSortPolicy(""))
	assert.Equal(t, SortByDefault, ParseSortPolicy("MB"), "대소문자가 다르면 알 수 없는 값으로 취급합니다")
	assert.Equal(t, SortByDefault, ParseSortPolicy("price"))
}

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy SortPolicy
		input  []*contract.ComparisonRecord
		want   []int64
	}{
		{
			name:   "cb 오름차순, 동률은 생성 순서 유지",
			policy: SortByCostBenefit,
			input: []*contract.ComparisonRecord{
				record(1, "0", "10", "0", "0"),
				record(2, "0", "-5", "0", "0"),
				record(3, "0", "10", "0", "0"),
			},
			want: []int64{2, 1, 3},
		},
		{
			name:   "mb 내림차순, 동률은 생성 순서 유지",
			policy: SortByMarginalBenefit,
			input: []*contract.ComparisonRecord{
				record(1, "0.5", "0", "0", "0"),
				record(2, "1.5", "0", "0", "0"),
				record(3, "-1", "0", "0", "0"),
				record(4, "0.5", "0", "0", "0"),
			},
			want: []int64{2, 1, 4, 3},
		},
		{
			name:   "기본 정렬은 X 상점 총비용 오름차순 (cb와 무관)",
			policy: ParseSortPolicy("unknown"),
			input: []*contract.ComparisonRecord{
				record(1, "0", "-100", "1000", "50"),
				record(2, "0", "100", "900", "0"),
				record(3, "0", "0", "950", "50"),
			},
			want: []int64{2, 1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			Rank(tt.input, tt.policy)
			assert.Equal(t, tt.want, ids(tt.input))
		})
	}
}

func TestNewComparisonRecord(t *testing.T) {
	t.Parallel()

	x := contract.Product{Price: dec("1000"), Rating: dec("4.5"), DeliveryCost: dec("50"), PaymentMode: "card", ShopID: 1}
	y := contract.Product{Price: dec("950"), Rating: dec("4.0"), DeliveryCost: dec("40"), PaymentMode: "cash", ShopID: 2}

	r := newComparisonRecord(7, "Phone", x, y)

	assert.Equal(t, int64(7), r.ProductID)
	assert.Equal(t, int64(1), r.ShopXID)
	assert.Equal(t, int64(2), r.ShopYID)
	assert.Equal(t, "0.5", r.MarginalBenefit.String())
	assert.Equal(t, "60", r.CostBenefit.String())
	assert.Equal(t, "cash", r.ShopYPaymentMode)
}
