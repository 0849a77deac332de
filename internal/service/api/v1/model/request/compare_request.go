package request

// SearchRequest 카탈로그 검색 요청
type SearchRequest struct {
	// 검색어 (앞뒤 공백 제거 후 비어 있으면 400)
	Query string `query:"q" korean:"검색어" example:"노트북"`
}

// FilterSortRequest 상점 간 비교 및 정렬 요청
type FilterSortRequest struct {
	// 검색어 (앞뒤 공백 제거 후 비어 있으면 400)
	Query string `query:"q" korean:"검색어" example:"노트북"`
	// 정렬 기준: mb(평점 우위 내림차순), cb(비용 차이 오름차순), 그 외 모든 값(X 상점 실구매가 오름차순)
	SortBy string `query:"sort_by" korean:"정렬 기준" example:"cb"`
}
