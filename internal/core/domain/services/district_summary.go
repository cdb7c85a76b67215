package services

import (
	"cmp"
	"slices"

	"deliveryorders/internal/core/domain/model/order"
)

// DistrictCount is the number of orders scheduled for one district.
type DistrictCount struct {
	District string
	Orders   int
}

// CountByDistrict groups orders by district. Results are sorted by district
// name so that log output is stable between runs.
func CountByDistrict(orders []order.Order) []DistrictCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.District()]++
	}

	summary := make([]DistrictCount, 0, len(counts))
	for district, n := range counts {
		summary = append(summary, DistrictCount{District: district, Orders: n})
	}
	slices.SortFunc(summary, func(a, b DistrictCount) int {
		return cmp.Compare(a.District, b.District)
	})

	return summary
}
