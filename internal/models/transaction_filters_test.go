package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strRef(s string) *string { return &s }

func decRef(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSearchFilters_IsEmpty(t *testing.T) {
	assert.True(t, SearchFilters{}.IsEmpty())
	assert.False(t, SearchFilters{Category: strRef(CategoryTravel)}.IsEmpty())
	assert.False(t, SearchFilters{MaxAmount: decRef("10")}.IsEmpty())
}

func TestSearchFilters_Matches(t *testing.T) {
	tx := validTransaction()

	tests := []struct {
		name    string
		filters SearchFilters
		want    bool
	}{
		{name: "no filters", filters: SearchFilters{}, want: true},
		{name: "user matches", filters: SearchFilters{UserID: strRef("USER001")}, want: true},
		{name: "user differs", filters: SearchFilters{UserID: strRef("USER002")}, want: false},
		{name: "category matches", filters: SearchFilters{Category: strRef(CategoryFoodDining)}, want: true},
		{name: "category is case sensitive", filters: SearchFilters{Category: strRef("food & dining")}, want: false},
		{name: "min bound inclusive", filters: SearchFilters{MinAmount: decRef("250.50")}, want: true},
		{name: "min bound above", filters: SearchFilters{MinAmount: decRef("250.51")}, want: false},
		{name: "max bound inclusive", filters: SearchFilters{MaxAmount: decRef("250.5")}, want: true},
		{name: "max bound below", filters: SearchFilters{MaxAmount: decRef("250.49")}, want: false},
		{
			name: "all filters conjunctive",
			filters: SearchFilters{
				UserID:    strRef("USER001"),
				Category:  strRef(CategoryFoodDining),
				MinAmount: decRef("100"),
				MaxAmount: decRef("300"),
			},
			want: true,
		},
		{
			name: "one failing filter rejects",
			filters: SearchFilters{
				UserID:    strRef("USER001"),
				Category:  strRef(CategoryTravel),
				MinAmount: decRef("100"),
			},
			want: false,
		},
		{name: "min above max never matches", filters: SearchFilters{MinAmount: decRef("300"), MaxAmount: decRef("100")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Matches(&tx))
		})
	}
}

func TestSimilarityFromDistance(t *testing.T) {
	assert.Equal(t, 1.0, SimilarityFromDistance(0))
	assert.Equal(t, 0.5, SimilarityFromDistance(1))
	assert.InDelta(t, 0.2, SimilarityFromDistance(4), 1e-12)
	assert.Equal(t, 1.0, SimilarityFromDistance(-0.0001))
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitBreakerState(0).String())
	assert.Equal(t, "open", CircuitBreakerState(1).String())
	assert.Equal(t, "half-open", CircuitBreakerState(2).String())
	assert.Equal(t, "unknown", CircuitBreakerState(7).String())
}
