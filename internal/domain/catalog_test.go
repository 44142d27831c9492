package domain

import "testing"

func TestComputeTotal(t *testing.T) {
	addons := []Addon{
		{ID: 1, Name: "Highlight", Price: 10000},
		{ID: 2, Name: "Repost", Price: 5000},
		{ID: 3, Name: "Story", Price: 7500},
	}

	tests := []struct {
		name         string
		packagePrice int64
		selected     []int64
		expected     int64
	}{
		{"no add-ons", 50000, nil, 50000},
		{"empty selection", 50000, []int64{}, 50000},
		{"two add-ons", 50000, []int64{1, 2}, 65000},
		{"selection order irrelevant", 50000, []int64{2, 1}, 65000},
		{"duplicate ids counted once", 50000, []int64{1, 1, 2}, 65000},
		{"unknown id ignored", 50000, []int64{99}, 50000},
		{"all add-ons", 100000, []int64{1, 2, 3}, 122500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.packagePrice, addons, tt.selected)
			if got != tt.expected {
				t.Errorf("ComputeTotal(%d, addons, %v) = %d, want %d",
					tt.packagePrice, tt.selected, got, tt.expected)
			}
		})
	}
}
