package models

import "sort"

// Category groups tasks for display and rule matching. Order defines a stable
// sort position; unique per category but not required to be contiguous.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// SortCategories sorts categories by their order field, keeping the incoming
// relative order for equal keys.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
}
