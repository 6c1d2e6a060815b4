// Package news models the categorized feed and merges it for display.
package news

import "sort"

// AllCategory is the synthetic category that merges every visible one.
const AllCategory = "All"

type Source struct {
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
	BgColor string `json:"bg_color,omitempty"`
}

// Item is one feed entry. Link is its identity: the same link appearing in
// several categories is the same item.
type Item struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Summary   string `json:"summary"`
	Image     string `json:"image,omitempty"`
	Source    Source `json:"source"`
}

// Categorized maps server-defined category names to their items. Category
// names are open data, not a fixed set.
type Categorized map[string][]Item

// Response is the news provider payload. Only status "ok" is usable.
type Response struct {
	Status string      `json:"status"`
	Data   Categorized `json:"data"`
}

// Categories returns the selectable category list: every key of data not in
// hidden, in key order, with AllCategory prefixed. Empty when nothing is
// visible. A category with no items still appears.
func Categories(data Categorized, hidden map[string]bool) []string {
	visible := visibleKeys(data, hidden)
	if len(visible) == 0 {
		return nil
	}
	return append([]string{AllCategory}, visible...)
}

func visibleKeys(data Categorized, hidden map[string]bool) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if !hidden[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Normalize returns active if it is still selectable, else AllCategory.
func Normalize(active string, categories []string) string {
	for _, c := range categories {
		if c == active {
			return active
		}
	}
	return AllCategory
}

// Select returns the items to display for the active category. For
// AllCategory the visible categories are merged in key order, deduplicated
// by link (first occurrence wins) and sorted newest first, ties keeping
// their merge order. A named category returns its list untouched.
func Select(data Categorized, hidden map[string]bool, active string) []Item {
	if active != AllCategory {
		return data[active]
	}

	var merged []Item
	seen := make(map[string]bool)
	for _, cat := range visibleKeys(data, hidden) {
		for _, item := range data[cat] {
			if seen[item.Link] {
				continue
			}
			seen[item.Link] = true
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})
	return merged
}
