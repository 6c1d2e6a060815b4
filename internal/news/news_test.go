package news

import (
	"reflect"
	"testing"
)

func item(link string, ts int64) Item {
	return Item{Title: link, Link: link, Timestamp: ts}
}

func TestCategories(t *testing.T) {
	data := Categorized{
		"Sports": {item("a", 1)},
		"Tech":   {item("b", 2)},
	}

	got := Categories(data, nil)
	want := []string{"All", "Sports", "Tech"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestCategoriesHidden(t *testing.T) {
	data := Categorized{
		"Sports": {item("a", 1)},
		"Tech":   {item("b", 2)},
	}

	got := Categories(data, map[string]bool{"Sports": true})
	want := []string{"All", "Tech"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestCategoriesAllHidden(t *testing.T) {
	data := Categorized{"Sports": {item("a", 1)}}

	got := Categories(data, map[string]bool{"Sports": true})
	if len(got) != 0 {
		t.Errorf("expected empty list when everything is hidden, got %v", got)
	}
}

func TestCategoriesEmptyCategoryStillListed(t *testing.T) {
	data := Categorized{
		"Sports": {},
		"Tech":   {item("b", 2)},
	}

	got := Categories(data, nil)
	want := []string{"All", "Sports", "Tech"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	cats := []string{"All", "Tech"}

	if got := Normalize("Tech", cats); got != "Tech" {
		t.Errorf("valid category should survive, got %q", got)
	}
	if got := Normalize("Sports", cats); got != "All" {
		t.Errorf("hidden category should reset to All, got %q", got)
	}
	if got := Normalize("All", nil); got != "All" {
		t.Errorf("empty list should reset to All, got %q", got)
	}
}

func TestSelectAllDedup(t *testing.T) {
	// Same link in two categories with different timestamps: the first
	// category in key order wins.
	data := Categorized{
		"Alpha": {item("dup", 100)},
		"Beta":  {{Title: "other copy", Link: "dup", Timestamp: 300}},
	}

	got := Select(data, nil, AllCategory)
	if len(got) != 1 {
		t.Fatalf("expected 1 item after dedup, got %d", len(got))
	}
	if got[0].Timestamp != 100 {
		t.Errorf("first occurrence should win, got timestamp %d", got[0].Timestamp)
	}
}

func TestSelectAllOrdering(t *testing.T) {
	data := Categorized{
		"A": {item("x", 100), item("y", 300)},
		"B": {item("z", 200)},
	}

	got := Select(data, nil, AllCategory)
	var ts []int64
	for _, it := range got {
		ts = append(ts, it.Timestamp)
	}
	want := []int64{300, 200, 100}
	if !reflect.DeepEqual(ts, want) {
		t.Errorf("timestamps = %v, want %v", ts, want)
	}
}

func TestSelectAllStableTies(t *testing.T) {
	data := Categorized{
		"A": {item("first", 50)},
		"B": {item("second", 50)},
	}

	got := Select(data, nil, AllCategory)
	if got[0].Link != "first" || got[1].Link != "second" {
		t.Errorf("ties should keep merge order, got %v then %v", got[0].Link, got[1].Link)
	}
}

func TestSelectAllSkipsHidden(t *testing.T) {
	data := Categorized{
		"A": {item("a", 1)},
		"B": {item("b", 2)},
	}

	got := Select(data, map[string]bool{"B": true}, AllCategory)
	if len(got) != 1 || got[0].Link != "a" {
		t.Errorf("hidden category items must not appear, got %v", got)
	}
}

func TestSelectNamedCategoryUnmodified(t *testing.T) {
	// A specific category keeps its own order, no dedup, no sort.
	data := Categorized{
		"Tech": {item("new", 300), item("old", 100), item("mid", 200)},
	}

	got := Select(data, nil, "Tech")
	var links []string
	for _, it := range got {
		links = append(links, it.Link)
	}
	want := []string{"new", "old", "mid"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestEndToEnd(t *testing.T) {
	data := Categorized{
		"Sports": {item("a", 1)},
		"Tech":   {item("b", 2)},
	}

	cats := Categories(data, nil)
	want := []string{"All", "Sports", "Tech"}
	if !reflect.DeepEqual(cats, want) {
		t.Fatalf("categories = %v, want %v", cats, want)
	}

	got := Select(data, nil, AllCategory)
	if len(got) != 2 || got[0].Link != "b" || got[1].Link != "a" {
		t.Errorf("expected [b a], got %v", got)
	}
}
