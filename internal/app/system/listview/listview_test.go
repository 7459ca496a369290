package listview

import (
	"fmt"
	"testing"
)

type row struct {
	Name        string
	Description string
}

func rowFields(r row) []string { return []string{r.Name, r.Description} }

func TestFilter_EmptyTermIsIdentity(t *testing.T) {
	rows := []row{{Name: "Math 101"}, {Name: "Physics"}, {Name: "Chemistry"}}

	for _, term := range []string{"", "   ", "\t"} {
		got := Filter(rows, term, rowFields)
		if len(got) != len(rows) {
			t.Fatalf("Filter(%q) returned %d rows, want %d", term, len(got), len(rows))
		}
		for i := range rows {
			if got[i] != rows[i] {
				t.Errorf("Filter(%q) reordered: got[%d] = %+v, want %+v", term, i, got[i], rows[i])
			}
		}
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	rows := []row{
		{Name: "Advanced Math"},
		{Name: "physics", Description: "includes some math revision"},
		{Name: "Literature"},
	}

	lower := Filter(rows, "math", rowFields)
	upper := Filter(rows, "MATH", rowFields)

	if len(lower) != 2 {
		t.Fatalf("Filter(\"math\") returned %d rows, want 2", len(lower))
	}
	if len(lower) != len(upper) {
		t.Fatalf("case sensitivity: %d vs %d rows", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Errorf("row %d differs between cases: %+v vs %+v", i, lower[i], upper[i])
		}
	}
}

func TestFilter_StableOrder(t *testing.T) {
	rows := []row{
		{Name: "b math"},
		{Name: "a math"},
		{Name: "c math"},
	}

	got := Filter(rows, "math", rowFields)
	want := []string{"b math", "a math", "c math"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("order changed: got[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilter_MatchesAnyField(t *testing.T) {
	rows := []row{
		{Name: "Physics", Description: "mechanics and waves"},
		{Name: "History"},
	}

	got := Filter(rows, "waves", rowFields)
	if len(got) != 1 || got[0].Name != "Physics" {
		t.Errorf("description match failed: got %+v", got)
	}
}

func TestPaginate_PageCountAndCoverage(t *testing.T) {
	const pageSize = 10

	for n := 0; n <= 35; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		wantPages := (n + pageSize - 1) / pageSize
		_, totalPages := Paginate(items, 1, pageSize)
		if totalPages != wantPages {
			t.Errorf("n=%d: totalPages = %d, want %d", n, totalPages, wantPages)
		}

		// Every item appears on exactly one page, in order.
		var seen int
		for p := 1; p <= totalPages; p++ {
			page, _ := Paginate(items, p, pageSize)
			for _, v := range page {
				if v != seen {
					t.Fatalf("n=%d page %d: got item %d, want %d", n, p, v, seen)
				}
				seen++
			}
		}
		if seen != n {
			t.Errorf("n=%d: pages covered %d items", n, seen)
		}
	}
}

func TestPaginate_BeyondLastPageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, totalPages := Paginate(items, 3, 2)
	if totalPages != 3 || len(page) != 1 {
		t.Fatalf("page 3: got %d items, %d pages", len(page), totalPages)
	}

	for _, p := range []int{4, 5, 100} {
		page, totalPages = Paginate(items, p, 2)
		if len(page) != 0 {
			t.Errorf("page %d: got %d items, want 0", p, len(page))
		}
		if totalPages != 3 {
			t.Errorf("page %d: totalPages = %d, want 3", p, totalPages)
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	page, totalPages := Paginate([]int{}, 1, 10)
	if totalPages != 0 {
		t.Errorf("totalPages = %d, want 0", totalPages)
	}
	if len(page) != 0 {
		t.Errorf("got %d items, want 0", len(page))
	}
}

func TestFilterThenPaginate(t *testing.T) {
	// 25 classes, 13 of which match "math"; pageSize 10 → 10 + 3 across 2 pages.
	var rows []row
	for i := 0; i < 13; i++ {
		rows = append(rows, row{Name: fmt.Sprintf("Math %d", i)})
	}
	for i := 0; i < 12; i++ {
		rows = append(rows, row{Name: fmt.Sprintf("Art %d", i)})
	}

	matched := Filter(rows, "math", rowFields)
	if len(matched) != 13 {
		t.Fatalf("matched %d rows, want 13", len(matched))
	}

	page1, totalPages := Paginate(matched, 1, 10)
	if totalPages != 2 {
		t.Errorf("totalPages = %d, want 2", totalPages)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 has %d items, want 10", len(page1))
	}

	page2, _ := Paginate(matched, 2, 10)
	if len(page2) != 3 {
		t.Errorf("page 2 has %d items, want 3", len(page2))
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 5, 1},
		{5, 5, 5},
		{6, 5, 5},
		{0, 5, 1},
		{3, 0, 1},
		{-1, 2, 1},
	}

	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}
