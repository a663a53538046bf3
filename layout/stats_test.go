package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/pdftabextract/model"
)

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
		ok     bool
	}{
		{"empty", nil, 0, false},
		{"single", []float64{3}, 3, true},
		{"clear winner", []float64{12, 10, 12, 14, 12, 10}, 12, true},
		{"tie picks smallest", []float64{5, 2, 5, 2, 9}, 2, true},
		{"negative", []float64{-1, -1, 0}, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mode(tt.values)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Mode() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}

	if s, _ := Mode([]string{"b", "a", "b"}); s != "b" {
		t.Errorf("Mode(strings) = %q, want b", s)
	}
}

func TestSortedBy(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	items := []item{{3, "c"}, {1, "a1"}, {2, "b"}, {1, "a2"}}
	key := func(i item) int { return i.key }

	names := func(items []item) string {
		var s []string
		for _, i := range items {
			s = append(s, i.name)
		}
		return strings.Join(s, ",")
	}

	if got := names(SortedBy(items, key, false)); got != "a1,a2,b,c" {
		t.Errorf("ascending = %s", got)
	}
	if got := names(SortedBy(items, key, true)); got != "c,b,a1,a2" {
		t.Errorf("descending = %s", got)
	}
	if names(items) != "c,a1,b,a2" {
		t.Error("input was modified")
	}
}

func TestSortTexts(t *testing.T) {
	texts := []*model.Text{
		makeText(30, 5, 10, 10, "c"),
		makeText(10, 50, 10, 10, "a"),
		makeText(20, 20, 10, 10, "b"),
	}

	if got := strings.Join(values(SortTexts(texts, model.AttrLeft, false)), ""); got != "abc" {
		t.Errorf("by left = %s, want abc", got)
	}
	if got := strings.Join(values(SortTexts(texts, model.AttrBottom, true)), ""); got != "abc" {
		t.Errorf("by bottom descending = %s, want abc", got)
	}
	if got := strings.Join(values(SortTexts(texts, model.AttrTop, false)), ""); got != "cba" {
		t.Errorf("by top = %s, want cba", got)
	}
}
