package layout

import (
	"cmp"
	"sort"

	"github.com/tsawler/pdftabextract/model"
)

// Mode returns the most frequent value. Among equally frequent values the
// smallest wins. ok is false for an empty input.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// SortedBy returns a stably sorted copy of items ordered by key
func SortedBy[T any, K cmp.Ordered](items []T, key func(T) K, descending bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return key(out[j]) < key(out[i])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

// SortTexts returns a stably sorted copy of texts ordered by attr
func SortTexts(texts []*model.Text, attr model.Attribute, descending bool) []*model.Text {
	return SortedBy(texts, func(t *model.Text) float64 { return t.Attr(attr) }, descending)
}
