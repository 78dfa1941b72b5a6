package exportname

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

var firstNumberRegex = regexp.MustCompile(`\d+`)

// SortByLabelIndex returns files ordered by the integer following label
// inside the bracketed result tag, so "[AC2]" sorts before "[AC11]".
// Names without a "[<label><n>]" tag keep their relative order and go last.
func SortByLabelIndex(files []string, label string) []string {
	tag := regexp.MustCompile(`\[` + regexp.QuoteMeta(label) + `(\d+)\]`)
	return sortByKey(files, func(name string) (int, bool) {
		m := tag.FindStringSubmatch(name)
		if m == nil {
			return 0, false
		}
		return atoi(m[1])
	})
}

// SortByFirstNumber returns files ordered by the first run of digits in
// their base name. Names without digits keep their relative order and go last.
func SortByFirstNumber(files []string) []string {
	return sortByKey(files, func(name string) (int, bool) {
		digits := firstNumberRegex.FindString(name)
		if digits == "" {
			return 0, false
		}
		return atoi(digits)
	})
}

func sortByKey(files []string, key func(base string) (int, bool)) []string {
	type keyed struct {
		path string
		n    int
		ok   bool
	}

	items := make([]keyed, len(files))
	for i, f := range files {
		n, ok := key(filepath.Base(f))
		items[i] = keyed{path: f, n: n, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.n < b.n
	})

	sorted := make([]string, len(items))
	for i, it := range items {
		sorted[i] = it.path
	}
	return sorted
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Digit runs too long for int
		return 0, false
	}
	return n, true
}
