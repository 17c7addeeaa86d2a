// Package fuzzy scores how similar two short strings are.
package fuzzy

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Ratio returns 2*M/T where M is the number of runes the diff keeps in common and T is the total
// rune count of both inputs. Identical strings score 1, disjoint strings 0.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	matches := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			matches += utf8.RuneCountInString(d.Text)
		}
	}
	return 2 * float64(matches) / float64(total)
}

// Similar reports whether Ratio(a, b) is strictly above threshold.
func Similar(a, b string, threshold float64) bool {
	return Ratio(a, b) > threshold
}
