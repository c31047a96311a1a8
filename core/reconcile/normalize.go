package reconcile

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chains are stateful, so each caller borrows its own.
var nameChainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)), // "José" -> "Jose"
			cases.Fold(),
			norm.NFC,
		)
	},
}

// NormalizeName folds a person name for similarity scoring.
// Accents and case are dropped and whitespace runs collapse to one space.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}

	tr := nameChainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, strings.ToValidUTF8(s, ""))
	tr.Reset()
	nameChainPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(ns), " ")
}

// foldValue is the comparison form used when case-insensitive diffs are enabled.
func foldValue(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), " ")
}
