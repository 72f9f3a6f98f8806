// Package version cleans raw fetch script output into comparable version strings.
package version

import (
	"strings"
	"unicode"

	"go.trai.ch/vat/internal/core/domain"
)

// Normalizer implements ports.VersionNormalizer.
//
// It trims surrounding whitespace, strips a "<basename>-" or "<basename>_" tag prefix
// (case-insensitive) and strips a leading "v" or "V" when a digit follows.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the cleaned version of raw for pkg.
func (n *Normalizer) Normalize(pkg *domain.Package, raw string) string {
	v := strings.TrimSpace(raw)

	if base := pkg.Basename(); base != "" && len(v) > len(base)+1 {
		sep := v[len(base)]
		if (sep == '-' || sep == '_') && strings.EqualFold(v[:len(base)], base) {
			v = v[len(base)+1:]
		}
	}

	if len(v) > 1 && (v[0] == 'v' || v[0] == 'V') && unicode.IsDigit(rune(v[1])) {
		v = v[1:]
	}

	return v
}
