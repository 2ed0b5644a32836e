// Package slugs mints collision-free slugs within an owner's namespace.
package slugs

import (
	"fmt"
	"strings"
	"unicode"
)

// Registry is the set of slugs already taken in one namespace. It is seeded
// once per run and mutated in place as new slugs are minted; it is not safe
// for concurrent use.
type Registry map[string]struct{}

func NewRegistry(taken []string) Registry {
	r := make(Registry, len(taken))
	for _, s := range taken {
		r[s] = struct{}{}
	}
	return r
}

func (r Registry) Has(slug string) bool {
	_, ok := r[slug]
	return ok
}

func (r Registry) Add(slug string) {
	r[slug] = struct{}{}
}

// GenerateUnique returns base if it is free, otherwise base-1, base-2, ...
// until a free slug is found. The returned slug is recorded in the registry,
// so repeated calls with the same base keep advancing the suffix.
func GenerateUnique(base string, reg Registry) string {
	if !reg.Has(base) {
		reg.Add(base)
		return base
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !reg.Has(candidate) {
			reg.Add(candidate)
			return candidate
		}
	}
}

// Slugify lowercases s and collapses anything that is not a letter or digit
// into single hyphens. An empty result falls back to "item".
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}
