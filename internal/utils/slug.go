// internal/utils/slug.go
package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var categorySlugPattern = regexp.MustCompile(`^[a-z0-9-]{1,40}$`)

// IsCategorySlug reports whether s is acceptable as a category slug in a
// query string. Callers lowercase before checking.
func IsCategorySlug(s string) bool {
	return categorySlugPattern.MatchString(s)
}

// slug.Make deletes apostrophes and spells out "&" and "@" instead of
// hyphenating them. Here every run of punctuation must become a single
// hyphen, so those characters turn into spaces up front.
var slugPunct = strings.NewReplacer(
	"'", " ", "’", " ", "‘", " ",
	"&", " ", "@", " ", "_", " ",
)

// Slugify turns arbitrary text into a URL token: diacritics stripped
// (ß→ss, æ→ae, œ→oe), lowercased, runs of non-alphanumerics collapsed to
// a single hyphen, hyphens trimmed. Empty input gives an empty string.
func Slugify(s string) string {
	return slug.Make(slugPunct.Replace(s))
}

// UniqueSlug returns base when unclaimed, otherwise base-2, base-3, …
// until a free value is found. The caller owns the used set.
func UniqueSlug(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !used[candidate] {
			return candidate
		}
	}
}

// SlugRecord is one row of a bulk slug assignment.
type SlugRecord struct {
	ID      string
	Name    string
	Current string
}

// AssignSlugs computes a slug for every record as a sequential fold: the
// used set is updated after each assignment so two identical names never
// collide, and a record's own current slug is removed from the set before
// testing so it can keep its value when already unique. Records must be
// passed in a fixed order; the result is deterministic.
func AssignSlugs(records []SlugRecord, used map[string]bool) map[string]string {
	if used == nil {
		used = make(map[string]bool)
	}
	assigned := make(map[string]string, len(records))
	for _, r := range records {
		if r.Current != "" {
			delete(used, r.Current)
		}
		base := Slugify(r.Name)
		if base == "" {
			base = r.ID
		}
		s := UniqueSlug(base, used)
		assigned[r.ID] = s
		used[s] = true
	}
	return assigned
}
