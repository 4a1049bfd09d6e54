package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const maxLen = 100

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Make turns a free-form title into a URL-safe, lowercase slug: diacritics
// stripped, anything outside [a-z0-9] collapsed to single hyphens.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// EnsureUnique appends a numeric suffix to base until no row in table has
// that slug. exclude, when non-empty, ignores the row with that id so an
// update keeping its own slug does not collide with itself.
func EnsureUnique(db *gorm.DB, table, base, exclude string) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		q := db.Table(table).Where("slug = ?", candidate)
		if exclude != "" {
			q = q.Where("id <> ?", exclude)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
