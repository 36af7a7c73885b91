package helper

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 120

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug menormalkan teks jadi slug url-safe: huruf kecil,
// non-alfanumerik jadi "-", tanpa "-" beruntun atau di tepi.
func GenerateSlug(base string) string {
	s := strings.ToLower(strings.TrimSpace(base))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > DefaultSlugMaxLen {
		s = strings.Trim(s[:DefaultSlugMaxLen], "-")
	}
	return s
}

// EnsureUniqueSlug menambah suffix -2, -3, ... sampai slug unik pada
// (table, column). excludeColumn/excludeID mengecualikan baris sendiri
// saat update.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string, excludeColumn string, excludeID any) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "madrasah"
	}

	candidate := slug
	for i := 2; ; i++ {
		q := db.Table(table).Where(fmt.Sprintf("%s = ?", column), candidate)
		if excludeColumn != "" {
			q = q.Where(fmt.Sprintf("%s <> ?", excludeColumn), excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}
