package service

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"madrasahku_backend/internals/constants"
)

// newNameCollator dibuat per pemanggilan sort; Collator tidak aman
// dipakai lintas goroutine.
func newNameCollator() *collate.Collator {
	return collate.New(language.Indonesian, collate.IgnoreCase)
}

// NaturalCompare membandingkan label kelas secara natural-numeric:
// "2" < "10", "1A" < "2A" < "10A".
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// bandingkan run angka sebagai bilangan (skip leading zeros)
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := trimLeadingZeros(a[si:i])
			nb := trimLeadingZeros(b[sj:j])
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimLeadingZeros(s string) string {
	k := 0
	for k < len(s)-1 && s[k] == '0' {
		k++
	}
	return s[k:]
}

// uniformLess adalah urutan seragam semua tabel roster/rekap:
// marhalah (index tetap) → kelas (natural) → nama (collation id, case-insensitive).
func uniformLess(col *collate.Collator, aMarhalah, aKelas, aNama, bMarhalah, bKelas, bNama string) bool {
	ai, bi := constants.MarhalahIndex(aMarhalah), constants.MarhalahIndex(bMarhalah)
	if ai != bi {
		return ai < bi
	}
	if c := NaturalCompare(aKelas, bKelas); c != 0 {
		return c < 0
	}
	return col.CompareString(aNama, bNama) < 0
}
