package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1A", "2A", -1},
		{"2A", "10A", -1},
		{"10A", "2A", 1},
		{"2A", "2A", 0},
		{"2", "10", -1},
		{"A2", "A10", -1},
		{"B1", "A2", 1},
		{"007", "7", 0},
	}
	for _, tc := range cases {
		got := NaturalCompare(tc.a, tc.b)
		switch {
		case tc.want < 0:
			assert.Negative(t, got, "%s < %s", tc.a, tc.b)
		case tc.want > 0:
			assert.Positive(t, got, "%s > %s", tc.a, tc.b)
		default:
			assert.Zero(t, got, "%s == %s", tc.a, tc.b)
		}
	}
}

func TestNaturalSortKelas(t *testing.T) {
	kelas := []string{"10A", "1A", "2A"}
	sort.SliceStable(kelas, func(i, j int) bool { return NaturalCompare(kelas[i], kelas[j]) < 0 })
	assert.Equal(t, []string{"1A", "2A", "10A"}, kelas)
}
