package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePage(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"2.5", 1},
		{"1", 1},
		{"7", 7},
		{" 3 ", 3},
		{"99999999999999999999", math.MaxInt},
		{"-99999999999999999999", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EffectivePage(tt.in), "page %q", tt.in)
	}
}

func TestEffectivePerPage(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 10},
		{"many", 10},
		{"0", 10},
		{"-5", 10},
		{"1", 1},
		{"50", 50},
		{"51", 50},
		{"1000", 50},
		{"99999999999999999999", 50},
		{"-99999999999999999999", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EffectivePerPage(tt.in), "perPage %q", tt.in)
	}
}

func TestParseParams_Defaults(t *testing.T) {
	p := ParseParams(Raw{})

	assert.Equal(t, Params{Page: 1, PerPage: 10, Sort: SortNewest}, p)
}

func TestParseParams_KeepsUnknownSort(t *testing.T) {
	p := ParseParams(Raw{Q: "  chess ", Tag: " React", Sort: "popular"})

	assert.Equal(t, "chess", p.Q)
	assert.Equal(t, "React", p.Tag)
	assert.Equal(t, "popular", p.Sort)
}
