package builder_test

import (
	"testing"

	"github.com/katalvlaran/netroute/builder"
	"github.com/stretchr/testify/assert"
)

func TestIDFns(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"OneBased_zero", builder.OneBasedIDFn, 0, "1"},
		{"OneBased_multi", builder.OneBasedIDFn, 122, "123"},
		{"ZeroBased", builder.ZeroBasedIDFn, 5, "5"},
		{"Excel_A", builder.ExcelColumnIDFn, 0, "A"},
		{"Excel_Z", builder.ExcelColumnIDFn, 25, "Z"},
		{"Excel_AA", builder.ExcelColumnIDFn, 26, "AA"},
		{"Excel_AB", builder.ExcelColumnIDFn, 27, "AB"},
		{"Prefixed", builder.PrefixedIDFn("n"), 2, "n3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}

	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}
