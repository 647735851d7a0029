package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krisalay/boundedcache/types"
)

type named struct{ id int }

func (n named) String() string { return "named" }

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int
	var nilFunc func()
	var nilIface error

	tests := map[string]struct {
		v    any
		want bool
	}{
		"nil interface":  {v: nil, want: true},
		"typed nil ptr":  {v: nilPtr, want: true},
		"nil map":        {v: nilMap, want: true},
		"nil slice":      {v: nilSlice, want: true},
		"nil func":       {v: nilFunc, want: true},
		"nil error":      {v: nilIface, want: true},
		"empty string":   {v: "", want: false},
		"zero int":       {v: 0, want: false},
		"empty slice":    {v: []int{}, want: false},
		"non-nil struct": {v: named{}, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, types.IsNil(tc.v))
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", types.KeyString("A"))
	assert.Equal(t, "42", types.KeyString(42))
	assert.Equal(t, "named", types.KeyString(named{id: 1}))
}
