package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterParamsClamp(t *testing.T) {
	tests := []struct {
		name string
		in   FilterParams
		want FilterParams
	}{
		{"lower bounds", FilterParams{Days: 0, MinVotes: -5, MaxPages: 0}, FilterParams{Days: 1, MinVotes: 0, MaxPages: 1}},
		{"upper bounds", FilterParams{Days: 999, MinVotes: 999999, MaxPages: 999}, FilterParams{Days: 30, MinVotes: 5000, MaxPages: 20}},
		{"in range untouched", FilterParams{Days: 7, MinVotes: 250, MaxPages: 5}, FilterParams{Days: 7, MinVotes: 250, MaxPages: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Clamp())
		})
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, FilterParams{Days: 7, MinVotes: 250, MaxPages: 5}, p)
	assert.Equal(t, p, p.Clamp())
	assert.Equal(t, 7*86400, p.CutoffSeconds())
}
