package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenAwareDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		dpr   float64
		want  int
	}{
		{name: "zero stays zero", delta: 0, dpr: 2, want: 0},
		{name: "unit ratio", delta: 1, dpr: 1, want: 1},
		{name: "negative unit ratio", delta: -3, dpr: 1, want: -3},
		{name: "hidpi", delta: 1, dpr: 2, want: 1},
		{name: "lowdpi rounds up to a device pixel", delta: 1, dpr: 0.5, want: 2},
		{name: "lowdpi negative", delta: -1, dpr: 0.5, want: -2},
		{name: "fractional ratio", delta: 5, dpr: 1.5, want: 5},
		{name: "unknown ratio", delta: 3, dpr: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, screenAwareDelta(tt.delta, tt.dpr))
		})
	}
}
