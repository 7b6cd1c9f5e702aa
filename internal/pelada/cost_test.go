package pelada

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalCost(t *testing.T) {
	testCases := []struct {
		name     string
		field    float64
		referee  float64
		extra    float64
		expected float64
	}{
		{"typical match", 100, 50, 0, 150},
		{"all zero", 0, 0, 0, 0},
		{"cents round to two places", 33.336, 0, 0, 33.34},
		{"fractional components sum cleanly", 10.10, 20.20, 30.30, 60.60},
		{"negative component counts as zero", 100, -50, 0, 100},
		{"NaN component counts as zero", math.NaN(), 80, 20, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := ComputeTotalCost(tc.field, tc.referee, tc.extra)
			assert.Equal(t, tc.expected, total)
		})
	}
}

func TestRecomputeTotalCost(t *testing.T) {
	t.Run("sums components when referee present", func(t *testing.T) {
		m := Match{RefereePresent: true, FieldCost: 100, RefereeCost: 50, ExtraCost: 25.5}
		m.RecomputeTotalCost()

		assert.Equal(t, 175.5, m.TotalCost)
		assert.Equal(t, 50.0, m.RefereeCost)
	})

	t.Run("zeroes referee cost without a referee", func(t *testing.T) {
		m := Match{RefereePresent: false, FieldCost: 100, RefereeCost: 50, ExtraCost: 0}
		m.RecomputeTotalCost()

		assert.Equal(t, 0.0, m.RefereeCost)
		assert.Equal(t, 100.0, m.TotalCost)
	})

	t.Run("is idempotent", func(t *testing.T) {
		m := Match{RefereePresent: true, FieldCost: 80, RefereeCost: 40, ExtraCost: 10}
		m.RecomputeTotalCost()
		first := m.TotalCost
		m.RecomputeTotalCost()

		assert.Equal(t, first, m.TotalCost)
	})
}
