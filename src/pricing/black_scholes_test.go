package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackScholesKnownValues(t *testing.T) {
	// S=100, K=100, sigma=0.2, r=0.05, t=1: standard textbook values
	call := BlackScholesCall(100, 100, 0.2, 0.05, 1)
	put := BlackScholesPut(100, 100, 0.2, 0.05, 1)

	assert.InDelta(t, 10.4506, call, 1e-3)
	assert.InDelta(t, 5.5735, put, 1e-3)
}

func TestBlackScholesPutCallParity(t *testing.T) {
	s, k, sigma, r, horizon := 105.0, 95.0, 0.35, 0.02, 0.75

	call := BlackScholesCall(s, k, sigma, r, horizon)
	put := BlackScholesPut(s, k, sigma, r, horizon)

	assert.InDelta(t, s-k*math.Exp(-r*horizon), call-put, 1e-9)
}

func TestBlackScholesDegenerateInputs(t *testing.T) {
	t.Run("zero sigma reduces to discounted intrinsic", func(t *testing.T) {
		call := BlackScholesCall(100, 90, 0, 0.05, 1)
		assert.InDelta(t, 100-90*math.Exp(-0.05), call, 1e-9)

		put := BlackScholesPut(80, 90, 0, 0.05, 1)
		assert.InDelta(t, 90*math.Exp(-0.05)-80, put, 1e-9)
	})

	t.Run("zero horizon reduces to intrinsic", func(t *testing.T) {
		assert.InDelta(t, 10.0, BlackScholesCall(100, 90, 0.2, 0.05, 0), 1e-9)
		assert.InDelta(t, 0.0, BlackScholesCall(80, 90, 0.2, 0.05, 0), 1e-9)
		assert.InDelta(t, 10.0, BlackScholesPut(80, 90, 0.2, 0.05, 0), 1e-9)
	})

	t.Run("out of the money call is worthless at zero sigma", func(t *testing.T) {
		assert.InDelta(t, 0.0, BlackScholesCall(80, 90, 0, 0.05, 1), 1e-9)
	})
}
