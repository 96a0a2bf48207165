package pricing

import "math"

// BlackScholesCall returns the closed-form European call price for a horizon
// of t years. Degenerate inputs (t <= 0 or sigma <= 0) collapse to the
// discounted intrinsic value.
func BlackScholesCall(s, k, sigma, r, t float64) float64 {
	if t <= 0 || sigma <= 0 {
		return math.Max(0, s-k*math.Exp(-r*t))
	}

	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	return s*normCDF(d1) - k*math.Exp(-r*t)*normCDF(d2)
}

// BlackScholesPut returns the closed-form European put price for a horizon of
// t years.
func BlackScholesPut(s, k, sigma, r, t float64) float64 {
	if t <= 0 || sigma <= 0 {
		return math.Max(0, k*math.Exp(-r*t)-s)
	}

	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	return k*math.Exp(-r*t)*normCDF(-d2) - s*normCDF(-d1)
}

func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
