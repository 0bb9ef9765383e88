package market

import "math"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sampleStdDev is the n-1 standard deviation of xs, NaN if any value is not
// finite or fewer than two values are given.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		if !finite(x) {
			return math.NaN()
		}
		sum += x
	}
	mean := sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// pearson correlates xs and ys over the indices where both are finite. It is
// NaN with fewer than two such pairs or when either side does not vary.
func pearson(xs, ys []float64) float64 {
	var px, py []float64
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			px = append(px, xs[i])
			py = append(py, ys[i])
		}
	}
	n := float64(len(px))
	if n < 2 {
		return math.NaN()
	}
	var mx, my float64
	for i := range px {
		mx += px[i]
		my += py[i]
	}
	mx /= n
	my /= n
	var sxy, sxx, syy float64
	for i := range px {
		dx, dy := px[i]-mx, py[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	rho := sxy / math.Sqrt(sxx*syy)
	return math.Max(-1, math.Min(1, rho))
}
