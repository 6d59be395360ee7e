package util

func MaxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func CopyFloatSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
