package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
