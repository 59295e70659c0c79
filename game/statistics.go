package game

import "math"

// Mean ...
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	var variance float64
	for _, v := range data {
		variance += math.Pow(v-mean, 2)
	}
	return math.Sqrt(variance / float64(len(data)))
}

// Max returns the largest value in data, or 0 if data is empty.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	max := data[0]
	for _, v := range data[1:] {
		max = math.Max(max, v)
	}
	return max
}
