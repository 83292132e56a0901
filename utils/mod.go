package utils

import "math"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func FindIndexFunc[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}

// Argmax returns the index of the highest score, the first one on ties, or -1
// for an empty slice.
func Argmax[T any](slice []T, score func(T) float64) int {
	best := -1
	bestScore := math.Inf(-1)
	for i, v := range slice {
		if s := score(v); best < 0 || s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}
