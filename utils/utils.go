package utils

import "math"

// FindIndex returns the index of the first occurrence of item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Maximal returns every item sharing the highest score, in input order. The
// first item is kept even when no score beats it, so a non empty input always
// yields at least one item. A NaN score ranks as -Inf.
func Maximal[T any](items []T, score func(T) float64) []T {
	var best float64
	out := make([]T, 0, len(items))
	for _, item := range items {
		s := score(item)
		if math.IsNaN(s) {
			s = math.Inf(-1)
		}
		switch {
		case len(out) == 0 || s > best:
			best = s
			out = append(out[:0], item)
		case s == best:
			out = append(out, item)
		}
	}
	return out
}
