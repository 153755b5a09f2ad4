package evaluation

// Vector maps feature names to values. Absent keys are zero.
type Vector map[string]float64

// Weights maps feature names to signed magnitudes. Absent keys are zero.
type Weights map[string]float64

// Dot returns the sum of v[k]*w[k] over the union of both key sets. A key
// present on one side only contributes nothing.
func Dot(v Vector, w Weights) float64 {
	var sum float64
	for k, x := range v {
		if y, ok := w[k]; ok {
			sum += x * y
		}
	}
	return sum
}

// Evaluate scores a feature vector against a weight table.
func Evaluate(features Vector, weights Weights) float64 {
	return Dot(features, weights)
}

// With returns a copy of w with overrides applied on top.
func (w Weights) With(overrides Weights) Weights {
	out := make(Weights, len(w)+len(overrides))
	for k, v := range w {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
