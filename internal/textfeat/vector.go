package textfeat

import "math"

// Vector is a dense feature vector over a Vocabulary.
type Vector []float64

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Dot returns the inner product. Vectors must have equal length.
func (v Vector) Dot(o Vector) float64 {
	var s float64
	for i := range v {
		s += v[i] * o[i]
	}
	return s
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// SquaredDistance returns the squared Euclidean distance to o.
func (v Vector) SquaredDistance(o Vector) float64 {
	var s float64
	for i := range v {
		d := v[i] - o[i]
		s += d * d
	}
	return s
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
