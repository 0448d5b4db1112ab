package fixed

import "math"

// RotX returns the rotation by theta radians about the x axis.
func RotX[T Float](theta float64) Mat3[T] {
	s, c := sincos[T](theta)
	return New[T, D3, D3](
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotY returns the rotation by theta radians about the y axis.
func RotY[T Float](theta float64) Mat3[T] {
	s, c := sincos[T](theta)
	return New[T, D3, D3](
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotZ returns the rotation by theta radians about the z axis.
func RotZ[T Float](theta float64) Mat3[T] {
	s, c := sincos[T](theta)
	return New[T, D3, D3](
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Rot2 returns the planar rotation by theta radians.
func Rot2[T Float](theta float64) Mat2[T] {
	s, c := sincos[T](theta)
	return New[T, D2, D2](
		c, -s,
		s, c,
	)
}

func sincos[T Float](theta float64) (T, T) {
	s, c := math.Sincos(theta)
	return T(s), T(c)
}
