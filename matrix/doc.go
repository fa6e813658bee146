// Package matrix provides the Dense row-major float64 matrix used as the
// storage substrate for distance matrices throughout the quartet pipeline.
//
// Dense offers O(1) bounds-checked At/Set and O(rows*cols) Clone. The
// validators in this package (ValidateSquare, ValidateSymmetric,
// ValidateZeroDiagonal) encode the shape a valid distance matrix must have
// before it can seed a tree population.
package matrix
