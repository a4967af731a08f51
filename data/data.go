// Package data contains the tables read from band structure calculations
// and their prototypical implementations.
package data

import (
	"errors"
	"fmt"
	"math"
)

// ErrRagged indicates a table whose rows differ in length.
var ErrRagged = errors.New("data: all rows must have the same number of columns")

// Table is a row-major numeric table. Band and continuum data have one
// row per k-vector and one column per band (or band edge).
type Table [][]float64

// Rows returns the number of rows in t.
func (t Table) Rows() int { return len(t) }

// Cols returns the number of columns of the first row of t.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Check reports an error if the rows of t differ in length.
func (t Table) Check() error {
	for i, row := range t {
		if len(row) != t.Cols() {
			return fmt.Errorf("%w: row %d has %d, row 0 has %d",
				ErrRagged, i, len(row), t.Cols())
		}
	}
	return nil
}

// SameShape reports whether t and u have the same number of rows and columns.
func (t Table) SameShape(u Table) bool {
	return t.Rows() == u.Rows() && t.Cols() == u.Cols()
}

// Column returns a copy of column j.
func (t Table) Column(j int) []float64 {
	c := make([]float64, len(t))
	for i, row := range t {
		c[i] = row[j]
	}
	return c
}

// Range returns the minimum and maximum value in t. NaNs are ignored.
func (t Table) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range t {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			min, max = math.Min(min, v), math.Max(max, v)
		}
	}
	return min, max
}

// ColumnRange returns the minimum and maximum value of column j, ignoring
// NaN like Range does.
func (t Table) ColumnRange(j int) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range t {
		if math.IsNaN(row[j]) {
			continue
		}
		min, max = math.Min(min, row[j]), math.Max(max, row[j])
	}
	return min, max
}

// KVector is a wave vector: its kx, ky, kz components and its magnitude
// (in units of 2π/a, the light line in vacuum).
type KVector struct {
	X, Y, Z, Mag float64
}

// KVectors is a path through reciprocal space.
type KVectors []KVector

// KVectorsFromTable interprets the four columns of t as kx, ky, kz and |k|.
func KVectorsFromTable(t Table) (KVectors, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	if len(t) > 0 && t.Cols() != 4 {
		return nil, fmt.Errorf("data: k-vector table needs 4 columns, has %d", t.Cols())
	}
	ks := make(KVectors, len(t))
	for i, row := range t {
		ks[i] = KVector{X: row[0], Y: row[1], Z: row[2], Mag: row[3]}
	}
	return ks, nil
}

// Components returns the kx, ky, kz components of all vectors.
func (ks KVectors) Components() [][3]float64 {
	c := make([][3]float64, len(ks))
	for i, k := range ks {
		c[i] = [3]float64{k.X, k.Y, k.Z}
	}
	return c
}

// Magnitudes returns the magnitudes of all vectors divided by the
// refractive index n, i.e. the light line in a medium with index n.
func (ks KVectors) Magnitudes(n float64) []float64 {
	m := make([]float64, len(ks))
	for i, k := range ks {
		m[i] = k.Mag / n
	}
	return m
}
