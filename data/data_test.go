package data

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	input := `# k-index, band 1, band 2
k, b1, b2

0, 0.0, 0.5
1  0.1   0.45
2,0.2,0.4
`
	got, err := ReadTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Table{{0, 0, 0.5}, {1, 0.1, 0.45}, {2, 0.2, 0.4}}, got)
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, 3, got.Cols())
}

func TestReadTableErrors(t *testing.T) {
	_, err := ReadTable(strings.NewReader("1 2 3\n4 5\n"))
	assert.True(t, errors.Is(err, ErrRagged), "got %v", err)

	_, err = ReadTable(strings.NewReader("1 2 3\n4 x 6\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2, field 2")

	got, err := ReadTable(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestTable(t *testing.T) {
	tab := Table{{1, 5}, {math.NaN(), -2}, {3, 4}}
	min, max := tab.Range()
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 5.0, max)
	assert.Equal(t, []float64{5, -2, 4}, tab.Column(1))
	min, max = tab.ColumnRange(1)
	assert.Equal(t, []float64{-2, 5}, []float64{min, max})
	min, max = tab.ColumnRange(0)
	assert.Equal(t, []float64{1, 3}, []float64{min, max})
	assert.NoError(t, tab.Check())
	assert.True(t, tab.SameShape(Table{{0, 0}, {0, 0}, {0, 0}}))
	assert.False(t, tab.SameShape(Table{{0, 0}}))

	assert.True(t, errors.Is(Table{{1}, {1, 2}}.Check(), ErrRagged))
	assert.Equal(t, 0, Table{}.Cols())
}

func TestKVectors(t *testing.T) {
	ks, err := KVectorsFromTable(Table{{0, 0, 0, 0}, {0.5, 0, 0, 0.5}})
	require.NoError(t, err)
	assert.Equal(t, [][3]float64{{0, 0, 0}, {0.5, 0, 0}}, ks.Components())
	assert.Equal(t, []float64{0, 0.25}, ks.Magnitudes(2))

	_, err = KVectorsFromTable(Table{{0, 0, 0}})
	assert.Error(t, err)

	ks, err = ReadKVectors(strings.NewReader("kx ky kz k\n1 0 0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, KVectors{{X: 1, Mag: 1}}, ks)

	_, err = ReadKVectors(strings.NewReader("1 0 0\n"))
	assert.Error(t, err)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "k.csv")
	require.NoError(t, os.WriteFile(name, []byte("0 0 0 0\n0.5 0 0 0.5\n"), 0o644))

	ks, err := ReadKVectorsFile(name)
	require.NoError(t, err)
	assert.Len(t, ks, 2)

	_, err = ReadTableFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
