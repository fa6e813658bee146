package matrixio_test

import (
	"strings"
	"testing"

	"github.com/linehan/mqtc/matrixio"
	"github.com/stretchr/testify/require"
)

func TestReadSquareParsesWellFormedMatrix(t *testing.T) {
	in := "0 1 2\n1 0 3\n2 3 0\n"
	m, err := matrixio.ReadSquare(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestReadSquareTrailingWhitespaceDoesNotAddColumn(t *testing.T) {
	in := "0 1 2   \n1 0 3\n2 3 0\n"
	m, err := matrixio.ReadSquare(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
}

func TestReadSquareRejectsEmptyInput(t *testing.T) {
	_, err := matrixio.ReadSquare(strings.NewReader(""))
	require.ErrorIs(t, err, matrixio.ErrEmptyInput)
}

func TestReadSquareRejectsTruncatedRows(t *testing.T) {
	in := "0 1 2\n1 0 3\n"
	_, err := matrixio.ReadSquare(strings.NewReader(in))
	require.ErrorIs(t, err, matrixio.ErrTruncatedRow)
}

func TestReadSquareRejectsMalformedField(t *testing.T) {
	in := "0 x\n1 0\n"
	_, err := matrixio.ReadSquare(strings.NewReader(in))
	require.ErrorIs(t, err, matrixio.ErrMalformedField)
}

func TestReadSquareRejectsWrongFieldCountMidStream(t *testing.T) {
	in := "0 1 2\n1 0\n2 3 0\n"
	_, err := matrixio.ReadSquare(strings.NewReader(in))
	require.ErrorIs(t, err, matrixio.ErrTruncatedRow)
}
