package render_test

import (
	"strings"
	"testing"

	"github.com/linehan/mqtc/qtree"
	"github.com/linehan/mqtc/render"
	"github.com/stretchr/testify/require"
)

func TestTreeRendersEveryItemIndexExactlyOnce(t *testing.T) {
	n := 9
	tr, err := qtree.NewTree(n, qtree.WithSeed(42))
	require.NoError(t, err)

	out := render.Tree(tr)
	require.NotEmpty(t, out)
	for i := 0; i < n; i++ {
		require.Equal(t, 1, strings.Count(out, itoa(i)), "item %d should appear exactly once", i)
	}
}

func itoa(i int) string {
	return [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}[i]
}

func TestTreeUsesDotForInternalNodes(t *testing.T) {
	tr, err := qtree.NewTree(5, qtree.WithSeed(7))
	require.NoError(t, err)
	out := render.Tree(tr)
	require.Contains(t, out, ".")
}
