package runlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linehan/mqtc/runlog"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFourFiles(t *testing.T) {
	dir := t.TempDir()
	f, err := runlog.Open(dir)
	require.NoError(t, err)
	defer f.Close()

	for _, name := range []string{"alias.log", "mutate.log", "cost.log", "fitness.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
	}
}

func TestLogMethodsAppendLines(t *testing.T) {
	dir := t.TempDir()
	f, err := runlog.Open(dir)
	require.NoError(t, err)

	f.LogAlias([]float64{0.1, 0.2})
	f.LogMutate(3)
	f.LogCost(0.75)
	f.LogFitness(0.9)
	require.NoError(t, f.Close())

	costBytes, err := os.ReadFile(filepath.Join(dir, "cost.log"))
	require.NoError(t, err)
	require.Contains(t, string(costBytes), "0.75")

	mutateBytes, err := os.ReadFile(filepath.Join(dir, "mutate.log"))
	require.NoError(t, err)
	require.Equal(t, "3\n", string(mutateBytes))
}

func TestNilFilesLogMethodsAreNoOps(t *testing.T) {
	var f runlog.Files
	require.NotPanics(t, func() {
		f.LogAlias([]float64{1})
		f.LogMutate(1)
		f.LogCost(1)
		f.LogFitness(1)
	})
}
