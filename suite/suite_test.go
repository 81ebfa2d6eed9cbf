package suite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"HashBench/hasher"
	"HashBench/timing"
)

func TestEntriesAvailable(t *testing.T) {
	t.Parallel()
	names := Names()
	require.Contains(t, names, "polymur")
	require.Contains(t, names, "blake3")
	require.Contains(t, names, "xxh3")
	require.Contains(t, names, "xxh3-128")
	for _, e := range Entries() {
		require.True(t, e.Kind.Available(), e.Name)
		// Entry names match the command line hasher names.
		require.Equal(t, e.Kind.String(), e.Name)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()
	e, err := Find("xxh3-128")
	require.NoError(t, err)
	require.Equal(t, hasher.XXH3x128, e.Kind)

	_, err = Find("komihash")
	require.ErrorIs(t, err, hasher.ErrUnknownHasher)
	require.ErrorContains(t, err, "komihash")
}

func TestSymbol(t *testing.T) {
	t.Parallel()
	require.Equal(t, "hashbench_polymur", Entry{Name: "polymur"}.Symbol())
	require.Equal(t, "hashbench_xxh3_128", Entry{Name: "xxh3-128"}.Symbol())

	seen := make(map[string]bool)
	for _, e := range Entries() {
		require.False(t, seen[e.Symbol()], e.Symbol())
		seen[e.Symbol()] = true
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	all, err := Select(nil)
	require.NoError(t, err)
	require.Equal(t, Entries(), all)

	es, err := Select([]string{"farm64", "polymur"})
	require.NoError(t, err)
	require.Len(t, es, 2)
	require.Equal(t, hasher.Farm64, es[0].Kind)
	require.Equal(t, hasher.Polymur, es[1].Kind)

	_, err = Select([]string{"polymur", "xxhash64"})
	require.ErrorIs(t, err, hasher.ErrUnknownHasher)
	require.ErrorContains(t, err, "xxhash64")
}

func TestRunEntriesStopsAtFirstError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	es := []Entry{
		{Name: "xor-ish", Kind: hasher.XOR},
		{Name: "bogus", Kind: hasher.Kind(-1)},
		{Name: "never", Kind: hasher.XOR},
	}
	results, err := RunEntries(es, timing.NewConsole(&buf), 1, logr.Discard())
	require.ErrorIs(t, err, hasher.ErrUnknownHasher)
	require.Len(t, results, 1)
	require.Contains(t, buf.String(), "xor-ish: start\n")
	require.NotContains(t, buf.String(), "never")
}

func TestRunEmitsMarkers(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	console := timing.NewConsole(&buf)

	e, err := Find("blake3")
	require.NoError(t, err)
	res, err := Run(e, console, 1, logr.Discard())
	require.NoError(t, err)

	require.Equal(t, uint64(Iterations), res.Iterations)
	require.Equal(t, WindowSize, res.WindowSize)
	require.Equal(t, 4*WindowSize, res.BufferLen)
	require.Equal(t, "blake3", res.Label)
	require.Len(t, res.Digest, 32)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "blake3: start", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "blake3: "), lines[1])
	require.True(t, strings.HasSuffix(lines[1], "ms"), lines[1])
}

func TestRunAll(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every suite entry at full size")
	}
	t.Parallel()
	var buf bytes.Buffer
	results, err := RunAll(timing.NewConsole(&buf), 2, logr.Discard())
	require.NoError(t, err)
	require.Len(t, results, len(Entries()))
	for i, e := range Entries() {
		require.Equal(t, e.Name, results[i].Label)
		require.Contains(t, buf.String(), e.Name+": start\n")
	}
}
