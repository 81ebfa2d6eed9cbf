package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingle(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--seed", "7", "xor", "4096", "1000")
	require.Equal(t, 0, code, stderr)
	require.True(t, strings.HasPrefix(stdout, "xor mode=sliding window=4.0 KiB iterations=1,000 "), stdout)
	require.Contains(t, stderr, "using seed")
}

func TestRunExplicitCommandAndStatic(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--static", "--seed", "1", "run", "blake3", "64", "10")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "blake3 mode=static")
}

func TestUnknownHasher(t *testing.T) {
	code, stdout, stderr := runCLI(t, "sha999", "4096", "10000")
	require.Equal(t, 1, code)
	require.Empty(t, stdout, "no run may be reported")
	require.Contains(t, stderr, "sha999")
	require.Contains(t, stderr, "unknown hasher")
}

func TestZeroWindow(t *testing.T) {
	code, stdout, stderr := runCLI(t, "xor", "0", "10")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "window size")
}

func TestMalformedNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"xor", "abc", "10"},
		{"xor", "64", "ten"},
		{"xor", "64", "-3"},
		{"xor", "64"},
		{"--seed", "not-a-number", "xor", "64", "10"},
	} {
		code, stdout, _ := runCLI(t, args...)
		require.Equal(t, 1, code, "args %v", args)
		require.Empty(t, stdout, "args %v", args)
	}
}

func TestList(t *testing.T) {
	code, stdout, stderr := runCLI(t, "list")
	require.Equal(t, 0, code, stderr)
	for _, name := range []string{"xor", "blake3", "xxh3-128", "polymur"} {
		require.Contains(t, stdout, name)
	}
}

func TestCompare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	code, stdout, stderr := runCLI(t, "--seed", "3", "compare", "--csv", path, "256", "50")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "xxhash64")
	require.Contains(t, stdout, "siphash128")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, csvHeader, rows[0])
	require.Greater(t, len(rows), 5)
	require.Equal(t, "xor", rows[1][0])
	require.Equal(t, "256", rows[1][4])
}

func TestCompareZeroWindow(t *testing.T) {
	code, stdout, _ := runCLI(t, "compare", "0", "50")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
}

func TestRunMemReport(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--seed", "7", "run", "--mem-report", "xxh3", "64", "10")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "- xxh3: 264 bytes")
	require.Contains(t, stdout, "  - buffer: 256 bytes (256 B)\n")
	require.Contains(t, stdout, "  - output: 8 bytes (8 B)\n")
}

func TestRunMemReportJSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--log-json", "--seed", "7", "run", "--mem-report", "xxh3", "64", "10")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t,
		`{"name":"xxh3","total_bytes":264,"children":[{"name":"buffer","total_bytes":256},{"name":"output","total_bytes":8}]}`,
		lines[1])
}

func TestSuiteCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--seed", "4", "suite", "xxh3")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "xxh3: start", lines[0])
	require.True(t, strings.HasSuffix(lines[1], "ms"), lines[1])
}

func TestSuiteUnknownEntry(t *testing.T) {
	code, stdout, stderr := runCLI(t, "suite", "komihash")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "komihash")
}
