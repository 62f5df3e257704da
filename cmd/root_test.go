package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setupFile = `# id capacity grades
1 3 АИ-80
2 2 АИ-92
3 4 АИ-92 АИ-95 АИ-98
`

const inputFile = `10:36 15 АИ-80
10:55 50 АИ-92
10:56 100 АИ-92
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testOptions(t *testing.T, arrivals string) runOptions {
	t.Helper()
	dir := t.TempDir()
	return runOptions{
		Seed:         42,
		PumpsPath:    writeFile(t, dir, "setup.txt", setupFile),
		ArrivalsPath: writeFile(t, dir, "input.txt", arrivals),
		Allocator:    "least-occupied",
		TraceLevel:   "none",
	}
}

func TestRunSimulation_ReferenceDay(t *testing.T) {
	// GIVEN the three-pump station and three vehicles
	opts := testOptions(t, inputFile)
	var out bytes.Buffer

	// WHEN the day is simulated
	summary, err := runSimulation(opts, &out)
	require.NoError(t, err)

	// THEN every vehicle is served and revenue follows the default prices
	assert.Equal(t, 3, summary.Served)
	assert.Equal(t, 0, summary.Rejected)
	assert.Equal(t, int64(165), summary.TotalLiters())
	assert.InDelta(t, 9892.95, summary.Revenue, 1e-9)

	log := out.String()
	assert.True(t, strings.HasPrefix(log, "=== Station setup ===\n"))
	assert.Contains(t, log, "10:36 arrival   vehicle 1: AI-80 15 L -> pump 1")
	assert.Contains(t, log, "10:55 arrival   vehicle 2: AI-92 50 L -> pump 2")
	assert.Contains(t, log, "10:56 arrival   vehicle 3: AI-92 100 L -> pump 3")
	assert.Contains(t, log, "Revenue: 9892.95\n")
	assert.Equal(t, 3, strings.Count(log, " departure vehicle "))
}

func TestRunSimulation_SameSeedSameLog(t *testing.T) {
	opts := testOptions(t, inputFile)
	var a, b bytes.Buffer
	_, err := runSimulation(opts, &a)
	require.NoError(t, err)
	_, err = runSimulation(opts, &b)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestRunSimulation_MalformedInputWritesNothing(t *testing.T) {
	tests := []struct {
		name     string
		arrivals string
		wantErr  string
	}{
		{"bad time", "25:10 15 AI-80\n", "invalid time"},
		{"bad volume", "10:36 lots AI-80\n", "input.txt:1"},
		{"zero volume", "10:36 0 AI-80\n", "input.txt:1"},
		{"unknown grade", "10:36 15 AI-100\n", "unknown fuel grade"},
		{"missing field", "10:36 15\n", "input.txt:1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions(t, tc.arrivals)
			var out bytes.Buffer
			_, err := runSimulation(opts, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestRunSimulation_RejectsUnknownOptions(t *testing.T) {
	opts := testOptions(t, inputFile)
	opts.Allocator = "round-robin"
	_, err := runSimulation(opts, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown allocator")

	opts = testOptions(t, inputFile)
	opts.TraceLevel = "verbose"
	_, err = runSimulation(opts, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown trace level")
}

func TestRunSimulation_MetricsTextfile(t *testing.T) {
	opts := testOptions(t, inputFile)
	opts.TraceLevel = "decisions"
	opts.MetricsTextfile = filepath.Join(t.TempDir(), "fuelsim.prom")

	_, err := runSimulation(opts, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(opts.MetricsTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fuelsim_arrivals_total{grade="AI-92"} 2`)
	assert.Contains(t, string(data), "fuelsim_revenue_total")
}

func TestRunCommand_AppendsToOutput(t *testing.T) {
	// GIVEN an output file that already holds a previous day
	opts := testOptions(t, inputFile)
	output := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(output, []byte("previous day\n"), 0o644))

	// WHEN the run command is executed twice
	for i := 0; i < 2; i++ {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetArgs([]string{"run",
			"--pumps", opts.PumpsPath,
			"--arrivals", opts.ArrivalsPath,
			"--output", output,
			"--log", "warn",
		})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, stdout.String(), "=== End of day ===")
	}

	// THEN both days follow the existing content
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	log := string(data)
	assert.True(t, strings.HasPrefix(log, "previous day\n"))
	assert.Equal(t, 2, strings.Count(log, "=== Station setup ==="))
	assert.Equal(t, 2, strings.Count(log, "=== End of day ==="))
}

// failingLog buffers writes and fails on Close, like a log whose final flush is lost.
type failingLog struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (f *failingLog) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndClose_ReportsCloseError(t *testing.T) {
	// GIVEN an event log whose close fails
	log := &failingLog{closeErr: errors.New("disk full")}

	// WHEN a successful day is written to it
	err := writeAndClose(log, func(w io.Writer) error {
		_, err := io.WriteString(w, "=== End of day ===\n")
		return err
	})

	// THEN the close failure surfaces instead of a silent success
	require.Error(t, err)
	assert.ErrorContains(t, err, "closing event log")
	assert.ErrorContains(t, err, "disk full")
	assert.True(t, log.closed)
}

func TestWriteAndClose_WriteErrorWins(t *testing.T) {
	log := &failingLog{closeErr: errors.New("disk full")}
	err := writeAndClose(log, func(io.Writer) error { return errors.New("bad arrivals") })
	assert.EqualError(t, err, "bad arrivals")
	assert.True(t, log.closed, "log must be closed on the error path too")
}

func TestWriteAndClose_Success(t *testing.T) {
	log := &failingLog{}
	require.NoError(t, writeAndClose(log, func(w io.Writer) error {
		_, err := io.WriteString(w, "line\n")
		return err
	}))
	assert.Equal(t, "line\n", log.String())
	assert.True(t, log.closed)
}
