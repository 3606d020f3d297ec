package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/hugeint"
)

// execute runs the command tree with args and returns what it wrote to
// standard output and standard error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	logLevel, logFormat, permissive = "warn", "text", false
	defer slog.SetDefault(slog.Default())

	var stdout, stderr bytes.Buffer
	Root.SetOut(&stdout)
	Root.SetErr(&stderr)
	Root.SetArgs(args)
	err := Root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	stdout, stderr, err := execute(t, "demo")
	require.NoError(t, err)

	want := `n1 is 7654321
n2 is 7891234
n3 is 99999999999999999999999999999
n4 is 1
n5 is 0

7654321 + 7891234 = 15545555

99999999999999999999999999999 + 1
= 100000000000000000000000000000

7654321 + 9 = 7654330

7891234 + 10000 = 7901234

Multiplication:
123456789012345678901234567890 * 987654321098765432109876543210 = 622923332237463801111263526900

Division:
987654321098765432109876543210 / 123456789012345678901234567890 = 8
`
	assert.Equal(t, want, stdout)
	assert.Contains(t, stderr, "product wrapped around")
}

func TestCalc(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "+ 7654321 7891234"}, "15545555\n"},
		{[]string{"calc", "*", "10", "+", "7654321", "7891234"}, "155455550\n"},
		{[]string{"calc", "+ 999999999999999999999999999999 1"}, "0\n"},
		{[]string{"calc", "/ 987654321098765432109876543210 123456789012345678901234567890"}, "8\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestCalcErrors(t *testing.T) {
	_, _, err := execute(t, "calc", "/ 5 0")
	assert.ErrorIs(t, err, hugeint.ErrDivisionByZero)

	_, _, err = execute(t, "calc", "+ 1 x")
	assert.ErrorIs(t, err, hugeint.ErrInvalidInt)

	_, _, err = execute(t, "calc")
	assert.Error(t, err)
}

func TestCalcDebugLog(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "calc", "+ 1 2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"evaluated expression"`)
	assert.Contains(t, stderr, `"result":"3"`)
}

func TestCmp(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"cmp", "7654321", "7891234"}, "<\n"},
		{[]string{"cmp", "7891234", "7654321"}, ">\n"},
		{[]string{"cmp", "0042", "42"}, "=\n"},
		{[]string{"cmp", "--permissive", "1,000", "10000"}, "=\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestCmpErrors(t *testing.T) {
	_, _, err := execute(t, "cmp", "1,000", "10000")
	assert.ErrorIs(t, err, hugeint.ErrInvalidInt)

	_, _, err = execute(t, "cmp", "1")
	assert.Error(t, err)
}

func TestLogFlags(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "calc", "1")
	assert.ErrorContains(t, err, "invalid log-level")

	_, _, err = execute(t, "--log-format", "xml", "calc", "1")
	assert.ErrorContains(t, err, "invalid log-format")
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
	}
	for in, want := range tests {
		got, err := slogLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
