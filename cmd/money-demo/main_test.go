package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDemo(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv("MONEY_LOCALE", "en-US")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String()
}

func TestRun(t *testing.T) {
	t.Run("demo amounts", func(t *testing.T) {
		code, out := runDemo(t)
		require.Equal(t, success, code)
		assert.Equal(t, "-€1.14\n$5\n", out)
	})

	t.Run("amount", func(t *testing.T) {
		code, out := runDemo(t, "--amount", "1234.5", "--currency", "usd")
		require.Equal(t, success, code)
		assert.Equal(t, "$1,234.50\n", out)
	})

	t.Run("optional decimals", func(t *testing.T) {
		code, out := runDemo(t, "-a", "12.00", "-c", "USD", "-o")
		require.Equal(t, success, code)
		assert.Equal(t, "$12\n", out)
	})

	t.Run("max decimals", func(t *testing.T) {
		code, out := runDemo(t, "-a", "12.3456", "-c", "USD", "-m", "3")
		require.Equal(t, success, code)
		assert.Equal(t, "$12.346\n", out)
	})

	t.Run("suffix locale", func(t *testing.T) {
		code, out := runDemo(t, "-a", "1234.5", "-c", "EUR", "-L", "de-DE")
		require.Equal(t, success, code)
		assert.Equal(t, "1.234,50\u00a0€\n", out)
	})

	t.Run("list", func(t *testing.T) {
		code, out := runDemo(t, "--list")
		require.Equal(t, success, code)
		assert.Contains(t, out, "USD\t$\tUS Dollar\n")
		assert.Contains(t, out, "EUR\t€\tEuro\n")
	})
}

func TestRun_Errors(t *testing.T) {
	tests := map[string][]string{
		"amount":  {"--amount", "twelve"},
		"locale":  {"--locale", "not a locale"},
		"level":   {"--level", "loud"},
		"unknown": {"--frobnicate"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, _ := runDemo(t, args...)
			assert.Equal(t, failure, code)
		})
	}
}

func TestConfig_Locale(t *testing.T) {
	tests := []struct {
		cfg  config
		want string
	}{
		{config{Locale: "fr-CA", Lang: "de_DE.UTF-8"}, "fr-CA"},
		{config{Lang: "de_CH.UTF-8"}, "de-CH"},
		{config{Lang: "nl_NL@euro"}, "nl-NL"},
		{config{Lang: "C"}, "en-US"},
		{config{Lang: "POSIX"}, "en-US"},
		{config{}, "en-US"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cfg.locale(), "config %+v", tt.cfg)
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("MONEY_LOCALE", "")
	t.Setenv("LANG", "sv_SE.UTF-8")
	t.Setenv("MONEY_LOG_LEVEL", "debug")

	cfg, err := parseConfig()
	require.NoError(t, err)
	assert.Equal(t, "sv-SE", cfg.locale())
	assert.Equal(t, "debug", cfg.Level)
}

func TestRun_LogsRunID(t *testing.T) {
	t.Setenv("MONEY_LOCALE", "en-US")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-a", "5", "-c", "USD", "-l", "debug"}, &stdout, &stderr)
	require.Equal(t, success, code)

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.NotEmpty(t, lines)
	var first struct {
		Run string `json:"run"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Len(t, first.Run, 36)
	for _, line := range lines[1:] {
		assert.Contains(t, line, `"run":"`+first.Run+`"`)
	}
}
