package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mohitkumar/fotoflow/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplayDigitalFlow(t *testing.T) {
	out, err := execute(t, "--log-level", "error",
		"--answer", "privacy=agree", "--answer", "next",
		"--answer", "mode=digital", "--answer", "event=Hochzeit",
		"--answer", "accessories=Requisiten", "--answer", "next")
	require.NoError(t, err)
	require.Contains(t, out, "[accessories] Zubehör")
	require.Contains(t, out, "[x] Requisiten (Requisiten)")
	require.Contains(t, out, "* Modus: Digital")
	require.Contains(t, out, "350.00 EUR")
}

func TestReplayJSONQuote(t *testing.T) {
	out, err := execute(t, "--log-level", "error", "--json",
		"--answer", "privacy=agree", "--answer", "next",
		"--answer", "mode=digital-and-print", "--answer", "event=Hochzeit",
		"--answer", "guests=50–120", "--answer", "format=strip",
		"--answer", "print-package=100")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	var quote model.Quote
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &quote))
	require.True(t, decimal.NewFromInt(450).Equal(quote.Total), quote.Total.String())
}

func TestReplayRejectsUnknownValue(t *testing.T) {
	_, err := execute(t, "--log-level", "error", "--answer", "privacy=maybe")
	require.Error(t, err)

	_, err = execute(t, "--log-level", "error", "--answer", "privacy")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "../../catalog/builtin/fobi.json", "../../catalog/builtin/fobi-chat.json")
	require.NoError(t, err)
	require.Contains(t, out, "fobi.json: ok (fobi, 10 steps)")
	require.Contains(t, out, "fobi-chat.json: ok (fobi-chat, 8 steps)")
}

func TestCatalogsCommand(t *testing.T) {
	out, err := execute(t, "catalogs", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "fobi-chat\nfobi\n", out)
}

type brokenWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestJSONOutputWriteFailure(t *testing.T) {
	cmd := newCommand()
	cmd.SetOut(brokenWriter{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "error", "--json"})
	require.True(t, errors.Is(cmd.Execute(), errBrokenPipe))
}
