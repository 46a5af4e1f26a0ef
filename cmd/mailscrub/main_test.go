package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMailscrub(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(input))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultScrub(t *testing.T) {
	input := "X-Mailer: Thunderbird 91.0\n" +
		"Received: from mail.example.com ([192.168.1.1])\n" +
		"Subject: Hi\n" +
		"\n" +
		"Hello.\n"

	out, err := runMailscrub(t, input)
	require.NoError(t, err)
	assert.Equal(t, "Subject: Hi\n\nHello.\n", out)
}

func TestFlagOverrides(t *testing.T) {
	input := "X-Mailer: Thunderbird 91.0\n" +
		"Received: from mail.example.com ([192.168.1.1])\n" +
		"Subject: Hi\n" +
		"\n" +
		"Hello.\n"

	out, err := runMailscrub(t, input, "--keep-x-mailer", "--obfuscate-received")
	require.NoError(t, err)
	assert.Equal(t,
		"X-Mailer: Thunderbird 91.0\n"+
			"Received: from mail.example.com ([REDACTED])\n"+
			"Subject: Hi\n"+
			"\n"+
			"Hello.\n",
		out)
}

func TestBodyPassesThrough(t *testing.T) {
	input := "Subject: Hi\n\nX-Mailer: not a header, just body text\n"

	out, err := runMailscrub(t, input)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestFileArguments(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.eml")
	outPath := filepath.Join(dir, "out.eml")
	require.NoError(t, os.WriteFile(in,
		[]byte("X-Mailer: mutt\nSubject: Hi\n\nBody\n"), 0o644))

	_, err := runMailscrub(t, "", in, outPath)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Subject: Hi\n\nBody\n", string(got))
}

func TestMissingInputFile(t *testing.T) {
	_, err := runMailscrub(t, "", filepath.Join(t.TempDir(), "nope.eml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read input")
}

func TestBadLogLevel(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("Subject: Hi\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "shouty"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestHelp(t *testing.T) {
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "mailscrub [input [output]]")
	assert.Contains(t, out.String(), "--keep-x-mailer")
}
