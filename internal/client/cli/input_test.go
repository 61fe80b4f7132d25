package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello  \n"))

	got, err := GetSimpleText(r, "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Email\n> ", out.String())
}

func TestGetSimpleText_EOFWithPartial(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("partial")), "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	got, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "Enter password: ")
}

func TestGetPassword_TerminalError(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }

	var out bytes.Buffer
	_, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.EqualError(t, err, "tty gone")
}

func TestGetPassword_Piped(t *testing.T) {
	origTerm := isTerminal
	t.Cleanup(func() { isTerminal = origTerm })
	isTerminal = func(int) bool { return false }

	var out bytes.Buffer
	got, err := GetPassword(bufio.NewReader(strings.NewReader(" pw with spaces \r\nnext\n")), &out)
	require.NoError(t, err)
	assert.Equal(t, " pw with spaces ", got)
	assert.Empty(t, out.String())
}
