package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/xuning888/wstr/config"
	"github.com/xuning888/wstr/logger"
	"github.com/xuning888/wstr/pkg/datastruct/wstr"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Reader = strings.NewReader(input)
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	app.ExitErrHandler = func(*cli.Context, error) {}
	t.Cleanup(config.SetUpDefault)
	err := app.Run(append([]string{"wstr"}, args...))
	return out.String(), err
}

func TestRepeatLine(t *testing.T) {
	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader("bar\nignored"))
	require.NoError(t, repeatLine(in, out, 5))
	assert.Equal(t, "barbarbarbarbar\n", out.String())

	out.Reset()
	require.NoError(t, repeatLine(bufio.NewReader(strings.NewReader("")), out, 3))
	assert.Equal(t, "\n", out.String())

	err := repeatLine(bufio.NewReader(strings.NewReader("x")), out, -1)
	assert.ErrorIs(t, err, wstr.ErrNegativeCount)
}

func TestFindLines(t *testing.T) {
	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader("foo bar baz\n\nbaz\nnothing here"))
	require.NoError(t, findLines(in, out, wstr.New("baz")))
	assert.Equal(t, "8\n-1\n0\n-1\n", out.String())
}

func TestApp_Check(t *testing.T) {
	_, err := runApp(t, "", "check")
	assert.NoError(t, err)
}

func TestApp_Repeat(t *testing.T) {
	out, err := runApp(t, "ab\n", "repeat", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, "ababab\n", out)
}

func TestApp_RepeatLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wstr.conf")
	require.NoError(t, os.WriteFile(path, []byte("maxrepeat 4\n"), 0644))

	_, err := runApp(t, "ab\n", "--config", path, "repeat", "-n", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maxrepeat 4")
}

func TestCheckRepeatCount(t *testing.T) {
	logs := &bytes.Buffer{}
	logger.SetOutput(logs)
	defer logger.SetOutput(os.Stderr)

	assert.NoError(t, checkRepeatCount(4, 4))
	assert.Empty(t, logs.String())

	err := checkRepeatCount(5, 4)
	require.Error(t, err)
	assert.Equal(t, "count 5 exceeds maxrepeat 4", err.Error())
	assert.Contains(t, logs.String(), "level=warning")
	assert.Contains(t, logs.String(), "repeat count 5 rejected, maxrepeat is 4")
}

func TestApp_Find(t *testing.T) {
	out, err := runApp(t, "hello world\nworld\n", "find", "-p", "world")
	require.NoError(t, err)
	assert.Equal(t, "6\n0\n", out)
}

func TestApp_MissingConfig(t *testing.T) {
	_, err := runApp(t, "", "--config", filepath.Join(t.TempDir(), "absent.conf"), "check")
	assert.Error(t, err)
}
