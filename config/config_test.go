package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := strings.NewReader(`# wstr config
loglevel debug
timeformat 2006-01-02 15:04:05
logdir /tmp/wstr
filelog yes
maxrepeat 128
`)
	p, err := parse(src)
	require.NoError(t, err)
	assert.Equal(t, "debug", p.LogLevel)
	assert.Equal(t, "2006-01-02 15:04:05", p.TimeFormat)
	assert.Equal(t, "/tmp/wstr", p.LogDir)
	assert.True(t, p.FileLog)
	assert.Equal(t, 128, p.MaxRepeat)
}

func TestParse_Defaults(t *testing.T) {
	p, err := parse(strings.NewReader("  # only a comment\n"))
	require.NoError(t, err)
	assert.Equal(t, defaults(), p)
}

func TestParse_SkipsDashTaggedFields(t *testing.T) {
	p, err := parse(strings.NewReader("cf /etc/other.conf\ncfpath /etc/other.conf\nloglevel warn\n"))
	require.NoError(t, err)
	assert.Empty(t, p.CfPath)
	assert.Equal(t, "warn", p.LogLevel)
}

func TestParse_BadInt(t *testing.T) {
	_, err := parse(strings.NewReader("maxrepeat many\n"))
	assert.Error(t, err)
}

func TestSetUpConfig(t *testing.T) {
	defer SetUpDefault()
	dir := t.TempDir()
	path := filepath.Join(dir, "wstr.conf")
	require.NoError(t, os.WriteFile(path, []byte("loglevel warn\nmaxrepeat 0\nlogdir \n"), 0644))

	require.NoError(t, SetUpConfig(path))
	assert.Equal(t, "warn", Current.LogLevel)
	assert.Equal(t, defaultMaxRepeat, Current.MaxRepeat)
	assert.Equal(t, ".", Current.LogDir)
	assert.Equal(t, path, Current.CfPath)

	lc := Current.LoggerConfiguration()
	assert.Equal(t, logrus.WarnLevel, lc.Level)
	assert.False(t, lc.EnableFileLog)
}

func TestSetUpConfig_Missing(t *testing.T) {
	err := SetUpConfig(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Error(t, err)
}
