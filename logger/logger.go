package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const DefaultTimeFormat = "2006-01-02 15:04:05.000"

var logger = logrus.New()

// fileLevels names the per-level log files
var fileLevels = map[logrus.Level]string{
	logrus.InfoLevel:  "info",
	logrus.WarnLevel:  "warn",
	logrus.ErrorLevel: "error",
	logrus.DebugLevel: "debug",
}

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
}

// Configure applies config to the package logger. The file hook set up by an
// earlier call is replaced, never stacked.
func Configure(config *Configuration) error {
	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	hooks := make(logrus.LevelHooks)
	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for level, name := range fileLevels {
			writer, err := setupWriter(config.LogPath, name)
			if err != nil {
				return err
			}
			writerMap[level] = writer
		}
		// no color codes in files
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: timeFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		}
		hooks.Add(lfshook.NewHook(writerMap, fileFormatter))
	}

	logger.Level = config.Level
	// console output
	consoleFormatter := &logrus.TextFormatter{
		TimestampFormat: timeFormat,
		FullTimestamp:   true,
	}
	logger.SetFormatter(consoleFormatter)
	logger.ReplaceHooks(hooks)
	logger.SetOutput(os.Stderr)
	return nil
}

// ParseLevel falls back to info for unknown names.
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// SetOutput redirects console output, it is mostly used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	writer, err := rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "log writer %s", logFullPath)
	}
	return writer, nil
}

func appendGoroutineID(msg string) string {
	return fmt.Sprintf("[g: %v] %s", runtime.NumGoroutine(), msg)
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(appendGoroutineID(format), args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(appendGoroutineID(format), args...)
}

func WarnF(format string, args ...interface{}) {
	logger.Warnf(appendGoroutineID(format), args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(appendGoroutineID(format), args...)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
