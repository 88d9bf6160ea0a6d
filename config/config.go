package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuning888/wstr/logger"
	"github.com/xuning888/wstr/pkg/util"
)

var defaultMaxRepeat = 1 << 16

type Properties struct {
	LogLevel   string `cfg:"loglevel"`
	TimeFormat string `cfg:"timeformat"`
	LogDir     string `cfg:"logdir"`
	FileLog    bool   `cfg:"filelog"`
	// MaxRepeat bounds the count accepted by the repeat command
	MaxRepeat int `cfg:"maxrepeat"`

	// config file path, set by SetUpConfig and never read from the file
	CfPath string `cfg:"-"`
}

var Current = defaults()

func defaults() *Properties {
	return &Properties{
		LogLevel:   "info",
		TimeFormat: logger.DefaultTimeFormat,
		LogDir:     ".",
		MaxRepeat:  defaultMaxRepeat,
	}
}

func parse(src io.Reader) (*Properties, error) {
	config := defaults()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimLeft(line, " ")
		if len(trimmed) > 0 && trimmed[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	// fill fields by their cfg tag
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if key == "-" {
			continue
		}
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intValue)
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		}
	}
	return config, nil
}

// SetUpDefault resets Current to the built-in defaults.
func SetUpDefault() {
	Current = defaults()
}

func SetUpConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer util.Close(file)
	properties, err := parse(file)
	if err != nil {
		return err
	}
	if properties.MaxRepeat <= 0 || properties.MaxRepeat > defaultMaxRepeat {
		properties.MaxRepeat = defaultMaxRepeat
	}
	if properties.LogDir == "" {
		properties.LogDir = "."
	}
	if configFilePath, err := filepath.Abs(filename); err == nil {
		properties.CfPath = configFilePath
	}
	Current = properties
	return nil
}

// LoggerConfiguration maps the properties onto the logger settings.
func (p *Properties) LoggerConfiguration() *logger.Configuration {
	return &logger.Configuration{
		Level:         logger.ParseLevel(p.LogLevel),
		TimeFormat:    p.TimeFormat,
		LogPath:       p.LogDir,
		EnableFileLog: p.FileLog,
	}
}
