package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultConfigFilename = "coqstep.yaml"

type Config struct {
	LogLevel string `yaml:"loglevel"`
	Input    string `yaml:"input,omitempty"`
}

// LoadConfig reads the configuration file, if any, and applies the
// command line flags on top of it.
//
// A file given with --config must exist and parse. The default file in the
// working directory is best effort: the editor runs us from wherever the
// buffer lives, and a broken coqstep.yaml there must not stop stepping, so
// it is skipped with a warning.
func LoadConfig() (Config, error) {
	result := Config{LogLevel: "warning"}

	if configFile != "" {
		if err := readConfig(configFile, &result); err != nil {
			return Config{}, err
		}
	} else if _, err := os.Stat(defaultConfigFilename); err == nil {
		var fromFile Config
		err := readConfig(defaultConfigFilename, &fromFile)
		if err == nil && fromFile.LogLevel != "" {
			_, err = logrus.ParseLevel(fromFile.LogLevel)
		}
		if err != nil {
			logrus.WithError(err).Warnf("ignoring %s", defaultConfigFilename)
		} else {
			if fromFile.LogLevel != "" {
				result.LogLevel = fromFile.LogLevel
			}
			result.Input = fromFile.Input
		}
	}

	if logLevel != "" {
		result.LogLevel = logLevel
	}
	if inputFile != "" {
		result.Input = inputFile
	}
	return result, nil
}

func readConfig(filename string, target *Config) error {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}
	if err := yaml.Unmarshal(yamlFile, target); err != nil {
		return errors.Wrapf(err, "parsing %s", filename)
	}
	return nil
}

// Logger configures the standard logrus logger to write to out at the
// configured level.
func (c Config) Logger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "loglevel")
	}
	logger := logrus.StandardLogger()
	logger.SetOutput(out)
	logger.SetLevel(level)
	return logger, nil
}

// OpenInput opens the configured input file, or returns stdin when no file
// is configured or the file is "-".
func (c Config) OpenInput(stdin io.Reader) (io.ReadCloser, error) {
	if c.Input == "" || c.Input == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}
