// Package morlelog configures the logrus entry every other package in
// this repository logs through. There is no process-wide logger: Setup
// returns a *logrus.Entry that callers thread down into Driver/Sampler
// constructors explicitly, mirroring the original source's single
// `logging.getLogger('main')` call site, just passed as a value instead
// of looked up by name.
package morlelog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup builds a *logrus.Entry at the given level ("debug", "info",
// "warn", "error"; empty defaults to "info"), formatted as JSON when json
// is true or as logrus's default text formatter otherwise, writing to
// stderr. The returned entry carries component="morle" so every
// downstream WithField call composes onto a recognizable base.
func Setup(level string, json bool) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(parsed)

	return logger.WithField("component", "morle"), nil
}
