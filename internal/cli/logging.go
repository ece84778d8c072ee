package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// setupLogging points logrus at w and sets its level. debug overrides the
// configured level. Reports go to stdout, so logs must not.
func setupLogging(w io.Writer, debug bool, level string) error {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		return nil
	}
	if level == "" {
		level = defaultLogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid %s in config", cfgKeyLogLevel)
	}
	logrus.SetLevel(lvl)
	return nil
}
