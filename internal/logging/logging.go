package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a component-scoped logger writing to stderr. Stdout is
// reserved for the stdio JSON-RPC stream and must stay clean.
func New(component string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	return logger.WithField("component", component)
}
