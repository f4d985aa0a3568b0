/*
PURPOSE:
  Provides a structured logger for rating-report.
  Wraps zap for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - Needs Info/Warn/Error levels with structured fields.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Development config: human-readable console lines; the tables and
    banner go to stdout separately via plain fmt.

USAGE:
  output.Logger.Info("message", zap.String("key", "value"))

RELATED FILES:
  - All.

MAINTENANCE:
  - Configurable log levels?
*/

package output

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

func init() {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	Logger = l
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *zap.Logger) {
	Logger = l
}
