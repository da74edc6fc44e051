package logwriter

import (
	"fmt"
	"log"
	"strings"

	"github.com/aws/smithy-go/logging"
)

// SDK returns a logging.Logger that writes AWS SDK client output through the
// standard logger, one log line per SDK message, tagged with prefix so it can
// be told apart from the fleet's own logs.
func SDK(prefix string) logging.Logger {
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
		level := "DEBUG"
		if classification == logging.Warn {
			level = "WARN"
		}

		for _, line := range strings.Split(strings.TrimRight(fmt.Sprintf(format, v...), "\n"), "\n") {
			log.Printf("[%s] [%s] %s", level, prefix, line)
		}
	})
}
