//go:build debug

package sweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// logDebugf traces sweep event-loop decisions when built with -tags debug.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
