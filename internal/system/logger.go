package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output. It prints to
// stderr so renderings on stdout stay machine-readable.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// SetVerbose raises the log level to debug.
func SetVerbose() {
	Logger.SetLevel(clog.DebugLevel)
}
