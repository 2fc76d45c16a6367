package desktop

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const warningTitle = "Warning!"

// LogNotifier reports unavailable years through the logger only
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Warn logs that no source could provide year
func (n *LogNotifier) Warn(year int, err error) {
	n.logger.Warn("Holiday data unavailable, showing plain calendar",
		zap.Int("year", year),
		zap.Error(err))
}

// DialogNotifier shows a blocking warning box on Windows and writes the
// same text to out elsewhere
type DialogNotifier struct {
	out    io.Writer
	logger *zap.Logger
}

// NewDialogNotifier creates a new DialogNotifier. A nil out means stderr.
func NewDialogNotifier(out io.Writer, logger *zap.Logger) *DialogNotifier {
	if out == nil {
		out = os.Stderr
	}
	return &DialogNotifier{
		out:    out,
		logger: logger,
	}
}

// Warn blocks until the user dismisses the warning
func (n *DialogNotifier) Warn(year int, err error) {
	n.logger.Info("Showing data warning", zap.Int("year", year))
	showWarning(n.out, warningTitle, warningMessage(year, err))
}

func warningMessage(year int, err error) string {
	return fmt.Sprintf(
		"Could not get holiday data for %d (primary and backup sources failed or lack the year).\nError: %v\nThe calendar is shown without holidays.",
		year, err)
}
