//go:build !windows
// +build !windows

package desktop

import (
	"fmt"
	"io"
)

func showWarning(out io.Writer, title, message string) {
	fmt.Fprintf(out, "%s\n%s\n", title, message)
}
