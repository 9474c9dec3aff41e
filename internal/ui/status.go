package ui

import (
	"fmt"
	"io"
)

// Header prints a highlighted section title.
func Header(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render(title))
}

// Info prints a plain status line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, logInfoStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, logWarnStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a success line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, logSuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, logErrorStyle.Render(fmt.Sprintf(format, args...)))
}
