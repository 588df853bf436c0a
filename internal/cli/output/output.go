package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Info prints a general informational message.
func Info(format string, a ...any) {
	color.New(color.Bold, color.FgBlue).Print("| ")
	fmt.Printf(format+"\n", a...)
}

// Success prints a success information message.
//
// Indicates a command or task has successfully completed.
func Success(format string, a ...any) {
	color.New(color.Bold, color.FgGreen).Print("| ")
	fmt.Printf(format+"\n", a...)
}

// Warning prints a cautionary message.
//
// Indicates that there may be an issue.
func Warning(format string, a ...any) {
	color.New(color.Bold, color.FgYellow).Print("| warning: ")
	fmt.Printf(format+"\n", a...)
}

// Error prints an error message.
//
// Indicates a fatal error.
func Error(format string, a ...any) {
	color.New(color.Bold, color.FgRed).Print("| error: ")
	fmt.Printf(format+"\n", a...)
}

// Tip prints a tip message.
//
// Indicates an action that should be performed.
func Tip(format string, a ...any) {
	color.New(color.Bold, color.FgYellow).Print("| tip: ")
	fmt.Printf(format+"\n", a...)
}

// Header prints a header message.
//
// Used for section headers and titles.
func Header(format string, a ...any) {
	color.New(color.Bold, color.Underline, color.FgWhite).Printf(format+"\n", a...)
}

// Status prints a status message.
//
// Used to show current state or status information.
func Status(format string, a ...any) {
	color.New(color.Faint, color.FgWhite).Printf(format+"\n", a...)
}

// CreateProgressBar creates a progress bar for operations with a known total.
func CreateProgressBar(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][%s][reset] ", description)),
		progressbar.OptionSetWriter(color.Output),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Print("\n")
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// CreateIndeterminateBar creates a progress bar for operations with unknown duration.
func CreateIndeterminateBar(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][%s][reset] ", description)),
		progressbar.OptionSetWriter(color.Output),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Print("\n")
		}),
	)
}

// SidebandWriter returns a writer that advances an indeterminate spinner as
// the wrapped tool produces output. Used to narrate git clone and pip runs
// without echoing their full output.
func SidebandWriter(description string) io.WriteCloser {
	return &sidebandWriter{bar: CreateIndeterminateBar(description)}
}

type sidebandWriter struct {
	bar   *progressbar.ProgressBar
	wrote bool
}

func (w *sidebandWriter) Write(p []byte) (int, error) {
	w.wrote = true
	w.bar.Add(len(p))
	return len(p), nil
}

// Close finishes the spinner, but only if the wrapped tool ever produced
// output; an untouched bar would otherwise print a stray newline.
func (w *sidebandWriter) Close() error {
	if !w.wrote {
		return nil
	}
	return w.bar.Finish()
}
