package cli

import (
	"os"
	"time"

	"meshnodes/pkg/strings"

	"github.com/briandowns/spinner"
)

// StartSpinner shows a progress spinner with the given status on stderr and
// returns the function that stops it. Nothing is drawn in quiet mode or when
// stderr is not a terminal.
func StartSpinner(status string, quiet bool) (stop func()) {
	if quiet {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + strings.TruncateDisplay(status, strings.DefaultStatusMaxWidth)
	s.Start()
	return s.Stop
}
