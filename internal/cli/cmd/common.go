package cmd

// Verbosity levels shared by the commands. The CLI layer sets the current
// level once, before any command runs.
const (
	VerbosityInfo = iota
	VerbosityExtra
	VerbosityDebug
)

var currentVerbosity = VerbosityInfo

// SetVerbosity selects how chatty the external tools (git, pip) are allowed
// to be. At VerbosityInfo their output only drives a spinner; above that it
// is streamed through unchanged.
func SetVerbosity(v int) {
	currentVerbosity = v
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
