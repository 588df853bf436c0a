package main

import (
	"gptinstaller/internal/cli"
	_ "gptinstaller/internal/cli/cmd" // Import CLI commands
)

func main() {
	exiter, code := cli.Run()
	exiter(code)
}
