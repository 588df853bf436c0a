package cli

import (
	"errors"
	"fmt"
	"os"

	"gptinstaller/internal/cli/cmd"
	"gptinstaller/internal/cli/output"
	"gptinstaller/internal/version"
	env "gptinstaller/pkg"
	"gptinstaller/pkg/installer"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"go.abhg.dev/komplete"
)

const name = "gpt-installer"

type aboutCmd struct{}

func (aboutCmd) Run(ctx *kong.Context) error {
	color.New(color.Bold).Println(name, version.Current)
	color.New(color.Underline).Println("Installer for the GPT image converter")
	fmt.Println("Installs or upgrades the converter, preserving the style/ and images/ folders,")
	fmt.Println("and puts the gpt-converter and gpt-image-folders launchers on your PATH.")
	return nil
}

type CLI struct {
	Install     cmd.InstallCmd   `cmd:"" default:"withargs" help:"Install the converter, or upgrade it preserving user data"`
	Status      cmd.StatusCmd    `cmd:"" help:"Show the state of the installation"`
	Backups     cmd.BackupsCmd   `cmd:"" help:"List upgrade backups"`
	Folders     cmd.FoldersCmd   `cmd:"" help:"Open the style, images and output folders"`
	Run         cmd.RunCmd       `cmd:"" help:"Start the installed converter"`
	Completions komplete.Command `cmd:"" help:"Generate shell completions"`
	About       aboutCmd         `cmd:"" help:"Show installer information"`

	Verbosity string `help:"Output verbosity" enum:"info,extra,debug" default:"info"`
	Home      string `help:"Override the home directory all paths are derived from" type:"path" placeholder:"PATH"`
	NoColor   bool   `help:"Disable colored output"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	var verbosity int
	switch c.Verbosity {
	case "info":
		verbosity = cmd.VerbosityInfo
	case "extra":
		verbosity = cmd.VerbosityExtra
	case "debug":
		verbosity = cmd.VerbosityDebug
	}
	cmd.SetVerbosity(verbosity)
	ctx.Bind(verbosity)

	if c.Home != "" {
		if err := env.SetHome(c.Home); err != nil {
			return err
		}
	}
	if c.NoColor {
		color.NoColor = true
	}
	return nil
}

// tips prints a tip message based on an error, if any are available.
func tips(err error) {
	if errors.Is(err, installer.ErrPythonNotFound) {
		output.Tip("Install Python 3 (e.g. 'apt install python3 python3-venv') and re-run the installer")
	}
	if errors.Is(err, installer.ErrPythonTooOld) {
		output.Tip("The converter needs Python %s or newer", installer.MinPythonVersion)
	}
	if errors.Is(err, installer.ErrNoInput) {
		output.Tip("Run the installer from an interactive terminal, or pass --url")
	}
	if errors.Is(err, installer.ErrNotInstalled) {
		output.Tip("Run '%s install' first", name)
	}
}

// Run creates the CLI parser and runs it. It returns an exit handler and code.
func Run() (func(int), int) {
	parser := kong.Must(&CLI{},
		kong.Name(name),
		kong.Description("Installer and launcher for the GPT image converter"),
		kong.ConfigureHelp(kong.HelpOptions{
			NoExpandSubcommands: true,
			Compact:             true,
		}),
	)
	komplete.Run(parser)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		exitCode := 1
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Context.PrintUsage(false)
			exitCode = parseErr.ExitCode()
		}
		output.Error("%s", err)
		return parser.Exit, exitCode
	}

	if err := ctx.Run(); err != nil {
		output.Error("%s", err)
		tips(err)
		var coder kong.ExitCoder
		if errors.As(err, &coder) {
			return ctx.Exit, coder.ExitCode()
		}
		return ctx.Exit, 1
	}
	return ctx.Exit, 0
}
