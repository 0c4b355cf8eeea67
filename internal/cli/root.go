// Package cli is the command line driver. Every subcommand reads one
// expression from its arguments, runs it through the symb package and writes
// the result to standard output.
package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/letung3105/symcalc/internal/config"
	"github.com/letung3105/symcalc/internal/symb"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes, following sysexits.h
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfg    *config.Config
	stderr io.Writer
}

// commands holds the constructors of the subcommands, filled by the init
// functions of the command files.
var commands []func(*app) *cobra.Command

func register(newCmd func(*app) *cobra.Command) {
	commands = append(commands, newCmd)
}

// usageError marks an error in how the program was invoked.
type usageError struct {
	error
}

func (err usageError) Unwrap() error {
	return err.error
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "symcalc",
		Short:         "A small computer algebra system.",
		Long:          "Parse, evaluate, simplify and differentiate infix expressions, expand them\nas Taylor series and take their limits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.PersistentFlags().StringP("config", "c", "", "read settings from a YAML file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	for _, newCmd := range commands {
		rootCmd.AddCommand(newCmd(a))
	}
	return rootCmd
}

// configure loads the settings and sets up logging before any command runs.
func (a *app) configure(cmd *cobra.Command) error {
	if path := getString(cmd, "config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return usageError{err}
		}
		a.cfg = cfg
	}

	level, err := a.cfg.Level()
	if err != nil {
		return usageError{err}
	}
	if getBool(cmd, "verbose") {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetOutput(a.stderr)
	log.SetFormatter(&log.TextFormatter{DisableColors: !isTerminal(a.stderr)})
	log.WithField("config", *a.cfg).Debug("configured")
	return nil
}

// Execute runs the command line given to the process and exits with the
// status of the run.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the exit status. Errors are
// printed on stderr, as log entries when running verbosely.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	a := &app{config.Default(), stderr}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	var reporter symb.Reporter
	if getBool(cmd, "verbose") {
		reporter = symb.NewLogReporter(log.StandardLogger())
	} else {
		reporter = symb.NewSimpleReporter(stderr)
	}
	reporter.Report(err)

	var usage usageError
	switch {
	case errors.As(err, &usage):
		cmd.SetOut(stderr)
		cmd.Usage()
		return exitUsage
	case reporter.HadParseError():
		return exitDataErr
	}
	return exitSoftErr
}

// expressionArgs accepts one or more arguments, which are joined into the
// expression text.
func expressionArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageError{errors.New("missing expression")}
	}
	return nil
}

// parseArgs reads the expression given on the command line.
func parseArgs(args []string) (symb.Expr, error) {
	return parseText(strings.Join(args, " "))
}

func parseText(text string) (symb.Expr, error) {
	tokens := symb.Tokenize(text)
	expr, err := symb.Parse(tokens)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"text": text, "tree": symb.TreeString(expr)}).Debug("parsed expression")
	return expr, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
