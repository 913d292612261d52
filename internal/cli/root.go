// Package cli implements the alignstore command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alignstore/internal/paths"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	alphabet  string
	container string
	jsonMode  bool
}

// session is what PersistentPreRunE prepares for the subcommands.
type session struct {
	configDir string
	cfg       types.Config
	logger    *slog.Logger
}

var (
	flags rootFlags
	env   session

	// logOutput receives log records. Tests point it at a buffer.
	logOutput io.Writer = os.Stderr
)

// NewRootCmd creates the top-level "alignstore" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}
	env = session{}

	root := &cobra.Command{
		Use:   "alignstore",
		Short: "Inspect and convert multiple sequence alignments",
		Long: "alignstore loads FASTA alignments into row-primary or pattern-compressed\n" +
			"containers to report statistics, list column patterns and convert files.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: prepare,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.alphabet, "alphabet", "", "alphabet: dna, rna, protein")
	root.PersistentFlags().StringVar(&flags.container, "container", "", "container kind: aligned, compressed")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newPatternsCmd())
	root.AddCommand(newConvertCmd())

	return root
}

// prepare resolves the configuration directory, loads the configuration and
// installs the logger.
func prepare(cmd *cobra.Command, _ []string) error {
	// version runs without configuration.
	if cmd.Name() == "version" {
		return nil
	}
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	env = session{
		configDir: configDir,
		cfg:       cfg,
		logger:    newLogger(logOutput, cfg.LogLevel),
	}
	env.logger.Debug("configuration loaded", "config_dir", configDir,
		"alphabet", cfg.Alphabet, "container", cfg.Container)
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

// run executes root and maps its error to an exit code.
func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

// codedError carries the exit code for err.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// userError marks err as caused by input or configuration.
func userError(err error) error {
	return &codedError{code: exitUserError, err: err}
}

// sysError marks err as caused by the environment, such as I/O failures.
func sysError(err error) error {
	return &codedError{code: exitSysError, err: err}
}

// exitCode returns the code attached to err. Unmarked errors come from
// cobra's argument and flag parsing and count as user errors.
func exitCode(err error) int {
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return exitUserError
}
