package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/lgtm-ci/python-setup/pkg/interpreter"
	"github.com/lgtm-ci/python-setup/pkg/log"
)

// Environment variables registered by the CI host when it parses the
// `::set-env` marker lines on stdout.
const (
	SetupVersionEnv = "LGTM_PYTHON_SETUP_VERSION"
	ImportPathEnv   = "LGTM_INDEX_IMPORT_PATH"
)

var ErrInvalidArgument = errors.New("invalid argument")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name + " <path-to-python>",
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "auto", "Set the log format (auto, text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(os.Stderr, logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, args []string) error {
		details, err := interpreter.GetDetails(args[0])
		if err != nil {
			return err
		}

		// stdout carries only these four lines, in this order; the CI host
		// parses the marker lines into real environment variables.
		out := cc.OutOrStdout()
		printSetEnv(out, SetupVersionEnv, details.Version)
		printSetEnv(out, ImportPathEnv, details.ImportPath)

		return nil
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func printSetEnv(w io.Writer, name, value string) {
	fmt.Fprintf(w, "Setting %s=%s\n", name, value)
	fmt.Fprintf(w, "::set-env name=%s::%s\n", name, value)
}
