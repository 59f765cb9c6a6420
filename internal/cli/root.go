package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dotfetch/internal/config"
	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/rileyhilliard/dotfetch/internal/logger"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// Dashboard flags
var (
	noScreenshot bool
	noWait       bool
)

var rootCmd = &cobra.Command{
	Use:   "dotfetch",
	Short: "Show system information next to a logo",
	Long: `Collect host facts once and draw them as a colored dashboard next to
an ASCII logo, then take a screenshot after a short countdown.

Facts that can't be read show as "unknown" instead of failing the run.

Examples:
  dotfetch
  dotfetch --no-screenshot
  dotfetch --config ~/dotfetch.yaml --no-wait`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		applyFlags(cfg, flagOverrides{
			NoScreenshot: noScreenshot,
			NoWait:       noWait,
			NoColor:      noColor,
		})
		return runFetch(cmd.Context(), cfg, defaultFetchEnv(cfg, cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.ConfigFileName+", then ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().BoolVar(&noScreenshot, "no-screenshot", false, "skip the delayed screenshot")
	rootCmd.Flags().BoolVar(&noWait, "no-wait", false, "exit without waiting for a key press")
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}
	if code, ok := errors.GetExitCode(err); ok {
		os.Exit(code)
	}
	printError(os.Stderr, err)
	os.Exit(1)
}

// printError writes structured errors as-is and prefixes anything else.
func printError(w io.Writer, err error) {
	var dfErr *errors.Error
	if stderrors.As(err, &dfErr) {
		fmt.Fprint(w, dfErr.Error())
		return
	}
	fmt.Fprintf(w, "✗ %v\n", err)
}

// flagOverrides are the command-line switches that win over config.
type flagOverrides struct {
	NoScreenshot bool
	NoWait       bool
	NoColor      bool
}

func applyFlags(cfg *config.Config, f flagOverrides) {
	if f.NoScreenshot {
		cfg.Screenshot.Enabled = false
	}
	if f.NoWait {
		cfg.WaitForKey = false
	}
	if f.NoColor {
		cfg.Color = "never"
	}
}

// loadConfig finds, loads and validates the config. With no file present it
// returns defaults with environment overrides applied.
func loadConfig(explicit string) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Default().Debug("using config %s", path)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
