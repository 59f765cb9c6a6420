package cli

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/rileyhilliard/dotfetch/internal/logger"
	"github.com/rileyhilliard/dotfetch/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print collected host facts as YAML",
	Long: `Collect host facts the same way the dashboard does and print them as
YAML instead of drawing them.

Examples:
  dotfetch snapshot
  dotfetch snapshot > host.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}

		snap, err := collectSnapshot(cmd.Context(), cfg, defaultSources(cfg), logger.Default())
		if err != nil {
			return err
		}
		return writeSnapshot(cmd.OutOrStdout(), snap)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func writeSnapshot(w io.Writer, snap *snapshot.HostSnapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(snap); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Couldn't encode snapshot", "")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Couldn't write snapshot", "")
	}
	return nil
}
