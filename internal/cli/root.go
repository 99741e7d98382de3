package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd returns the eulerpath root command with every subcommand
// registered. Logs go to the command's error writer.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Find Eulerian cycles and paths in undirected multigraphs",
		Long:          `eulerpath reads an undirected multigraph as an edge list and prints an Eulerian cycle or path using Hierholzer's algorithm, or the reason none exists.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			explicit := configPath != ""
			path := configPath
			if !explicit {
				path = defaultConfigPath()
			}
			cfg, err := loadConfig(path, explicit)
			if err != nil {
				return err
			}

			level, err := charmlog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = charmlog.DebugLevel
			}

			logger := newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("config", "path", path, "log_level", cfg.LogLevel)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/eulerpath/config.toml)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newGenerateCmd())

	return root
}
