// Package commands implements the CLI commands for landdeploy.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/landdeploy/internal/adapters/config"
	"go.trai.ch/landdeploy/internal/app"
	"go.trai.ch/zerr"
)

const (
	envPrefix      = "LANDDEPLOY"
	defaultNetwork = "localhost"
)

// CLI represents the command line interface for landdeploy.
type CLI struct {
	app           *app.App
	rootCmd       *cobra.Command
	v             *viper.Viper
	logFormatHook func(json bool)
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "landdeploy",
		Short:         "Deploy the LandCore contracts to an EVM network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags fall back to LANDDEPLOY_* environment variables.
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("config", config.DefaultFilename)
	v.SetDefault("network", defaultNetwork)
	v.SetDefault("log-format", "text")

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	_ = v.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return c.applyLogFormat()
	}

	rootCmd.AddCommand(c.newDeployCmd())
	rootCmd.AddCommand(c.newTasksCmd())
	rootCmd.AddCommand(c.newDeploymentsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// GetConfigPath returns the config file path from the flag or LANDDEPLOY_CONFIG.
func (c *CLI) GetConfigPath() string {
	return c.v.GetString("config")
}

// SetLogFormatHook registers fn to receive the --log-format choice before a command runs.
func (c *CLI) SetLogFormatHook(fn func(json bool)) {
	c.logFormatHook = fn
}

func (c *CLI) applyLogFormat() error {
	var json bool
	switch format := c.v.GetString("log-format"); format {
	case "text":
	case "json":
		json = true
	default:
		return zerr.With(zerr.New("unsupported log format"), "log_format", format)
	}
	if c.logFormatHook != nil {
		c.logFormatHook(json)
	}
	return nil
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// addNetworkFlag registers --network on cmd and binds it to LANDDEPLOY_NETWORK.
func (c *CLI) addNetworkFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("network", "n", defaultNetwork, "Network to use, as named in the configuration file")
}

// network resolves --network for the running command.
func (c *CLI) network(cmd *cobra.Command) string {
	_ = c.v.BindPFlag("network", cmd.Flags().Lookup("network"))
	return c.v.GetString("network")
}
