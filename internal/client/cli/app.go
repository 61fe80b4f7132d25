package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/courtside/internal/client/client"
	"github.com/courtside/courtside/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

// NewApp creates an App talking to cfg.ServerURL over stdin/stdout.
func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// RootCmd builds the command tree.
func (a *App) RootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "courtside",
		Short: "Command-line client for the Courtside auth API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.client == nil {
				a.client = client.NewHTTPClient(a.config.ServerURL, a.config.Timeout)
			}
		},
		SilenceUsage: true,
	}
	root.SetOut(a.out)

	// --config is consumed by config.LoadConfig before cobra runs; it is
	// declared here so cobra accepts it.
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON config file")
	root.PersistentFlags().StringVar(&a.config.ServerURL, "server", a.config.ServerURL, "Server URL (env: COURTSIDE_SERVER)")
	root.PersistentFlags().StringVar(&a.config.TokenFile, "token-file", a.config.TokenFile, "Token file path (env: COURTSIDE_TOKEN_FILE)")

	root.AddCommand(a.newSignupCmd())
	root.AddCommand(a.newLoginCmd())
	root.AddCommand(a.newWhoamiCmd())
	root.AddCommand(a.newLogoutCmd())
	root.AddCommand(a.newHealthCmd())

	return root
}

// Run executes the CLI with args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.RootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
