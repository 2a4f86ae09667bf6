// Package commands implements the CLI commands for the agroview dashboard.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.farmtech.dev/agroview/internal/app"
	"go.farmtech.dev/agroview/internal/build"
	"go.farmtech.dev/agroview/internal/core/domain"
)

// CLI represents the command line interface for agroview.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ListCultures(ctx context.Context, includeDeleted bool) ([]domain.Culture, error)
	ShowCulture(ctx context.Context, id domain.Identity) (*domain.Culture, error)
	CreateCulture(ctx context.Context, req app.CreateCultureRequest) (string, error)
	UpdateCulture(ctx context.Context, id domain.Identity, req app.UpdateCultureRequest) (string, error)
	DeleteCulture(ctx context.Context, id domain.Identity) (string, error)
	Analyze(ctx context.Context, id domain.Identity, force bool) error
	AnalyzeAll(ctx context.Context, force bool) error
	GenerateCultures(ctx context.Context, req app.GenerateRequest) (*app.GenerateResult, error)
	CalculateLines(ctx context.Context, id domain.Identity) (float64, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "agroview",
		Short:         "A resilient dashboard client for the culture service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
	rootCmd.AddCommand(c.newAnalyzeCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newLinesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// identityArg parses a culture identity positional argument.
func identityArg(arg string) (domain.Identity, error) {
	return domain.ParseIdentity(arg)
}
