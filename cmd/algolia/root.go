package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	algolia "github.com/britto/algolia-go"
	"github.com/britto/algolia-go/pkg/credentials"
	"github.com/britto/algolia-go/pkg/logger"
	"github.com/britto/algolia-go/pkg/transport"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var verbose bool

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algolia",
		Short: "Command-line client for the Algolia search API",
		Long: `algolia talks to the Algolia search API from the terminal: run queries,
manage objects and settings, and wait on indexing tasks.

Credentials are read from ALGOLIA_APPLICATION_ID and ALGOLIA_API_KEY
(a .env file in the working directory is honored).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every request attempt to stderr")

	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newObjectCommand())
	rootCmd.AddCommand(newIndexCommand())
	rootCmd.AddCommand(newTaskCommand())

	return rootCmd
}

func newClient() *algolia.Client {
	var opts []transport.Option
	if verbose {
		opts = append(opts, transport.WithLogger(logger.New(
			logger.WithTextFormatter(),
			logger.WithLevel(slog.LevelDebug),
			logger.WithOutput(os.Stderr),
		)))
	}
	return algolia.New(credentials.FromEnv(), opts...)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
