package main

import (
	"fmt"
	"os"

	"hexchat/src/app"
	"hexchat/src/config"
	"hexchat/src/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "hexchat",
	Short: "HEX HUSTLER AI, a terminal coding mentor and motivation machine",
	Long: `hexchat runs the HEX HUSTLER AI assistant in your terminal: a
rule-based coding mentor with chat history, a free question quota, and the
Code Your Success blueprint store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log, err := logging.New(cfg.Log.Level, cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		log.Info("starting hexchat", zap.String("version", version))

		program := tea.NewProgram(app.New(cfg, log), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("running ui: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hexchat version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hexchat " + version)
	},
}

func main() {
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
