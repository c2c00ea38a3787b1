package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"simple-bank/app"
	"simple-bank/config"
	"simple-bank/store"
)

var cfgFile string

// rootCmd runs an interactive banking session against a fresh in-memory account.
var rootCmd = &cobra.Command{
	Use:   "bank",
	Short: "A single-account banking session in your terminal",
	Long: `bank starts an interactive session with one empty account.

Deposit, withdraw and print a statement by typing the key shown in the menu.
Nothing is saved: the account lives until you quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bank.yaml or $HOME/.config/simple-bank/bank.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (console, json)")
}

func runSession(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlag("logging.level", cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("failed to bind --log-level: %w", err)
	}
	if err := v.BindPFlag("logging.format", cmd.Flags().Lookup("log-format")); err != nil {
		return fmt.Errorf("failed to bind --log-format: %w", err)
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	session := app.NewSession(
		store.NewInMemoryEventStore(logger),
		app.WithLogger(logger),
		app.WithOperations(app.NewOperationTable(cfg.Bank.CurrencySymbol)),
	)
	logger.Info("session started", "session", session.ID(), "bank", cfg.Bank.Name)

	return newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Bank, logger).Run(session)
}
