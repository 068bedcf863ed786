package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/espada105/Personal-Assistant-SION/internal/profile"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu"
	"github.com/espada105/Personal-Assistant-SION/server"
)

var rootCmd = &cobra.Command{
	Use:   "sion",
	Short: "Intent and temporal resolution service for the SION assistant",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := profile.FromViper()
		if err != nil {
			return err
		}
		setupLogger(p)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.NewServer(p).Start(ctx)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Classify intent and extract entities from one utterance",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := nlu.NewEngine()
		result := engine.Analyze(context.Background(), strings.Join(args, " "))
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("mode", "dev", `run mode, "prod" or "dev"`)
	flags.String("addr", "", "binding address")
	flags.Int("port", 8082, "binding port")
	flags.String("timezone", "Asia/Seoul", "local timezone for date resolution")
	flags.Int("event-duration", 60, "default timed event duration in minutes")
	flags.Int("recurrence-count", 10, "default occurrence count for repeating events")
	flags.Bool("llm-enabled", false, "substitute the LLM intent classifier")
	flags.String("llm-base-url", "", "LLM API base URL")
	flags.String("llm-api-key", "", "LLM API key")
	flags.String("llm-model", "", "LLM model name")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("sion")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(analyzeCmd)
}

func setupLogger(p *profile.Profile) {
	level := slog.LevelInfo
	if p.IsDev() {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
