package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/toanvui/internal/app"
	"github.com/abhisek/toanvui/internal/llm"
	"github.com/abhisek/toanvui/internal/logging"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Start the practice app",
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

// runPlay opens the store, builds dependencies, and launches the TUI.
func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("LLM config: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	creds := credentialStore(st)
	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	logging.Logger.WithField("provider", cfg.Provider).Info("starting practice app")
	return app.Run(ctx, app.Deps{
		Credentials: creds,
		Generator:   app.NewGenerator(cfg, creds, st.EventRepo()),
		ResetSecret: resetSecret(),
		SkipSplash:  skipSplash,
	})
}
