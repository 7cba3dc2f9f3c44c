package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/logging"
	"github.com/abhisek/toanvui/internal/store"
)

// tuiAnnotation marks commands that take over the terminal. Their logs go
// to a file unless --log-file says otherwise.
const tuiAnnotation = "tui"

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "toanvui",
	Short: "Luyện toán vui với bài toán do AI tạo",
	Long: `Toán Vui: terminal app that asks Gemini for Vietnamese math word problems
at the difficulty you pick, then checks your answer.`,
	Annotations:       map[string]string{tuiAnnotation: "true"},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

// Execute loads .env, then runs the command tree.
func Execute(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return execute(ctx)
}

// Run executes the command tree and reports a failure on stderr once.
// It returns the process exit code.
func Run(ctx context.Context, stderr io.Writer) int {
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// execute runs the command tree and releases the log file whether or not
// the command failed. Errors are returned, not printed.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeLogging(); cerr != nil && err == nil {
		err = fmt.Errorf("close log file: %w", cerr)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TOANVUI_DB env var)")
	rootCmd.PersistentFlags().String("log-level", envOr("TOANVUI_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", os.Getenv("TOANVUI_LOG_FILE"), "Write logs to this file (TUI defaults to toanvui.log next to the database)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	path, _ := cmd.Flags().GetString("log-file")

	if path == "" && cmd.Annotations[tuiAnnotation] != "" {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		path = filepath.Join(filepath.Dir(dbPath), "toanvui.log")
	}

	closer, err := logging.Setup(level, path)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

func closeLogging() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	logging.Logger.SetOutput(os.Stderr)
	return err
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TOANVUI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by --db.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// credentialStore wraps the settings table of st.
func credentialStore(st *store.Store) *credential.Store {
	return credential.NewStore(st.SettingsRepo())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
