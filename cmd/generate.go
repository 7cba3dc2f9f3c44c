package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/toanvui/internal/app"
	"github.com/abhisek/toanvui/internal/llm"
	"github.com/abhisek/toanvui/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate math problems and print them",
	Long: `Ask the configured provider for problems at one difficulty and print them.

Uses the stored key, falling back to TOANVUI_GEMINI_API_KEY / GEMINI_API_KEY.
Every call is recorded in the LLM event log (see "toanvui llm list").`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("difficulty", "d", string(problemgen.DifficultyEasy), "Difficulty: easy, medium, hard (or Dễ, Trung bình, Khó)")
	generateCmd.Flags().IntP("count", "n", 1, "Number of problems to generate")
	generateCmd.Flags().Bool("json", false, "Print problems as JSON, one per line")
	generateCmd.Flags().String("provider", "", "Override TOANVUI_LLM_PROVIDER")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")
	provider, _ := cmd.Flags().GetString("provider")

	difficulty, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	cfg := llm.ConfigFromEnv()
	if provider != "" {
		cfg.Provider = provider
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("LLM config: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	gen := app.NewGenerator(cfg, credentialStore(st), st.EventRepo())
	out := cmd.OutOrStdout()

	for i := 0; i < count; i++ {
		p, err := gen.Generate(ctx, difficulty)
		if err != nil {
			var gerr *problemgen.GenerationError
			if errors.As(err, &gerr) {
				return fmt.Errorf("%s (%w)", gerr.Message(), err)
			}
			return err
		}
		if asJSON {
			if err := writeProblemJSON(out, p); err != nil {
				return err
			}
			continue
		}
		writeProblemText(out, i+1, difficulty, p)
	}
	return nil
}

func writeProblemJSON(w io.Writer, p *problemgen.MathProblem) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(p)
}

func writeProblemText(w io.Writer, n int, d problemgen.Difficulty, p *problemgen.MathProblem) {
	fmt.Fprintf(w, "── Bài %d (%s) ──\n", n, d.Label())
	fmt.Fprintf(w, "Câu hỏi:    %s\n", p.Question)
	fmt.Fprintf(w, "Đáp án:     %s\n", problemgen.FormatAnswer(p.Answer))
	fmt.Fprintf(w, "Gợi ý:      %s\n", p.Hint)
	fmt.Fprintf(w, "Giải thích: %s\n\n", p.Explanation)
}
