package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/toanvui/internal/problemgen"
	"github.com/abhisek/toanvui/internal/ui/layout"
	"github.com/abhisek/toanvui/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func scoreLine(solved, attempted int) string {
	return fmt.Sprintf("★ %d/%d", solved, attempted)
}

func (s *PracticeScreen) View(width, height int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(s.renderKeyBar(inner))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseChoose:
		b.WriteString(theme.Body.Bold(true).Render("  Chọn độ khó:"))
		b.WriteString("\n\n")
		b.WriteString(s.menu.View())
	case phaseLoading:
		frame := spinnerFrames[s.spinFrame%len(spinnerFrames)]
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("  %s Đang tạo bài toán (%s)...", frame, s.difficulty.Label())))
	case phaseAnswering, phaseAnswered:
		b.WriteString(s.renderProblem(inner))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n  ")
		b.WriteString(layout.RenderError(s.errMsg))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

// renderKeyBar shows that a key is configured without revealing it.
func (s *PracticeScreen) renderKeyBar(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("🔑 Đã cấu hình Key")
	if s.masked != "" {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + s.masked)
	}
	right := lipgloss.NewStyle().Foreground(theme.Error).Render("[r] Đổi Key")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *PracticeScreen) renderProblem(width int) string {
	p := s.problem
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
		Render("Độ khó: " + s.difficulty.Label()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Bold(true).Render(p.Question))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Đáp án: "))
	b.WriteString(s.input.View())
	b.WriteString("\n")

	if s.showHint && p.Hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Render("💡 Gợi ý: " + p.Hint))
		b.WriteString("\n")
	}

	if s.phase == phaseAnswered {
		b.WriteString("\n")
		b.WriteString(renderVerdict(s.correct, p))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).
			Render("📖 Giải thích: " + p.Explanation))
	}
	return b.String()
}

func renderVerdict(correct bool, p *problemgen.MathProblem) string {
	if correct {
		return theme.Correct.Render("🎉 Chính xác! Giỏi lắm!")
	}
	return theme.Incorrect.Render("❌ Chưa đúng. Đáp án là " + problemgen.FormatAnswer(p.Answer))
}
