// Package practice is the main screen: pick a difficulty, get a problem,
// answer it.
package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/logging"
	"github.com/abhisek/toanvui/internal/problemgen"
	"github.com/abhisek/toanvui/internal/router"
	"github.com/abhisek/toanvui/internal/screen"
	"github.com/abhisek/toanvui/internal/ui/components"
	"github.com/abhisek/toanvui/internal/ui/layout"
)

const spinnerInterval = 100 * time.Millisecond

type phase int

const (
	phaseChoose phase = iota
	phaseLoading
	phaseAnswering
	phaseAnswered
)

// PracticeScreen implements screen.Screen for a practice round.
type PracticeScreen struct {
	generator problemgen.Generator
	store     *credential.Store
	openReset func() screen.Screen

	phase      phase
	difficulty problemgen.Difficulty
	menu       components.Menu
	input      components.TextInput

	masked    string
	problem   *problemgen.MathProblem
	showHint  bool
	correct   bool
	errMsg    string
	spinFrame int

	solved    int
	attempted int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen. openReset builds the reset modal pushed on "r".
func New(generator problemgen.Generator, store *credential.Store, openReset func() screen.Screen) *PracticeScreen {
	items := make([]components.MenuItem, 0, len(problemgen.Difficulties))
	for _, d := range problemgen.Difficulties {
		items = append(items, components.MenuItem{
			Label: d.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyChosenMsg{Difficulty: d} }
			},
		})
	}

	return &PracticeScreen{
		generator:  generator,
		store:      store,
		openReset:  openReset,
		difficulty: problemgen.DifficultyEasy,
		menu:       components.NewMenu(items),
		input:      components.NewTextInput("Nhập đáp án...", components.NumberInput, 24),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	cred, ok, err := s.store.Get(context.Background())
	switch {
	case err != nil:
		logging.Logger.WithError(err).Warn("read credential")
	case ok:
		s.masked = cred.Masked()
	}
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return "Luyện tập"
}

func (s *PracticeScreen) Status() string {
	if s.attempted == 0 {
		return ""
	}
	return scoreLine(s.solved, s.attempted)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseLoading:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Thoát"}}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Trả lời"},
			{Key: "h", Description: "Gợi ý"},
			{Key: "n", Description: "Bài khác"},
			{Key: "Esc", Description: "Đổi độ khó"},
			{Key: "r", Description: "Đổi Key"},
		}
	case phaseAnswered:
		return []layout.KeyHint{
			{Key: "n/Enter", Description: "Bài tiếp"},
			{Key: "Esc", Description: "Đổi độ khó"},
			{Key: "r", Description: "Đổi Key"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Chọn độ khó"},
			{Key: "Enter", Description: "Tạo bài toán"},
			{Key: "r", Description: "Đổi Key"},
			{Key: "Ctrl+C", Description: "Thoát"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case difficultyChosenMsg:
		s.difficulty = msg.Difficulty
		return s, s.generate()

	case problemReadyMsg:
		return s.handleProblemReady(msg)

	case spinnerTickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.spinFrame++
		return s, spinnerTick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// A request is in flight: nothing but quitting until it settles.
	if s.phase == phaseLoading {
		return s, nil
	}

	switch key {
	case "r":
		if s.openReset == nil {
			return s, nil
		}
		modal := s.openReset()
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: modal} }
	case "esc":
		s.phase = phaseChoose
		s.errMsg = ""
		return s, nil
	}

	switch s.phase {
	case phaseChoose:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseAnswering:
		switch key {
		case "enter":
			return s.submitAnswer()
		case "h":
			s.showHint = !s.showHint
			return s, nil
		case "n":
			return s, s.generate()
		}
		s.errMsg = ""
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseAnswered:
		switch key {
		case "n", "enter":
			return s, s.generate()
		case "h":
			s.showHint = !s.showHint
		}
	}

	return s, nil
}

// generate starts one generation call for the current difficulty.
func (s *PracticeScreen) generate() tea.Cmd {
	if s.phase == phaseLoading {
		return nil
	}
	s.phase = phaseLoading
	s.problem = nil
	s.showHint = false
	s.errMsg = ""
	s.spinFrame = 0
	s.input.Reset()

	gen, difficulty := s.generator, s.difficulty
	return tea.Batch(spinnerTick(), func() tea.Msg {
		p, err := gen.Generate(context.Background(), difficulty)
		return problemReadyMsg{Problem: p, Err: err}
	})
}

func (s *PracticeScreen) handleProblemReady(msg problemReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseChoose
		s.errMsg = errorMessage(msg.Err)
		return s, nil
	}
	s.problem = msg.Problem
	s.phase = phaseAnswering
	return s, nil
}

// submitAnswer checks the typed answer. Input that is not a number is
// reported inline and does not count as an attempt.
func (s *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.problem == nil {
		return s, nil
	}
	ok, err := problemgen.CheckAnswer(s.input.Value(), s.problem)
	if err != nil {
		s.errMsg = "Hãy nhập một con số!"
		return s, nil
	}

	s.correct = ok
	s.attempted++
	if ok {
		s.solved++
	}
	s.input.Submit(ok)
	s.phase = phaseAnswered
	return s, nil
}

// errorMessage turns a generation failure into the line shown to the learner.
func errorMessage(err error) string {
	var gerr *problemgen.GenerationError
	switch {
	case errors.As(err, &gerr):
		return gerr.Message()
	case errors.Is(err, problemgen.ErrInFlight):
		return "Đang tạo bài toán, vui lòng đợi..."
	default:
		return "Có lỗi xảy ra khi tạo bài toán. Vui lòng thử lại."
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
