package problemgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/llm"
	"github.com/abhisek/toanvui/internal/logging"
)

// DefaultTimeout bounds a generation call when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options tunes an LLMGenerator.
type Options struct {
	// Timeout bounds each call. Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxTokens caps the response. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// LLMGenerator implements Generator on top of an llm.Provider. The API key
// is read from its credential source on every call, so a key entered or
// removed in the UI takes effect on the next problem.
type LLMGenerator struct {
	source  credential.Source
	factory llm.Factory
	opts    Options

	busy atomic.Bool

	mu        sync.Mutex
	cachedKey string
	cached    llm.Provider
}

// New creates an LLMGenerator. factory is called with the resolved key the
// first time that key is seen.
func New(source credential.Source, factory llm.Factory, opts Options) *LLMGenerator {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &LLMGenerator{source: source, factory: factory, opts: opts}
}

// Generate produces a single problem. Only one call may run at a time;
// overlapping calls fail fast with ErrInFlight.
func (g *LLMGenerator) Generate(ctx context.Context, difficulty Difficulty) (*MathProblem, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("generate problem: unknown difficulty %q", difficulty)
	}
	if !g.busy.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer g.busy.Store(false)

	ctx = llm.WithPurpose(logging.WithRequestID(ctx), llm.PurposeProblemGen)
	log := logging.WithContext(ctx).WithField("difficulty", string(difficulty))

	p, err := g.generate(ctx, difficulty)
	if err != nil {
		log.WithError(err).Error("problem generation failed")
		return nil, err
	}
	log.WithFields(problemFields(p)).Debug("problem generated")
	return p, nil
}

func (g *LLMGenerator) generate(ctx context.Context, difficulty Difficulty) (*MathProblem, error) {
	key, err := g.source.Credential(ctx)
	if err != nil {
		return nil, &GenerationError{Kind: MissingCredential, Err: err}
	}
	if key == "" {
		return nil, &GenerationError{Kind: MissingCredential}
	}

	provider, err := g.provider(ctx, key)
	if err != nil {
		return nil, &GenerationError{Kind: TransportFailure, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	resp, err := provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(difficulty),
		Schema:      ProblemSchema,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(bytes.TrimSpace(resp.Content)) == 0 {
		return nil, &GenerationError{Kind: EmptyResponse, Err: llm.ErrEmptyResponse}
	}

	problem, err := decodeProblem(resp.Content)
	if err != nil {
		return nil, &GenerationError{Kind: MalformedResponse, Err: err}
	}
	return problem, nil
}

// provider returns a provider bound to key, reusing the last one when the
// key has not changed.
func (g *LLMGenerator) provider(ctx context.Context, key string) (llm.Provider, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cached != nil && g.cachedKey == key {
		return g.cached, nil
	}
	p, err := g.factory(ctx, key)
	if err != nil {
		return nil, err
	}
	g.cached, g.cachedKey = p, key
	return p, nil
}

// classify maps provider errors onto generation error kinds.
func classify(err error) *GenerationError {
	var inv *llm.ErrInvalidResponse
	var maxTok *llm.ErrMaxTokensExceeded
	switch {
	case errors.Is(err, llm.ErrEmptyResponse):
		return &GenerationError{Kind: EmptyResponse, Err: err}
	case errors.As(err, &inv), errors.As(err, &maxTok):
		return &GenerationError{Kind: MalformedResponse, Err: err}
	default:
		return &GenerationError{Kind: TransportFailure, Err: err}
	}
}

// problemJSON uses pointers so a missing field can be told apart from a
// zero value.
type problemJSON struct {
	Question    *string  `json:"question"`
	Answer      *float64 `json:"answer"`
	Explanation *string  `json:"explanation"`
	Hint        *string  `json:"hint"`
}

// decodeProblem parses raw strictly: unknown fields, missing fields and
// trailing data are all rejected.
func decodeProblem(raw json.RawMessage) (*MathProblem, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var pj problemJSON
	if err := dec.Decode(&pj); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode problem: unexpected data after object")
	}

	var missing []string
	if pj.Question == nil {
		missing = append(missing, "question")
	}
	if pj.Answer == nil {
		missing = append(missing, "answer")
	}
	if pj.Explanation == nil {
		missing = append(missing, "explanation")
	}
	if pj.Hint == nil {
		missing = append(missing, "hint")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("decode problem: missing fields %v", missing)
	}

	return &MathProblem{
		Question:    *pj.Question,
		Answer:      *pj.Answer,
		Explanation: *pj.Explanation,
		Hint:        *pj.Hint,
	}, nil
}

// problemFields describes p for logs without revealing the answer.
func problemFields(p *MathProblem) logrus.Fields {
	return logrus.Fields{
		"question_len": len(p.Question),
		"has_hint":     p.Hint != "",
	}
}
