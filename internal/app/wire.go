package app

import (
	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/llm"
	"github.com/abhisek/toanvui/internal/problemgen"
	"github.com/abhisek/toanvui/internal/store"
)

// CredentialSource picks where generation calls get their key. Gemini
// prefers the user-entered key and falls back to the environment; other
// providers use their configured key only.
func CredentialSource(cfg llm.Config, creds *credential.Store) credential.Source {
	switch {
	case cfg.Provider == llm.ProviderMock:
		return credential.StaticSource(llm.ProviderMock)
	case cfg.UsesStoredCredential() && creds != nil:
		return credential.Chain(credential.StoredSource(creds), credential.StaticSource(cfg.APIKey()))
	default:
		return credential.StaticSource(cfg.APIKey())
	}
}

// NewGenerator wires a problem generator for cfg. eventRepo may be nil.
func NewGenerator(cfg llm.Config, creds *credential.Store, eventRepo store.EventRepo) *problemgen.LLMGenerator {
	return problemgen.New(
		CredentialSource(cfg, creds),
		llm.NewFactory(cfg, eventRepo),
		problemgen.Options{Timeout: cfg.Timeout},
	)
}
