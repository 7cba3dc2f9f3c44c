package credential

import "context"

// Source yields the API key a generation call should use.
// An empty key with a nil error means no credential is available.
type Source interface {
	Credential(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) Credential(ctx context.Context) (string, error) {
	return f(ctx)
}

// StoredSource reads the user-entered credential from a Store on every call,
// so a reset or a newly entered key takes effect on the next request.
func StoredSource(s *Store) Source {
	return SourceFunc(func(ctx context.Context) (string, error) {
		c, ok, err := s.Get(ctx)
		if err != nil || !ok {
			return "", err
		}
		return string(c), nil
	})
}

// StaticSource returns a fixed key, typically from process configuration.
func StaticSource(key string) Source {
	return SourceFunc(func(context.Context) (string, error) {
		return key, nil
	})
}

// Chain returns the first non-empty key among sources, in order.
func Chain(sources ...Source) Source {
	return SourceFunc(func(ctx context.Context) (string, error) {
		for _, src := range sources {
			k, err := src.Credential(ctx)
			if err != nil {
				return "", err
			}
			if k != "" {
				return k, nil
			}
		}
		return "", nil
	})
}
