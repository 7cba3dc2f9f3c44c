package credential

// ValidationKind names why a candidate credential was rejected.
type ValidationKind string

const (
	EmptyInput    ValidationKind = "empty_input"
	InvalidFormat ValidationKind = "invalid_format"
)

var (
	ErrEmptyInput    = &ValidationError{Kind: EmptyInput}
	ErrInvalidFormat = &ValidationError{Kind: InvalidFormat}
)

// ValidationError is returned by Validate and Store.Set. Its Error text is
// the Vietnamese message shown inline in the entry form.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "Vui lòng nhập API Key!"
	case InvalidFormat:
		return `API Key không hợp lệ! API Key phải bắt đầu bằng "` + Prefix + `"`
	default:
		return "API Key không hợp lệ!"
	}
}

// Is matches any ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
