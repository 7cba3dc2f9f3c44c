package resetgate

import "errors"

// ResetKind names why a password submission was refused.
type ResetKind string

const (
	EmptyPassword ResetKind = "empty_password"
	WrongPassword ResetKind = "wrong_password"
)

var (
	ErrEmptyPassword = &ResetError{Kind: EmptyPassword}
	ErrWrongPassword = &ResetError{Kind: WrongPassword}

	ErrNoCredential = errors.New("no credential to reset")
	ErrNotPrompting = errors.New("reset prompt is not open")
)

// ResetError is shown inline in the password prompt.
type ResetError struct {
	Kind ResetKind
}

func (e *ResetError) Error() string {
	switch e.Kind {
	case EmptyPassword:
		return "Vui lòng nhập mã bảo mật!"
	case WrongPassword:
		return "Mã bảo mật không đúng! Vui lòng liên hệ Admin."
	default:
		return "Mã bảo mật không hợp lệ!"
	}
}

func (e *ResetError) Is(target error) bool {
	t, ok := target.(*ResetError)
	return ok && t.Kind == e.Kind
}
