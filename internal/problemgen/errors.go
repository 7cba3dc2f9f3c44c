package problemgen

import (
	"errors"
	"fmt"
)

// ErrInFlight is returned when Generate is called while another call on the
// same Generator has not finished.
var ErrInFlight = errors.New("problemgen: a problem is already being generated")

// ErrorKind classifies generation failures.
type ErrorKind int

const (
	// MissingCredential means no API key was available. No request was sent.
	MissingCredential ErrorKind = iota + 1
	// EmptyResponse means the service answered without a text body.
	EmptyResponse
	// MalformedResponse means the body was not a valid problem object.
	MalformedResponse
	// TransportFailure covers network, HTTP, auth and timeout failures.
	TransportFailure
)

func (k ErrorKind) String() string {
	switch k {
	case MissingCredential:
		return "missing_credential"
	case EmptyResponse:
		return "empty_response"
	case MalformedResponse:
		return "malformed_response"
	case TransportFailure:
		return "transport_failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var kindMessages = map[ErrorKind]string{
	MissingCredential: "API Key chưa được cấu hình.",
	EmptyResponse:     "Không nhận được phản hồi từ Gemini.",
	MalformedResponse: "Phản hồi từ Gemini không đúng định dạng.",
	TransportFailure:  "Không thể kết nối tới Gemini.",
}

// GenerationError is returned by Generate for every failure except
// ErrInFlight and invalid input.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generate problem: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("generate problem: %s", e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Message is the Vietnamese text shown to learners.
func (e *GenerationError) Message() string {
	return kindMessages[e.Kind]
}

// Is matches another *GenerationError by Kind, so callers can write
// errors.Is(err, &GenerationError{Kind: MalformedResponse}).
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a generation error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}
