package screen

import "github.com/abhisek/toanvui/internal/credential"

// KeySetMsg is sent once a credential has been validated and saved.
type KeySetMsg struct {
	Credential credential.Credential
}

// KeyRemovedMsg is sent once the stored credential has been cleared.
type KeyRemovedMsg struct{}
