package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSession(s Session)
	GetSession() (*Session, error)
	Close() error
	// Errors delivers failures of background saves; nil when saves cannot fail.
	Errors() <-chan error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
