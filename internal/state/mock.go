package state

// Mock is a test double for Manager.
type Mock struct {
	session *Session
	saves   int
	closed  bool
	errs    chan error
}

// NewMock creates a mock that starts with the given session (nil for first run).
func NewMock(s *Session) *Mock {
	return &Mock{session: s}
}

func (m *Mock) SaveSession(s Session) {
	s = s.clone()
	m.session = &s
	m.saves++
}

func (m *Mock) GetSession() (*Session, error) {
	return m.session, nil
}

// Errors returns the channel fed by Fail.
func (m *Mock) Errors() <-chan error {
	if m.errs == nil {
		m.errs = make(chan error, 1)
	}
	return m.errs
}

// Fail reports err as a failed background save.
func (m *Mock) Fail(err error) {
	if m.errs == nil {
		m.errs = make(chan error, 1)
	}
	m.errs <- err
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many times SaveSession was called.
func (m *Mock) Saves() int {
	return m.saves
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}
