package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "carousel"
	dbFileName   = "carousel.db"
	saveDebounce = 500 * time.Millisecond
	errBuffer    = 8
)

// Manager persists the session to SQLite. Saves are debounced so that
// rapid navigation or autoplay produces a single write.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Session
	debounce  time.Duration
	errs      chan error
}

// Open opens the session database in the XDG data dir.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the session database at path, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:       db,
		debounce: saveDebounce,
		errs:     make(chan error, errBuffer),
	}, nil
}

// Close flushes any pending save and closes the database. A failed final
// save is returned together with any close error.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	var saveErr error
	if pending != nil {
		saveErr = saveSession(m.db, *pending)
	}

	return errors.Join(saveErr, m.db.Close())
}

// Errors delivers failures of debounced saves. Errors are dropped while
// the buffer is full.
func (m *Manager) Errors() <-chan error {
	return m.errs
}

func (m *Manager) report(err error) {
	select {
	case m.errs <- err:
	default:
	}
}

// GetSession returns the saved session, or nil on first run.
func (m *Manager) GetSession() (*Session, error) {
	return getSession(m.db)
}

// SaveSession schedules a write of s, replacing any write still pending.
func (m *Manager) SaveSession(s Session) {
	s = s.clone()

	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending == nil {
			return
		}
		if err := saveSession(m.db, *pending); err != nil {
			m.report(err)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
