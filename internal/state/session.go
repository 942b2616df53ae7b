package state

import (
	"database/sql"
	"errors"
	"maps"
	"time"

	dbutil "github.com/llehouerou/carousel/internal/db"
)

// Session is what survives a restart: the focused carousel and the active
// index of every carousel, keyed by carousel title.
type Session struct {
	Focused   string
	Positions map[string]int
}

func (s Session) clone() Session {
	s.Positions = maps.Clone(s.Positions)
	return s
}

// Position returns the saved index for title clamped to [0, n), and false
// when nothing was saved or n is 0.
func (s *Session) Position(title string, n int) (int, bool) {
	if s == nil || n <= 0 {
		return 0, false
	}
	i, ok := s.Positions[title]
	if !ok {
		return 0, false
	}
	return min(max(i, 0), n-1), true
}

func getSession(db *sql.DB) (*Session, error) {
	var focused sql.NullString
	err := db.QueryRow(`SELECT focused_title FROM session_state WHERE id = 1`).Scan(&focused)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		Focused:   dbutil.NullStringValue(focused),
		Positions: make(map[string]int),
	}

	rows, err := db.Query(`SELECT title, active_index FROM carousel_positions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var title string
		var idx int
		if err := rows.Scan(&title, &idx); err != nil {
			return nil, err
		}
		s.Positions[title] = idx
	}
	return s, rows.Err()
}

func saveSession(db *sql.DB, s Session) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO session_state (id, focused_title, updated_at)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				focused_title = excluded.focused_title,
				updated_at = excluded.updated_at
		`, dbutil.NullString(s.Focused), time.Now().Unix())
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM carousel_positions`); err != nil {
			return err
		}

		for title, idx := range s.Positions {
			if idx < 0 {
				continue
			}
			if _, err := tx.Exec(`
				INSERT INTO carousel_positions (title, active_index) VALUES (?, ?)
			`, title, idx); err != nil {
				return err
			}
		}
		return nil
	})
}
