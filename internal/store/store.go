// Package store records detector channel lists in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cwbudde/algo-chanscan/dsp/chandetect"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store: closed")

// Session describes one scan of a sample source.
type Session struct {
	ID        int64
	StartTime time.Time
	Source    string
	Config    chandetect.Config
}

// Record is a channel reported by a given segmentation cycle.
type Record struct {
	Cycle uint64
	chandetect.Channel
}

// Store is a SQLite-backed channel recorder. The database is opened and the
// schema created on first use.
type Store struct {
	path string

	db     *sql.DB
	dbOnce sync.Once
	dbErr  error

	closeOnce sync.Once
	closeErr  error
	closed    bool
	mu        sync.Mutex
}

// Open returns a Store for the database file at path and makes sure the
// schema exists.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := s.getDB(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	s.dbOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.path, "_journal_mode=WAL&_synchronous=NORMAL"))
		if err != nil {
			s.dbErr = fmt.Errorf("opening database: %w", err)
			return
		}
		db.SetMaxOpenConns(1)

		if _, err = db.Exec(initSchemaSQL); err != nil {
			_ = db.Close()
			s.dbErr = fmt.Errorf("initializing schema: %w", err)
			return
		}

		s.db = db
	})

	return s.db, s.dbErr
}

// CreateSession inserts a session for source scanned with cfg and returns
// its ID.
func (s *Store) CreateSession(ctx context.Context, source string, cfg chandetect.Config) (sessionID int64, err error) {
	p, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("marshaling config: %w", err)
	}

	db, err := s.getDB()
	if err != nil {
		return 0, fmt.Errorf("getting connection: %w", err)
	}

	result, err := db.ExecContext(ctx, insertSessionSQL, source, string(p))
	if err != nil {
		return 0, fmt.Errorf("inserting session: %w", err)
	}

	sessionID, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting session ID: %w", err)
	}
	return sessionID, nil
}

// Session loads the session with the given ID.
func (s *Store) Session(ctx context.Context, id int64) (*Session, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	var (
		sess   Session
		config sql.NullString
	)
	err = db.QueryRowContext(ctx, selectSessionSQL, id).Scan(&sess.ID, &sess.StartTime, &sess.Source, &config)
	if err != nil {
		return nil, fmt.Errorf("scanning session %d: %w", id, err)
	}
	if config.Valid {
		if err := json.Unmarshal([]byte(config.String), &sess.Config); err != nil {
			return nil, fmt.Errorf("decoding session config: %w", err)
		}
	}
	return &sess, nil
}

// RecordCycle stores the channels found by one segmentation cycle. An empty
// list writes nothing.
func (s *Store) RecordCycle(ctx context.Context, sessionID int64, cycle uint64, channels []chandetect.Channel) (err error) {
	if len(channels) == 0 {
		return nil
	}

	db, err := s.getDB()
	if err != nil {
		return fmt.Errorf("getting connection: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollbackWithError(tx, &err)

	stmt, err := tx.PrepareContext(ctx, insertChannelSQL)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer closeWithError(stmt, &err)

	for _, ch := range channels {
		if _, err = stmt.ExecContext(ctx, sessionID, int64(cycle), ch.Frequency, ch.Bandwidth, ch.SNR); err != nil {
			return fmt.Errorf("inserting channel: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Channels returns every recorded channel of a session ordered by cycle.
func (s *Store) Channels(ctx context.Context, sessionID int64) (records []Record, err error) {
	db, err := s.getDB()
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	rows, err := db.QueryContext(ctx, selectChannelsSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying channels: %w", err)
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var (
			r     Record
			cycle int64
		)
		if err = rows.Scan(&cycle, &r.Frequency, &r.Bandwidth, &r.SNR); err != nil {
			return nil, fmt.Errorf("scanning channel: %w", err)
		}
		r.Cycle = uint64(cycle)
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating channels: %w", err)
	}
	return records, nil
}

// Cycles returns the number of cycles that recorded at least one channel.
func (s *Store) Cycles(ctx context.Context, sessionID int64) (int, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, fmt.Errorf("getting connection: %w", err)
	}

	var n int
	if err := db.QueryRowContext(ctx, countCyclesSQL, sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cycles: %w", err)
	}
	return n, nil
}

// Close closes the database. Further calls return the first result.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		if s.db != nil {
			s.closeErr = s.db.Close()
			s.db = nil
		}
	})
	return s.closeErr
}

func closeWithError(cl interface{ Close() error }, err *error) {
	if cErr := cl.Close(); cErr != nil && *err == nil {
		*err = cErr
	}
}

// rollbackWithError ignores sql.ErrTxDone so it can be deferred after Commit.
func rollbackWithError(rb interface{ Rollback() error }, err *error) {
	if rErr := rb.Rollback(); rErr != nil && !errors.Is(rErr, sql.ErrTxDone) && *err == nil {
		*err = rErr
	}
}
