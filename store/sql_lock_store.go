// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	ms "github.com/go-sql-driver/mysql"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

const (
	// mutexTableName is created by the db_lock migration.
	mutexTableName = "db_lock"

	minWaitInterval    = 1 * time.Second
	maxWaitInterval    = 5 * time.Minute
	pollWaitInterval   = 1 * time.Second
	jitterWaitInterval = minWaitInterval / 2

	// lockTTL is how long a lock survives without a refresh.
	lockTTL         = 15 * time.Second
	refreshInterval = lockTTL / 2

	mysqlDuplicateEntry = 1062
)

// nextWaitInterval backs off exponentially on errors and polls otherwise.
func nextWaitInterval(lastWaitInterval time.Duration, err error) time.Duration {
	next := lastWaitInterval
	if next <= 0 {
		next = minWaitInterval
	}

	if err != nil {
		next *= 2
		if next > maxWaitInterval {
			next = maxWaitInterval
		}
	} else {
		next = pollWaitInterval
	}

	next += time.Duration(rand.Int63n(int64(jitterWaitInterval)) - int64(jitterWaitInterval)/2) //nolint: gosec

	return next
}

// Mutex is a lock held in the database so that several boardsync instances
// never run the same periodic job at once. It is refreshed in the background
// while held and expires if its holder dies.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	noCopy
	key string
	db  *sql.DB

	// lock guards the refresh bookkeeping, not the database row.
	lock        sync.Mutex
	stopRefresh chan struct{}
	refreshDone chan struct{}
	conn        *sql.Conn
}

// NewMutex creates a mutex for key. The row is only written on Lock.
func NewMutex(key string, db *sql.DB) *Mutex {
	return &Mutex{key: key, db: db}
}

// tryLock makes a single attempt, taking over the row when it has expired.
func (m *Mutex) tryLock(ctx context.Context) (bool, error) {
	now := time.Now()
	query := fmt.Sprintf("INSERT INTO %s (Id, ExpireAt) VALUES (?, ?)", mutexTableName)
	_, err := m.conn.ExecContext(ctx, query, m.key, now.Add(lockTTL).Unix())
	if err == nil {
		return true, nil
	}

	var mysqlErr *ms.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDuplicateEntry {
		return false, fmt.Errorf("failed to lock mutex %q: %w", m.key, err)
	}

	mlog.Debug("Mutex is held, checking whether it expired", mlog.String("key", m.key))
	if err = m.takeOverExpired(ctx, now); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *Mutex) takeOverExpired(ctx context.Context, now time.Time) error {
	return m.withTx(ctx, func(tx *sql.Tx) error {
		expireAt, err := m.getExpireAt(ctx, tx)
		if err != nil {
			return err
		}
		if now.Unix() < expireAt {
			return errors.New("mutex is still held")
		}

		query := fmt.Sprintf("UPDATE %s SET ExpireAt = ? WHERE Id = ?", mutexTableName)
		_, err = tx.ExecContext(ctx, query, now.Add(lockTTL).Unix(), m.key)
		return err
	})
}

func (m *Mutex) refreshLock(ctx context.Context) error {
	query := fmt.Sprintf("UPDATE %s SET ExpireAt = ? WHERE Id = ?", mutexTableName)
	_, err := m.conn.ExecContext(ctx, query, time.Now().Add(lockTTL).Unix(), m.key)
	if err != nil {
		return fmt.Errorf("unable to refresh mutex %q: %w", m.key, err)
	}
	return nil
}

func (m *Mutex) getExpireAt(ctx context.Context, tx *sql.Tx) (int64, error) {
	var expireAt int64
	query := fmt.Sprintf("SELECT ExpireAt FROM %s WHERE Id = ? FOR UPDATE", mutexTableName)
	if err := tx.QueryRowContext(ctx, query, m.key).Scan(&expireAt); err != nil {
		return -1, fmt.Errorf("failed to fetch mutex from db: %w", err)
	}
	return expireAt, nil
}

func (m *Mutex) withTx(ctx context.Context, f func(tx *sql.Tx) error) error {
	tx, err := m.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(); rErr != nil && rErr != sql.ErrTxDone {
			mlog.Debug("failed to rollback transaction", mlog.Err(rErr))
		}
	}()

	if err = f(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Lock blocks until the mutex is acquired or ctx is done. The mutex is held
// only if a nil error is returned.
func (m *Mutex) Lock(ctx context.Context) error {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return err
	}
	m.conn = conn

	var waitInterval time.Duration
	for {
		select {
		case <-ctx.Done():
			m.conn.Close()
			return ctx.Err()
		case <-time.After(waitInterval):
		}

		ok, err := m.tryLock(ctx)
		if err == nil && ok {
			break
		}
		waitInterval = nextWaitInterval(waitInterval, err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(refreshInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := m.refreshLock(context.Background()); err != nil {
					mlog.Warn("Could not refresh mutex", mlog.String("key", m.key), mlog.Err(err))
					return
				}
			case <-stop:
				return
			}
		}
	}()

	m.lock.Lock()
	m.stopRefresh = stop
	m.refreshDone = done
	m.lock.Unlock()

	return nil
}

// Unlock releases the mutex. It panics if the mutex is not held.
func (m *Mutex) Unlock() error {
	m.lock.Lock()
	if m.stopRefresh == nil {
		m.lock.Unlock()
		panic("mutex has not been acquired")
	}

	close(m.stopRefresh)
	m.stopRefresh = nil
	<-m.refreshDone
	m.lock.Unlock()

	defer m.conn.Close()

	// If the delete fails the row still expires after lockTTL.
	query := fmt.Sprintf("DELETE FROM %s WHERE Id = ?", mutexTableName)
	_, err := m.conn.ExecContext(context.Background(), query, m.key)
	return err
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock() {}
