// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextWaitInterval(t *testing.T) {
	jitter := jitterWaitInterval / 2

	next := nextWaitInterval(0, nil)
	require.InDelta(t, float64(pollWaitInterval), float64(next), float64(jitter))

	next = nextWaitInterval(minWaitInterval, errors.New("boom"))
	require.InDelta(t, float64(2*minWaitInterval), float64(next), float64(jitter))

	next = nextWaitInterval(maxWaitInterval, errors.New("boom"))
	require.InDelta(t, float64(maxWaitInterval), float64(next), float64(jitter))
}

func TestMutex(t *testing.T) {
	store := getTestSQLStore(t)

	t.Run("Should lock and unlock", func(t *testing.T) {
		defer truncateTable(t, store, mutexTableName)
		m := store.Mutex("sync-board")
		require.NoError(t, m.Lock(context.Background()))
		require.NoError(t, m.Unlock())
	})

	t.Run("Should block a second holder until the context expires", func(t *testing.T) {
		defer truncateTable(t, store, mutexTableName)
		first := store.Mutex("sync-board")
		require.NoError(t, first.Lock(context.Background()))
		defer func() { require.NoError(t, first.Unlock()) }()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		second := store.Mutex("sync-board")
		require.ErrorIs(t, second.Lock(ctx), context.DeadlineExceeded)
	})

	t.Run("Should panic when unlocking a mutex that is not held", func(t *testing.T) {
		m := NewMutex("never-locked", store.db)
		require.Panics(t, func() { _ = m.Unlock() })
	})
}
