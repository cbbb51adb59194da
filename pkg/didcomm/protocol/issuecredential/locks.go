/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import "sync"

// threadLocks serializes work per thread id. An entry exists only while at
// least one goroutine holds or waits for its lock; the refcount lets entries
// be dropped when the last holder releases.
type threadLocks struct {
	mu      sync.Mutex
	entries map[string]*threadLock
}

type threadLock struct {
	refs int
	mu   sync.Mutex
}

func newThreadLocks() *threadLocks {
	return &threadLocks{entries: make(map[string]*threadLock)}
}

func (l *threadLocks) Lock(threadID string) {
	l.mu.Lock()

	entry, ok := l.entries[threadID]
	if !ok {
		entry = &threadLock{}
		l.entries[threadID] = entry
	}

	entry.refs++

	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *threadLocks) Unlock(threadID string) {
	l.mu.Lock()

	entry := l.entries[threadID]

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, threadID)
	}

	l.mu.Unlock()

	entry.mu.Unlock()
}
