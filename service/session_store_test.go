// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"testing"
	"time"

	"github.com/Netcracker/qubership-mcp-validator-client/view"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	store := NewSessionStore(10, time.Minute).(*sessionStoreImpl)

	session := store.GetOrCreate("")
	_, err := uuid.Parse(session.Id())
	require.NoError(t, err)

	same := store.GetOrCreate(session.Id())
	assert.Same(t, session, same)
	assert.Equal(t, 1, store.size())

	found, ok := store.peek(session.Id())
	assert.True(t, ok)
	assert.Same(t, session, found)
}

func TestSessionStore_ForgedIdGetsFreshSession(t *testing.T) {
	store := NewSessionStore(10, time.Minute).(*sessionStoreImpl)

	session := store.GetOrCreate("not-a-uuid")

	assert.NotEqual(t, "not-a-uuid", session.Id())
	_, ok := store.peek("not-a-uuid")
	assert.False(t, ok)
}

func TestSessionStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store := NewSessionStore(2, time.Minute).(*sessionStoreImpl)

	first := store.GetOrCreate("")
	store.GetOrCreate("")
	store.GetOrCreate("")

	_, ok := store.peek(first.Id())
	assert.False(t, ok)
	assert.Equal(t, 2, store.size())
}

func TestSessionStore_LookupRestartsTTL(t *testing.T) {
	ttl := 300 * time.Millisecond
	store := NewSessionStore(10, ttl)

	session := store.GetOrCreate("")
	time.Sleep(200 * time.Millisecond)
	require.Same(t, session, store.GetOrCreate(session.Id()))

	ticket := session.Begin(view.FileInfo{Name: "notes.txt", Size: 5})
	time.Sleep(200 * time.Millisecond)
	require.True(t, session.Complete(ticket, view.ValidationReport{BlocksFound: 1, ValidBlocks: 1}))

	// 400ms after creation, 200ms after the last lookup
	same := store.GetOrCreate(session.Id())
	assert.Same(t, session, same)
	assert.Equal(t, view.StateResults, same.State().Kind)
}

func TestSessionStore_IdleSessionExpires(t *testing.T) {
	store := NewSessionStore(10, 100*time.Millisecond).(*sessionStoreImpl)

	session := store.GetOrCreate("")

	assert.Eventually(t, func() bool {
		return store.size() == 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.NotSame(t, session, store.GetOrCreate(session.Id()))
}
