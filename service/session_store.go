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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
	log "github.com/sirupsen/logrus"
)

// SessionStore keeps page sessions in memory only; an expired or evicted session starts over as Idle.
// The TTL slides: every lookup of a session restarts it.
type SessionStore interface {
	GetOrCreate(id string) Session
}

func NewSessionStore(capacity int, ttl time.Duration) SessionStore {
	store := &sessionStoreImpl{cache: libcache.LRU.New(capacity), ttl: ttl}
	store.cache.SetTTL(ttl)
	store.cache.RegisterOnExpired(store.onExpired)
	return store
}

type sessionStoreImpl struct {
	mutex sync.Mutex
	cache libcache.Cache
	ttl   time.Duration
}

// GetOrCreate returns the session for id, creating it under a fresh id when id is empty or not a UUID.
func (s *sessionStoreImpl) GetOrCreate(id string) Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	if value, ok := s.cache.Load(id); ok {
		// Load only updates the LRU rank, storing again restarts the TTL
		s.cache.Store(id, value)
		return value.(Session)
	}
	session := NewSession(id)
	s.cache.Store(id, session)
	log.Debugf("session %s created, %d sessions held", id, s.cache.Len())
	return session
}

// onExpired runs on the timer of an entry. The timer may have fired just before the entry was refreshed,
// a refreshed entry expires at least a full TTL later and is kept.
func (s *sessionStoreImpl) onExpired(key, _ interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if exp, ok := s.cache.Expiry(key); ok && time.Until(exp) > s.ttl/2 {
		return
	}
	s.cache.Delete(key)
	log.Debugf("session %v expired, %d sessions held", key, s.cache.Len())
}

// peek looks a session up without refreshing it.
func (s *sessionStoreImpl) peek(id string) (Session, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	value, ok := s.cache.Peek(id)
	if !ok {
		return nil, false
	}
	return value.(Session), true
}

func (s *sessionStoreImpl) size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cache.Len()
}
