package proxy

import (
	"hash/fnv"
	"sync"
	"time"
)

// sessionShards is the shard count for the SEID affinity table. Per
// spec.md §5, the table MUST be concurrent-read/concurrent-write with
// no single lock covering the whole table; sharding by SEID hash gives
// that without a lock-free map implementation.
const sessionShards = 32

// SessionEntry is one SEID's affinity record: which backend owns the
// session, its lifecycle timestamps, and a lightweight QoS tag a host
// can use for qos_based routing once that strategy gains real logic.
type SessionEntry struct {
	SEID         uint64
	BackendAddr  string
	CreatedAt    time.Time
	LastActivity time.Time
	QoSProfile   string
}

type sessionShard struct {
	mu      sync.RWMutex
	entries map[uint64]*SessionEntry
}

// SessionTable is the concurrent SEID -> BackendAddress affinity map.
type SessionTable struct {
	shards [sessionShards]*sessionShard
}

// NewSessionTable builds an empty, ready-to-use SessionTable.
func NewSessionTable() *SessionTable {
	t := &SessionTable{}
	for i := range t.shards {
		t.shards[i] = &sessionShard{entries: make(map[uint64]*SessionEntry)}
	}
	return t
}

func (t *SessionTable) shardFor(seid uint64) *sessionShard {
	h := fnv.New32a()
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(seid >> (8 * i))
	}
	h.Write(b[:])
	return t.shards[h.Sum32()%sessionShards]
}

// Insert records a new SEID -> backend mapping, called once a Session
// Establishment Response carries the UPF-assigned F-SEID.
func (t *SessionTable) Insert(seid uint64, backendAddr, qosProfile string) {
	s := t.shardFor(seid)
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[seid] = &SessionEntry{
		SEID:         seid,
		BackendAddr:  backendAddr,
		CreatedAt:    now,
		LastActivity: now,
		QoSProfile:   qosProfile,
	}
}

// Lookup returns the backend address mapped to seid, touching its
// last-activity timestamp, and whether an entry existed at all.
func (t *SessionTable) Lookup(seid uint64) (string, bool) {
	s := t.shardFor(seid)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[seid]
	if !ok {
		return "", false
	}
	e.LastActivity = time.Now()
	return e.BackendAddr, true
}

// Delete removes seid's mapping, called on session deletion response.
// It returns the backend address the session was mapped to, if any, so
// the caller can release the backend's session count.
func (t *SessionTable) Delete(seid uint64) (string, bool) {
	s := t.shardFor(seid)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[seid]
	if !ok {
		return "", false
	}
	delete(s.entries, seid)
	return e.BackendAddr, true
}

// ExpireIdle removes every entry whose last activity is older than
// timeout and returns their backend addresses, for releasing pool
// session counts. Sessions on an Unhealthy backend are never
// auto-migrated (spec.md §4.8); this only reclaims idle entries.
func (t *SessionTable) ExpireIdle(timeout time.Duration) []string {
	cutoff := time.Now().Add(-timeout)
	var released []string
	for _, s := range t.shards {
		s.mu.Lock()
		for seid, e := range s.entries {
			if e.LastActivity.Before(cutoff) {
				released = append(released, e.BackendAddr)
				delete(s.entries, seid)
			}
		}
		s.mu.Unlock()
	}
	return released
}

// Len returns the total number of tracked sessions across all shards.
func (t *SessionTable) Len() int {
	total := 0
	for _, s := range t.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}
