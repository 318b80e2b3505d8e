package relay

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sos-relay/models"
)

// TransferSession accumulates the chunks of one in-progress transfer.
type TransferSession struct {
	TransferID    string
	Protocol      string
	ExpectedCount int
	ReceivedParts map[int]models.Replica
	UpdatedAt     time.Time

	// order keeps part indexes in the order they were recorded.
	order []int
}

// AccumulateResult reports the state of a transfer after one chunk.
type AccumulateResult struct {
	// Complete is set once every part arrived. Collection then holds the
	// reassembled records and the session has been disposed of.
	Complete   bool
	Collection models.Replica

	// Duplicate is set when the part had already been recorded.
	Duplicate bool

	TransferID string
	Protocol   string
	Received   int
	Expected   int
}

// Sessions is an in-memory store of transfer sessions keyed by transfer id.
// It is safe for concurrent use.
//
// Ids of completed transfers are remembered until they expire, so scanning
// a code again after its transfer completed is reported as a duplicate
// instead of opening a new session.
type Sessions struct {
	mu        sync.Mutex
	sessions  map[string]*TransferSession
	completed map[string]completedTransfer
	now       func() time.Time
}

type completedTransfer struct {
	expected int
	at       time.Time
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{
		sessions:  make(map[string]*TransferSession),
		completed: make(map[string]completedTransfer),
		now:       time.Now,
	}
}

// Accumulate records chunk in its transfer session.
//
// A part that was already recorded is ignored. When the number of distinct
// parts reaches the chunk's Total, the parts are unioned in the order they
// were recorded (a later part wins on key collision), the session is removed
// and the collection is returned. A single-part chunk completes at once and
// never creates a session.
//
// A chunk with an invalid address, or one whose Total or protocol disagrees
// with its session, is rejected and changes nothing.
func (s *Sessions) Accumulate(chunk models.Chunk) (AccumulateResult, error) {
	if chunk.Total < 1 || chunk.Part < 1 || chunk.Part > chunk.Total {
		return AccumulateResult{}, fmt.Errorf("%w: part %d of %d", ErrMalformedPayload, chunk.Part, chunk.Total)
	}

	if chunk.Total == 1 {
		return AccumulateResult{
			Complete:   true,
			Collection: chunk.Data.Clone(),
			TransferID: chunk.TransferID,
			Protocol:   chunk.Type,
			Received:   1,
			Expected:   1,
		}, nil
	}
	if chunk.TransferID == "" {
		return AccumulateResult{}, fmt.Errorf("%w: multi-part chunk without transfer id", ErrMalformedPayload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if done, ok := s.completed[chunk.TransferID]; ok {
		return AccumulateResult{
			Duplicate:  true,
			TransferID: chunk.TransferID,
			Protocol:   chunk.Type,
			Received:   done.expected,
			Expected:   done.expected,
		}, nil
	}

	session, ok := s.sessions[chunk.TransferID]
	if ok && (session.ExpectedCount != chunk.Total || session.Protocol != chunk.Type) {
		return AccumulateResult{}, fmt.Errorf("%w: transfer %s expects %d %s parts, got part of %d %s",
			ErrTransferMismatch, chunk.TransferID, session.ExpectedCount, session.Protocol, chunk.Total, chunk.Type)
	}
	if !ok {
		session = &TransferSession{
			TransferID:    chunk.TransferID,
			Protocol:      chunk.Type,
			ExpectedCount: chunk.Total,
			ReceivedParts: make(map[int]models.Replica, chunk.Total),
		}
		s.sessions[chunk.TransferID] = session
	}

	res := AccumulateResult{
		TransferID: session.TransferID,
		Protocol:   session.Protocol,
		Expected:   session.ExpectedCount,
	}

	if _, seen := session.ReceivedParts[chunk.Part]; seen {
		res.Duplicate = true
		res.Received = len(session.ReceivedParts)
		return res, nil
	}

	session.ReceivedParts[chunk.Part] = chunk.Data.Clone()
	session.order = append(session.order, chunk.Part)
	session.UpdatedAt = s.now()
	res.Received = len(session.ReceivedParts)

	if res.Received < session.ExpectedCount {
		return res, nil
	}

	collection := make(models.Replica)
	for _, part := range session.order {
		for key, rec := range session.ReceivedParts[part] {
			collection[key] = rec
		}
	}
	delete(s.sessions, chunk.TransferID)
	s.completed[chunk.TransferID] = completedTransfer{expected: session.ExpectedCount, at: session.UpdatedAt}

	res.Complete = true
	res.Collection = collection
	return res, nil
}

// Progress returns the received and expected part counts of a transfer.
func (s *Sessions) Progress(transferID string) (received, expected int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[transferID]
	if !ok {
		return 0, 0, false
	}
	return len(session.ReceivedParts), session.ExpectedCount, true
}

// Cancel discards a transfer session. It reports whether one existed.
func (s *Sessions) Cancel(transferID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[transferID]
	delete(s.sessions, transferID)
	delete(s.completed, transferID)
	return ok
}

// Forget drops the completion marker of transferID, so a transfer whose
// records could not be stored is assembled again from a fresh scan.
func (s *Sessions) Forget(transferID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.completed, transferID)
}

// Reset discards every session.
func (s *Sessions) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*TransferSession)
	s.completed = make(map[string]completedTransfer)
}

// Expire discards sessions that have not received a part for longer than
// ttl and returns how many were removed. Completed transfer ids older than
// ttl are forgotten as well.
func (s *Sessions) Expire(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	for id, done := range s.completed {
		if done.at.Before(cutoff) {
			delete(s.completed, id)
		}
	}
	return removed
}

// Len returns the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
