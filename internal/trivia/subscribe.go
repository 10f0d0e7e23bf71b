package trivia

import (
	"github.com/KirkDiggler/quickburst/internal/models"
)

// Subscribe returns a channel that receives a snapshot after every state change,
// and a cancel func that unregisters and closes it. Sends never block: when the
// buffer is full the snapshot is dropped for that subscriber. Subscribing to a
// closed session returns an already closed channel.
func (s *Session) Subscribe(buffer int) (<-chan models.GameState, func()) {
	if buffer < 1 {
		buffer = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan models.GameState, buffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSubscriberID
	s.nextSubscriberID++
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Close may already have released it
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Close releases every subscriber and closes Done. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	close(s.done)
}

// Done is closed once the session has been closed
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// publishLocked fans a snapshot out to subscribers without blocking
func (s *Session) publishLocked(state models.GameState) {
	for _, ch := range s.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}
