package state

import (
	"context"
	"time"
)

// startPolling launches the refresh loop. It is a no-op when already
// running or when no credential is present.
func (s *Store) startPolling() {
	if s.clientRef() == nil {
		return
	}
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if s.pollStop != nil {
		return
	}
	s.pollStop = make(chan struct{})
	s.pollDone = make(chan struct{})
	s.refresh = make(chan struct{}, 1)
	go s.pollLoop(s.pollStop, s.pollDone, s.refresh)
}

// stopPolling shuts the refresh loop down and waits for it to exit.
func (s *Store) stopPolling() {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if s.pollStop == nil {
		return
	}
	close(s.pollStop)
	<-s.pollDone
	s.pollStop = nil
	s.pollDone = nil
	s.refresh = nil
}

// SetVisible tells the store whether the application is foregrounded.
// Ticks are skipped while hidden; becoming visible triggers one
// immediate refetch so stale state does not linger on return.
func (s *Store) SetVisible(visible bool) {
	was := s.visible.Swap(visible)
	if visible && !was {
		s.pollMu.Lock()
		refresh := s.refresh
		s.pollMu.Unlock()
		if refresh != nil {
			select {
			case refresh <- struct{}{}:
			default:
			}
		}
	}
}

// Refresh triggers an immediate refetch outside the tick schedule.
func (s *Store) Refresh() {
	s.pollMu.Lock()
	refresh := s.refresh
	s.pollMu.Unlock()
	if refresh != nil {
		select {
		case refresh <- struct{}{}:
		default:
		}
	}
}

func (s *Store) pollLoop(stop <-chan struct{}, done chan<- struct{}, refresh <-chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.visible.Load() {
				s.fetchOnce()
			}
		case <-refresh:
			s.fetchOnce()
		}
	}
}

// fetchOnce refetches the remote tree and adopts it wholesale. The
// generation captured before the request guards against a stale
// response landing after logout or teardown.
func (s *Store) fetchOnce() {
	client := s.clientRef()
	if client == nil {
		return
	}
	gen := s.gen.Load()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	st, err := client.FetchState(ctx)
	if err != nil {
		// Previous in-memory state stays authoritative until the next
		// successful poll.
		s.logger.Error("state poll failed", "err", err)
		return
	}
	if s.gen.Load() != gen {
		return
	}
	s.adopt(st)
}
