package gcalendar

import (
	"context"
	"sync"
)

// ClientFactory builds an authorized Client.
type ClientFactory func(ctx context.Context) (*Client, error)

// Session owns the process-wide calendar client. The client is built on first use, reused by
// every caller and rebuilt after Invalidate. Initialization runs under a lock so concurrent first
// callers share one client.
type Session struct {
	mu      sync.Mutex
	client  *Client
	factory ClientFactory
}

// NewSession creates a Session that loads credentials from credentialsPath and, for OAuth
// client credentials, the stored token at tokenPath.
func NewSession(credentialsPath, tokenPath string) *Session {
	return NewSessionFromFactory(func(ctx context.Context) (*Client, error) {
		// Refreshes outlive the request that triggered initialization.
		return NewClientFromCredentialsFile(context.WithoutCancel(ctx), credentialsPath, tokenPath)
	})
}

// NewSessionFromFactory creates a Session over a custom client factory.
func NewSessionFromFactory(factory ClientFactory) *Session {
	return &Session{factory: factory}
}

// Client returns the shared client, initializing it if needed.
func (s *Session) Client(ctx context.Context) (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	c, err := s.factory(ctx)
	if err != nil {
		return nil, err
	}
	s.client = c
	return c, nil
}

// Invalidate drops the shared client so the next call re-reads credentials.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.client = nil
	s.mu.Unlock()
}

// ListEvents lists events with the shared client.
func (s *Session) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	c, err := s.Client(ctx)
	if err != nil {
		return nil, err
	}
	events, err := c.ListEvents(ctx, req)
	s.checkAuth(err)
	return events, err
}

// CreateEvent creates an event with the shared client.
func (s *Session) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	c, err := s.Client(ctx)
	if err != nil {
		return nil, err
	}
	ev, err := c.CreateEvent(ctx, req)
	s.checkAuth(err)
	return ev, err
}

// Ping checks the shared client against the calendar list.
func (s *Session) Ping(ctx context.Context) error {
	c, err := s.Client(ctx)
	if err != nil {
		return err
	}
	err = c.Ping(ctx)
	s.checkAuth(err)
	return err
}

func (s *Session) checkAuth(err error) {
	if IsAuthError(err) {
		s.Invalidate()
	}
}
