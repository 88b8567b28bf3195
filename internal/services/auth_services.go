package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/rao30/bake-house/external/bakeryapi"
	"github.com/rao30/bake-house/internal/model"
	"github.com/rao30/bake-house/internal/repository"
)

var ErrNoCredential = errors.New("missing identity credential")

// AuthService owns the process-wide session: idle → loading →
// authenticated | error, plus a passive restore path on startup. The token
// lives here and in the injected store, never in ambient state; the API
// client reads it through the TokenSource interface this type implements.
//
// Concurrent credential exchanges are not deduplicated. The generation
// counter makes the outcome deterministic instead: any network result that
// lands after a newer sign-in or sign-out is discarded.
type AuthService struct {
	API   *bakeryapi.Client
	Store repository.TokenStore

	mu        sync.Mutex
	session   model.Session
	gen       uint64
	listeners []func(model.Session)
}

func NewAuthService(store repository.TokenStore) *AuthService {
	return &AuthService{
		Store:   store,
		session: model.Session{Status: model.SessionIdle},
	}
}

// Token implements bakeryapi.TokenSource.
func (s *AuthService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

func (s *AuthService) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe registers a listener for session changes. Listeners run on the
// goroutine that changed the session.
func (s *AuthService) Subscribe(fn func(model.Session)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *AuthService) notify(sess model.Session) {
	s.mu.Lock()
	listeners := make([]func(model.Session), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(sess)
	}
}

// Restore adopts a previously persisted token if the backend still accepts
// it. A dead token is cleared and the session stays signed out; nothing is
// surfaced to the user either way.
func (s *AuthService) Restore(ctx context.Context) {
	token, err := s.Store.Load()
	if err != nil {
		log.Printf("auth: load persisted token: %v", err)
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	gen := s.gen
	s.session.Token = token
	s.mu.Unlock()

	user, err := s.API.Me(ctx)

	s.mu.Lock()
	if s.gen != gen {
		// an interactive sign-in or sign-out won the race
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.session = model.Session{Status: model.SessionIdle}
		s.mu.Unlock()
		if err := s.Store.Clear(); err != nil {
			log.Printf("auth: clear stale token: %v", err)
		}
		return
	}
	s.session = model.Session{Status: model.SessionAuthenticated, User: user, Token: token}
	sess := s.session
	s.mu.Unlock()
	s.notify(sess)
}

// SignIn exchanges a Google identity credential for a session. On failure
// the session carries the error message and stays unauthenticated.
func (s *AuthService) SignIn(ctx context.Context, credential string) (model.Session, error) {
	if credential == "" {
		return s.Session(), ErrNoCredential
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.session.Status = model.SessionLoading
	s.session.Error = ""
	s.mu.Unlock()

	result, err := s.API.GoogleLogin(ctx, credential)

	s.mu.Lock()
	if s.gen != gen {
		sess := s.session
		s.mu.Unlock()
		return sess, nil
	}
	if err != nil {
		s.session = model.Session{Status: model.SessionError, Error: err.Error()}
		sess := s.session
		s.mu.Unlock()
		s.notify(sess)
		return sess, err
	}
	user := result.User
	s.session = model.Session{Status: model.SessionAuthenticated, User: &user, Token: result.AccessToken}
	sess := s.session
	s.mu.Unlock()

	if err := s.Store.Save(result.AccessToken); err != nil {
		log.Printf("auth: persist token: %v", err)
	}
	s.notify(sess)
	return sess, nil
}

// SignOut clears the persisted token and the in-memory session. No network
// call; the backend token simply stops being used.
func (s *AuthService) SignOut() {
	s.mu.Lock()
	s.gen++
	s.session = model.Session{Status: model.SessionIdle}
	s.mu.Unlock()

	if err := s.Store.Clear(); err != nil {
		log.Printf("auth: clear token: %v", err)
	}
	s.notify(model.Session{Status: model.SessionIdle})
}
