package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

const (
	DefaultMaxSessions = 1024
	DefaultSessionTTL  = 12 * time.Hour
)

// session holds one user's in-memory conversation history.
type session struct {
	mu      sync.Mutex
	history []model.Message
}

func (s *session) append(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msg)
}

func (s *session) snapshot() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.history))
	copy(out, s.history)
	return out
}

type implUseCase struct {
	l        pkgLog.Logger
	gateway  conversation.Gateway
	planRepo plan.Repository

	// Session registry with explicit retention: least recently used
	// sessions are evicted at capacity, idle ones expire after the TTL.
	sessions *expirable.LRU[string, *session]
	mu       sync.Mutex // guards session creation
}

// New creates a new conversation UseCase instance.
func New(
	l pkgLog.Logger,
	gateway conversation.Gateway,
	planRepo plan.Repository,
	maxSessions int,
	sessionTTL time.Duration,
) *implUseCase {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &implUseCase{
		l:        l,
		gateway:  gateway,
		planRepo: planRepo,
		sessions: expirable.NewLRU[string, *session](maxSessions, nil, sessionTTL),
	}
}

var _ conversation.UseCase = (*implUseCase)(nil)

// getSession returns the active session for a username, if any.
func (uc *implUseCase) getSession(username string) (*session, bool) {
	return uc.sessions.Get(username)
}

// ensureSession activates a session for the username if none exists.
func (uc *implUseCase) ensureSession(username string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if sess, ok := uc.sessions.Get(username); ok {
		return sess
	}
	sess := &session{}
	uc.sessions.Add(username, sess)
	return sess
}
