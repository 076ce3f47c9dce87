package confirm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/adapter"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
)

// Outcome is how a confirmation prompt ended
type Outcome string

const (
	Confirmed Outcome = "confirmed"
	Declined  Outcome = "declined"
	TimedOut  Outcome = "timed_out"
)

// Choice is a user's answer to a prompt
type Choice string

const (
	ChoiceYes Choice = "yes"
	ChoiceNo  Choice = "no"
)

var (
	// ErrUnknownPrompt is returned when the prompt does not exist, has expired or was never shown
	ErrUnknownPrompt = errors.New("confirmation prompt not found")
	// ErrWrongUser is returned when someone other than the prompted user answers
	ErrWrongUser = errors.New("confirmation prompt belongs to another user")
	// ErrAlreadyAnswered is returned on a second answer to the same prompt
	ErrAlreadyAnswered = errors.New("confirmation prompt already answered")
	// ErrInvalidChoice is returned when the answer is neither yes nor no
	ErrInvalidChoice = errors.New("choice must be yes or no")
)

// ParseChoice parses a case-insensitive yes/no answer
func ParseChoice(s string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(s))) {
	case ChoiceYes:
		return ChoiceYes, nil
	case ChoiceNo:
		return ChoiceNo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

// Prompt is what the user is asked to confirm
type Prompt struct {
	ID        string
	User      domain.UserID
	Offer     domain.TradeOffer
	ExpiresAt time.Time
}

// Broker keeps the in-memory state of pending confirmations.
// R is the result handed back to whoever answers a prompt.
// Pending prompts do not survive a restart; nothing in the ledger changes before an answer.
type Broker[R any] struct {
	clock   adapter.Clock
	timeout time.Duration

	mu       sync.Mutex
	sessions map[string]*Session[R]
}

// NewBroker creates a broker whose prompts time out after timeout
func NewBroker[R any](clock adapter.Clock, timeout time.Duration) *Broker[R] {
	return &Broker[R]{
		clock:    clock,
		timeout:  timeout,
		sessions: make(map[string]*Session[R]),
	}
}

// Session is a single confirmation round trip: one prompt, at most one answer, one result
type Session[R any] struct {
	broker *Broker[R]
	id     string
	user   domain.UserID

	promptOnce sync.Once
	prompt     Prompt
	prompted   chan struct{}

	answered atomic.Bool
	answers  chan Choice

	finishOnce sync.Once
	result     R
	done       chan struct{}
}

// Begin registers a new session for the user. Finish must be called once the session's work is over.
func (b *Broker[R]) Begin(user domain.UserID) *Session[R] {
	s := &Session[R]{
		broker:   b,
		id:       uuid.NewString(),
		user:     user,
		prompted: make(chan struct{}),
		answers:  make(chan Choice, 1),
		done:     make(chan struct{}),
	}

	b.mu.Lock()
	b.sessions[s.id] = s
	b.mu.Unlock()

	return s
}

// Pending returns the number of registered sessions
func (b *Broker[R]) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// Answer delivers the user's choice and waits for the session's result
func (b *Broker[R]) Answer(ctx context.Context, id string, user domain.UserID, choice Choice) (R, error) {
	var zero R

	b.mu.Lock()
	s, ok := b.sessions[id]
	b.mu.Unlock()
	if !ok {
		return zero, ErrUnknownPrompt
	}
	if s.user != user {
		return zero, ErrWrongUser
	}

	select {
	case <-s.prompted:
	default:
		return zero, ErrUnknownPrompt
	}

	if !s.answered.CompareAndSwap(false, true) {
		return zero, ErrAlreadyAnswered
	}
	s.answers <- choice

	select {
	case <-s.done:
		return s.result, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (b *Broker[R]) remove(id string) {
	b.mu.Lock()
	delete(b.sessions, id)
	b.mu.Unlock()
}

// ID returns the session's prompt ID
func (s *Session[R]) ID() string {
	return s.id
}

// Confirm shows the offer to the user and waits for an answer, the timeout or ctx.
// No ledger state is held while waiting.
func (s *Session[R]) Confirm(ctx context.Context, offer domain.TradeOffer) (Outcome, error) {
	first := false
	s.promptOnce.Do(func() {
		s.prompt = Prompt{
			ID:        s.id,
			User:      s.user,
			Offer:     offer,
			ExpiresAt: s.broker.clock.Now().Add(s.broker.timeout),
		}
		close(s.prompted)
		first = true
	})
	if !first {
		return "", fmt.Errorf("confirmation %s was already prompted", s.id)
	}

	select {
	case choice := <-s.answers:
		if choice == ChoiceYes {
			return Confirmed, nil
		}
		return Declined, nil
	case <-s.broker.clock.After(s.broker.timeout):
		logger.InfoCtx(ctx, "Confirmation timed out", zap.String("prompt_id", s.id), logger.User("user_id", s.user))
		return TimedOut, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Prompted is closed once the prompt is ready to be shown
func (s *Session[R]) Prompted() <-chan struct{} {
	return s.prompted
}

// Prompt returns the prompt. Only valid after Prompted is closed.
func (s *Session[R]) Prompt() Prompt {
	return s.prompt
}

// Finish stores the result, wakes a waiting answerer and unregisters the session
func (s *Session[R]) Finish(result R) {
	s.finishOnce.Do(func() {
		s.result = result
		s.broker.remove(s.id)
		close(s.done)
	})
}

// Done is closed once Finish has been called
func (s *Session[R]) Done() <-chan struct{} {
	return s.done
}

// Result returns the finished result. Only valid after Done is closed.
func (s *Session[R]) Result() R {
	return s.result
}
