package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"financial-assistant/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreakerConfig struct {
	Name string
	// MaxFailures consecutive failures open a closed breaker.
	MaxFailures int
	// ResetTimeout is how long an open breaker waits before letting a trial call through.
	ResetTimeout time.Duration
	// HalfOpenMaxSucc trial successes close a half-open breaker.
	HalfOpenMaxSucc int

	// OnStateChange runs with the lock held and must not call back into the breaker.
	OnStateChange func(name string, from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            "llm",
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker guards calls to a flaky dependency.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu       sync.RWMutex
	state    models.CircuitBreakerState
	failures int
	trials   int
	openedAt time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) CircuitBreakerInterface {
	return newCircuitBreaker(cfg, time.Now)
}

func newCircuitBreaker(cfg CircuitBreakerConfig, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{cfg: cfg, now: now, state: StateClosed}
}

// Execute runs fn unless the breaker is open and records its outcome.
// A cancelled caller is not counted as a provider failure.
func Execute(cb CircuitBreakerInterface, fn func() error) error {
	if cb.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	err := fn()
	if err == nil {
		cb.RecordSuccess()
	} else if !errors.Is(err, context.Canceled) {
		cb.RecordFailure()
	}
	return err
}

// IsOpen reports whether calls are currently rejected. An open breaker whose
// reset timeout has elapsed moves to half-open and admits the call.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return false
	}
	if cb.now().Sub(cb.openedAt) <= cb.cfg.ResetTimeout {
		return true
	}
	cb.moveTo(StateHalfOpen)
	return false
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateClosed {
		cb.failures = 0
		return
	}
	if cb.state == StateHalfOpen {
		if cb.trials++; cb.trials >= cb.cfg.HalfOpenMaxSucc {
			cb.failures = 0
			cb.moveTo(StateClosed)
		}
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.openedAt = cb.now()
	if cb.state == StateClosed {
		cb.failures++
		if cb.failures < cb.cfg.MaxFailures {
			return
		}
	}
	cb.moveTo(StateOpen)
}

// moveTo switches state, clears the trial count and fires OnStateChange.
func (cb *CircuitBreaker) moveTo(next models.CircuitBreakerState) {
	prev := cb.state
	cb.state = next
	cb.trials = 0
	if prev != next && cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.cfg.Name, prev, next)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.moveTo(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
