package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/tripdash/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows requests to pass through
	StateClosed State = iota
	// StateOpen blocks requests and returns immediately
	StateOpen
	// StateHalfOpen allows a limited number of requests to test the upstream
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Errors
var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker configuration
type Config struct {
	Name             string                                  // Name of the circuit breaker for logging
	MaxRequests      uint32                                  // Max requests allowed in half-open state
	Interval         time.Duration                           // Interval to clear counters in closed state
	Timeout          time.Duration                           // Time spent open before probing again
	FailureThreshold uint32                                  // Consecutive failures that open the circuit
	SuccessThreshold uint32                                  // Successes in half-open needed to close
	OnStateChange    func(name string, from State, to State) // State change callback
	IsFailure        func(err error) bool                    // Decides whether an error counts as failure
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 1,
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
	}
}

// Counts holds the counters for circuit breaker
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// Stats is a JSON friendly view of a breaker
type Stats struct {
	Name                string `json:"name"`
	State               string `json:"state"`
	TotalRequests       uint32 `json:"total_requests"`
	TotalFailures       uint32 `json:"total_failures"`
	ConsecutiveFailures uint32 `json:"consecutive_failures"`
}

// CircuitBreaker implements the circuit breaker pattern
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger

	mutex  sync.RWMutex
	state  State
	counts Counts
	expiry time.Time
	now    func() time.Time
}

// New creates a new circuit breaker. A nil logger falls back to the
// global logger.
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if config.IsFailure == nil {
		config.IsFailure = DefaultConfig(config.Name).IsFailure
	}
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	if config.SuccessThreshold == 0 {
		config.SuccessThreshold = 1
	}

	cb := &CircuitBreaker{
		config: config,
		logger: l,
		state:  StateClosed,
		now:    time.Now,
	}
	cb.expiry = cb.now().Add(config.Interval)

	return cb
}

// Execute runs fn with circuit breaker protection
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.afterRequest(err)

	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	now := cb.now()

	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 && cb.expiry.Before(now) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}

	case StateOpen:
		if !cb.expiry.Before(now) {
			return ErrCircuitBreakerOpen
		}
		cb.setState(StateHalfOpen)
		cb.counts = Counts{}

	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}

	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) afterRequest(err error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if cb.config.IsFailure(err) {
		cb.counts.TotalFailures++
		cb.counts.ConsecutiveFailures++
		cb.counts.ConsecutiveSuccesses = 0

		if (cb.state == StateClosed && cb.counts.ConsecutiveFailures >= cb.config.FailureThreshold) ||
			cb.state == StateHalfOpen {
			cb.setState(StateOpen)
			cb.expiry = cb.now().Add(cb.config.Timeout)
		}
		return
	}

	cb.counts.TotalSuccesses++
	cb.counts.ConsecutiveSuccesses++
	cb.counts.ConsecutiveFailures = 0

	if cb.state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.config.SuccessThreshold {
		cb.setState(StateClosed)
		cb.expiry = cb.now().Add(cb.config.Interval)
	}
}

// setState must be called with the mutex held
func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state

	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Uint32("total_failures", cb.counts.TotalFailures),
		logger.Uint32("consecutive_failures", cb.counts.ConsecutiveFailures))

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, prev, state)
	}
}

// State returns the current state of the circuit breaker. An open breaker
// whose timeout has elapsed reports HALF_OPEN, since the next request will
// be let through.
func (cb *CircuitBreaker) State() State {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	return cb.currentState(cb.now())
}

// currentState must be called with the mutex held
func (cb *CircuitBreaker) currentState(now time.Time) State {
	if cb.state == StateOpen && cb.expiry.Before(now) {
		return StateHalfOpen
	}
	return cb.state
}

// Stats returns a snapshot for health reporting
func (cb *CircuitBreaker) Stats() Stats {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	return Stats{
		Name:                cb.config.Name,
		State:               cb.currentState(cb.now()).String(),
		TotalRequests:       cb.counts.Requests,
		TotalFailures:       cb.counts.TotalFailures,
		ConsecutiveFailures: cb.counts.ConsecutiveFailures,
	}
}
