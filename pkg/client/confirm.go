package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DialogState is a submission-confirmation dialog state.
type DialogState string

const (
	StateIdle       DialogState = "idle"
	StateSubmitting DialogState = "submitting"
	StateSuccess    DialogState = "success"
	StateError      DialogState = "error"
)

// ErrNotIdle is returned by Submit when the dialog is not in the idle
// state. Submitting is never reachable from success or error without an
// intervening Close, and a second submit while one is in flight is
// rejected outright.
var ErrNotIdle = errors.New("dialog busy")

// DefaultAutoClose is the delay before a terminal state returns to idle.
const DefaultAutoClose = 5 * time.Second

// Confirm is the reusable submit/idle/success/error state machine used
// before committing a create or update.
//
// Lifecycle: idle → submitting → {success | error} → idle, the last hop
// either via the auto-close timer or an explicit Close. Close cancels
// both the pending timer and any in-flight action, so a stale timer or a
// late result can never touch a subsequent submit cycle.
type Confirm struct {
	mu      sync.Mutex
	state   DialogState
	timeout time.Duration

	// gen increments on every Submit and Close; timer callbacks and
	// action results from an older generation are discarded.
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewConfirm creates a dialog. timeout <= 0 selects DefaultAutoClose.
func NewConfirm(timeout time.Duration) *Confirm {
	if timeout <= 0 {
		timeout = DefaultAutoClose
	}
	return &Confirm{state: StateIdle, timeout: timeout}
}

// State returns the current dialog state.
func (c *Confirm) State() DialogState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs the action and drives the state machine. It blocks until
// the action resolves. A panic inside the action is treated as an
// ordinary failure outcome. The returned error is the action's own
// failure, if any; ErrNotIdle means the action never ran.
func (c *Confirm) Submit(ctx context.Context, action func(context.Context) error) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrNotIdle
	}
	c.gen++
	gen := c.gen
	actionCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = StateSubmitting
	c.mu.Unlock()

	err := runAction(actionCtx, action)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// Closed while in flight: the dialog is gone, drop the result.
		return err
	}

	if err != nil {
		c.state = StateError
	} else {
		c.state = StateSuccess
	}
	c.timer = time.AfterFunc(c.timeout, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.state = StateIdle
		}
	})
	return err
}

// Close returns the dialog to idle immediately, cancelling the pending
// auto-close timer and any in-flight action.
func (c *Confirm) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateIdle
}

func runAction(ctx context.Context, action func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submit action panicked: %v", r)
		}
	}()
	return action(ctx)
}
