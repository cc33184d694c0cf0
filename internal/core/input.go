// Package core provides the input and runtime types shared by the game loop
// and the drivers around it. It has no external dependencies so game logic
// stays pure and testable.
package core

import (
	"context"
	"errors"
)

// Action represents a semantic player action, abstracted from physical key presses.
// The set is closed: presentation layers decide which Action a key maps to,
// games never parse strings.
type Action int

const (
	ActionNone    Action = iota
	ActionNorth          // Up arrow - tilt toward row 0
	ActionEast           // Right arrow - tilt toward the last column
	ActionSouth          // Down arrow - tilt toward the last row
	ActionWest           // Left arrow - tilt toward column 0
	ActionNewGame        // N - abandon the current game and start over
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionEast:
		return "East"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove returns true for the four tilt actions.
func (a Action) IsMove() bool {
	return a >= ActionNorth && a <= ActionWest
}

// Input supplies the next player action. Next blocks until an action is
// available or ctx is done.
type Input interface {
	Next(ctx context.Context) (Action, error)
}

// InputFunc adapts a plain function to the Input interface.
type InputFunc func(ctx context.Context) (Action, error)

// Next calls f(ctx).
func (f InputFunc) Next(ctx context.Context) (Action, error) {
	return f(ctx)
}

// ErrInputClosed is returned by QueueInput after Close once the queue is drained.
var ErrInputClosed = errors.New("core: input closed")

// QueueInput marshals actions produced on other goroutines (key handlers,
// stdin readers) onto the single goroutine that runs the game loop.
type QueueInput struct {
	ch chan Action
}

// NewQueueInput creates a queue buffering up to size pending actions.
func NewQueueInput(size int) *QueueInput {
	if size < 0 {
		size = 0
	}
	return &QueueInput{ch: make(chan Action, size)}
}

// Push enqueues an action, blocking while the buffer is full.
// It returns false if ctx is done before the action was accepted.
func (q *QueueInput) Push(ctx context.Context, a Action) bool {
	select {
	case q.ch <- a:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close marks the end of input. Must be called by the producer only.
func (q *QueueInput) Close() {
	close(q.ch)
}

// Next returns the oldest queued action.
func (q *QueueInput) Next(ctx context.Context) (Action, error) {
	select {
	case a, ok := <-q.ch:
		if !ok {
			return ActionNone, ErrInputClosed
		}
		return a, nil
	case <-ctx.Done():
		return ActionNone, ctx.Err()
	}
}
