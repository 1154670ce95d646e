package service

import (
	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/model"
)

// Lifecycle events. EventStart is applied by the answer submission pipeline
// when the first answer arrives; the rest map to caller operations.
const (
	EventStart    = "start"
	EventPause    = "pause"
	EventResume   = "resume"
	EventComplete = "complete"
	EventAbandon  = "abandon"
)

// transitions is the full lifecycle matrix. Terminal states have no row:
// nothing leaves completed or abandoned.
var transitions = map[string]map[string]string{
	model.StatusScheduled: {
		EventStart:    model.StatusInProgress,
		EventPause:    model.StatusPaused,
		EventComplete: model.StatusCompleted,
		EventAbandon:  model.StatusAbandoned,
	},
	model.StatusInProgress: {
		EventPause:    model.StatusPaused,
		EventComplete: model.StatusCompleted,
		EventAbandon:  model.StatusAbandoned,
	},
	model.StatusPaused: {
		EventResume:   model.StatusInProgress,
		EventComplete: model.StatusCompleted,
		EventAbandon:  model.StatusAbandoned,
	},
}

// Transition returns the status reached by applying event to current, or an
// invalid-transition error leaving state untouched. It is the single source
// of truth for lifecycle legality, including the implicit start triggered by
// answer submission.
func Transition(current, event string) (string, error) {
	if next, ok := transitions[current][event]; ok {
		return next, nil
	}
	return "", apperr.InvalidTransition(current, event)
}
