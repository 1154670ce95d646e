package service

import (
	"testing"

	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from  string
		event string
		want  string
	}{
		{model.StatusScheduled, EventStart, model.StatusInProgress},
		{model.StatusScheduled, EventPause, model.StatusPaused},
		{model.StatusScheduled, EventComplete, model.StatusCompleted},
		{model.StatusScheduled, EventAbandon, model.StatusAbandoned},
		{model.StatusInProgress, EventPause, model.StatusPaused},
		{model.StatusInProgress, EventComplete, model.StatusCompleted},
		{model.StatusInProgress, EventAbandon, model.StatusAbandoned},
		{model.StatusPaused, EventResume, model.StatusInProgress},
		{model.StatusPaused, EventComplete, model.StatusCompleted},
		{model.StatusPaused, EventAbandon, model.StatusAbandoned},
	}
	for _, tc := range cases {
		got, err := Transition(tc.from, tc.event)
		assert.NoError(t, err, "%s + %s", tc.from, tc.event)
		assert.Equal(t, tc.want, got, "%s + %s", tc.from, tc.event)
	}
}

func TestTransitionRejected(t *testing.T) {
	cases := []struct {
		from  string
		event string
	}{
		{model.StatusScheduled, EventResume},
		{model.StatusInProgress, EventStart},
		{model.StatusInProgress, EventResume},
		{model.StatusPaused, EventStart},
		{model.StatusPaused, EventPause},
		{model.StatusCompleted, EventStart},
		{model.StatusCompleted, EventPause},
		{model.StatusCompleted, EventResume},
		{model.StatusCompleted, EventComplete},
		{model.StatusCompleted, EventAbandon},
		{model.StatusAbandoned, EventStart},
		{model.StatusAbandoned, EventPause},
		{model.StatusAbandoned, EventResume},
		{model.StatusAbandoned, EventComplete},
		{model.StatusAbandoned, EventAbandon},
	}
	for _, tc := range cases {
		next, err := Transition(tc.from, tc.event)
		assert.Empty(t, next, "%s + %s", tc.from, tc.event)
		assert.True(t, apperr.IsInvalidTransition(err), "%s + %s: got %v", tc.from, tc.event, err)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	_, err := Transition("archived", EventPause)
	assert.True(t, apperr.IsInvalidTransition(err))
}
