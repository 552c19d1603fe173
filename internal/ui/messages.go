package ui

import (
	"time"

	"groupedit/internal/domain"
	"groupedit/internal/groupedit"
)

// groupsLoadedMsg carries the result of listing the store
type groupsLoadedMsg struct {
	groups []*domain.GroupRecord
	err    error
}

// saveResultMsg returns a save outcome to the controller that started it
type saveResultMsg struct {
	ctrl   *groupedit.Controller
	result groupedit.SaveResult
}

// clearStatusMsg clears the status line if it still shows the same message
type clearStatusMsg struct {
	at time.Time
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
