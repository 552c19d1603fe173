package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Group list actions
type NewGroupAction struct{}

func (a NewGroupAction) Type() string { return "new_group" }

type EditGroupAction struct {
	Index int
}

func (a EditGroupAction) Type() string { return "edit_group" }

type ShowDetailsAction struct {
	Index int
}

func (a ShowDetailsAction) Type() string { return "show_details" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ClosePopupAction struct{}

func (a ClosePopupAction) Type() string { return "close_popup" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

// Form actions
type FocusAction struct {
	Delta int // +1 next, -1 previous
}

func (a FocusAction) Type() string { return "focus" }

type TogglePrivacyAction struct{}

func (a TogglePrivacyAction) Type() string { return "toggle_privacy" }

type CyclePolicyAction struct {
	Delta int
}

func (a CyclePolicyAction) Type() string { return "cycle_policy" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type CancelFormAction struct{}

func (a CancelFormAction) Type() string { return "cancel_form" }

// UpdateTextAction reports that a key went to the focused text field
type UpdateTextAction struct {
	Field string
}

func (a UpdateTextAction) Type() string { return "update_text" }
