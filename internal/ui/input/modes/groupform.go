package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"groupedit/internal/ui/input/types"
)

// Form field keys as reported by Context.FormFocus
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrivacy     = "public"
	FieldAddAllowed  = "addAllowed"
	FieldSave        = "save"
)

// IsTextField reports whether keys for field go to a text input
func IsTextField(field string) bool {
	return field == FieldName || field == FieldDescription
}

// GroupFormMode handles the create/edit group modal.
// Keys it does not consume are typed into the focused text field.
type GroupFormMode struct{}

func NewGroupFormMode() *GroupFormMode {
	return &GroupFormMode{}
}

func (m *GroupFormMode) Name() string {
	return "group form"
}

func (m *GroupFormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *GroupFormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *GroupFormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	focus := ctx.FormFocus()

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return []types.Action{types.CancelFormAction{}}, true

	case "tab", "down":
		return []types.Action{types.FocusAction{Delta: 1}}, true

	case "shift+tab", "up":
		return []types.Action{types.FocusAction{Delta: -1}}, true

	case "ctrl+s":
		return []types.Action{types.SubmitFormAction{}}, true

	case "enter":
		switch focus {
		case FieldSave:
			return []types.Action{types.SubmitFormAction{}}, true
		case FieldPrivacy:
			return []types.Action{types.TogglePrivacyAction{}}, true
		case FieldAddAllowed:
			return []types.Action{types.CyclePolicyAction{Delta: 1}}, true
		}
		return []types.Action{types.FocusAction{Delta: 1}}, true

	case " ":
		switch focus {
		case FieldSave:
			return []types.Action{types.SubmitFormAction{}}, true
		case FieldPrivacy:
			return []types.Action{types.TogglePrivacyAction{}}, true
		case FieldAddAllowed:
			return []types.Action{types.CyclePolicyAction{Delta: 1}}, true
		}

	case "left", "right", "h", "l":
		delta := 1
		if msg.String() == "left" || msg.String() == "h" {
			delta = -1
		}
		switch focus {
		case FieldPrivacy:
			return []types.Action{types.TogglePrivacyAction{}}, true
		case FieldAddAllowed:
			if ctx.FormHasSelector() {
				return []types.Action{types.CyclePolicyAction{Delta: delta}}, true
			}
		}
	}

	// Anything else is text for the focused input
	return nil, false
}
