package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"groupedit/internal/ui/input/types"
)

// NormalMode handles the group list
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		return m.edit(ctx)
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "n":
		return []types.Action{types.NewGroupAction{}}, true

	case "e":
		return m.edit(ctx)

	case "v":
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.ShowDetailsAction{Index: ctx.CurrentIndex()}}, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

// edit opens the form for the current row, if there is one
func (m *NormalMode) edit(ctx types.Context) ([]types.Action, bool) {
	if ctx.TotalItems() == 0 {
		return nil, false
	}
	return []types.Action{types.EditGroupAction{Index: ctx.CurrentIndex()}}, true
}
