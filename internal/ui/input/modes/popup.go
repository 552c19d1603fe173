package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"groupedit/internal/ui/input/types"
)

// PopupMode is active while an inline help or details popup is shown
type PopupMode struct{}

func NewPopupMode() *PopupMode {
	return &PopupMode{}
}

func (m *PopupMode) Name() string {
	return "popup"
}

func (m *PopupMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PopupMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ClosePopupAction{}}
}

func (m *PopupMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "enter", "?", "v":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, true
}
