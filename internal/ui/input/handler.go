package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"groupedit/internal/ui/input/modes"
	"groupedit/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInputs  map[string]*textinput.Model // form text fields by field key
}

func New() *Handler {
	name := textinput.New()
	name.Placeholder = "Group name"
	name.CharLimit = 100
	name.Prompt = ""

	description := textinput.New()
	description.Placeholder = "Optional"
	description.CharLimit = 500
	description.Prompt = ""

	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		textInputs: map[string]*textinput.Model{
			modes.FieldName:        &name,
			modes.FieldDescription: &description,
		},
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeGroupForm] = modes.NewGroupFormMode()
	h.modes[types.ModePopup] = modes.NewPopupMode()

	return h
}

// HandleKey routes a key to the current mode. Keys the form mode leaves
// alone are typed into the focused text input.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed {
		ti := h.focusedText(ctx)
		if ti == nil {
			return nil, nil
		}
		*ti, cmd = ti.Update(msg)
		return []types.Action{types.UpdateTextAction{Field: ctx.FormFocus()}}, cmd
	}

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}
			h.currentMode = changeMode.Mode
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	return allActions, cmd
}

func (h *Handler) focusedText(ctx types.Context) *textinput.Model {
	if h.currentMode != types.ModeGroupForm {
		return nil
	}
	return h.textInputs[ctx.FormFocus()]
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// ChangeMode switches modes directly, for transitions the model drives
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if mode != types.ModeGroupForm {
		h.BlurText()
	}
}

// TextInput returns the text input for a form field, nil for non-text fields
func (h *Handler) TextInput(field string) *textinput.Model {
	return h.textInputs[field]
}

// SetText replaces the value of a form text field
func (h *Handler) SetText(field, value string) {
	if ti := h.textInputs[field]; ti != nil {
		ti.SetValue(value)
		ti.CursorEnd()
	}
}

// FocusText focuses the input for field and blurs the rest
func (h *Handler) FocusText(field string) tea.Cmd {
	var cmd tea.Cmd
	for key, ti := range h.textInputs {
		if key == field {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return cmd
}

func (h *Handler) BlurText() {
	for _, ti := range h.textInputs {
		ti.Blur()
	}
}

// Reset returns to normal mode with empty text fields
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	for _, ti := range h.textInputs {
		ti.Reset()
		ti.Blur()
	}
}

// Update handles non-keyboard messages such as cursor blinks
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeGroupForm {
		return nil
	}
	var cmds []tea.Cmd
	for _, ti := range h.textInputs {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
