package ui

import (
	"groupedit/internal/domain"
	"groupedit/internal/groupedit"
	"groupedit/internal/ui/input"
	"groupedit/internal/ui/input/modes"
)

// groupForm is the terminal ModalHost for one dialog controller.
// The text inputs belong to the input handler; the form only seeds them.
type groupForm struct {
	input   *input.Handler
	ctrl    *groupedit.Controller
	vm      groupedit.ViewModel
	visible bool
	onHide  func()
}

func newGroupForm(h *input.Handler, onHide func()) *groupForm {
	return &groupForm{input: h, onHide: onHide}
}

// Show draws vm. Text values are only copied in on the first show so later
// updates never clobber what the user has typed.
func (f *groupForm) Show(vm groupedit.ViewModel) {
	if !f.visible {
		f.input.SetText(modes.FieldName, vm.Name)
		f.input.SetText(modes.FieldDescription, vm.Description)
	}
	f.vm = vm
	f.visible = true
	f.input.FocusText(string(vm.Focus))
}

func (f *groupForm) Hide() {
	if !f.visible {
		return
	}
	f.visible = false
	f.input.BlurText()
	if f.onHide != nil {
		f.onHide()
	}
}

// values reads the form as the user left it
func (f *groupForm) values() groupedit.FormValues {
	v := groupedit.FormValues{
		Name:        f.text(modes.FieldName),
		Description: f.text(modes.FieldDescription),
		Public:      f.vm.Public,
	}
	if f.vm.AddPolicy != nil {
		sel := f.vm.AddPolicy.Selected
		v.AddAllowed = &sel
	}
	return v
}

func (f *groupForm) text(field string) string {
	if ti := f.input.TextInput(field); ti != nil {
		return ti.Value()
	}
	return ""
}

// nextFocus returns the field delta steps away from the focused one, wrapping
func (f *groupForm) nextFocus(delta int) groupedit.Field {
	order := f.vm.FocusOrder()
	idx := 0
	for i, field := range order {
		if field == f.vm.Focus {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(order) + len(order)) % len(order)
	return order[idx]
}

// togglePrivacy returns the radio value that is not currently checked
func (f *groupForm) togglePrivacy() string {
	for _, opt := range f.vm.Privacy {
		if !opt.Checked {
			return opt.Value
		}
	}
	return groupedit.PrivacyPrivate
}

// cyclePolicy steps through the selector options. From an unset value it
// lands on the first or last option depending on direction.
func (f *groupForm) cyclePolicy(delta int) (domain.AddAllowed, bool) {
	sel := f.vm.AddPolicy
	if sel == nil || len(sel.Options) == 0 {
		return domain.AddAllowedUnset, false
	}
	n := len(sel.Options)
	idx := -1
	for i, opt := range sel.Options {
		if opt == sel.Selected {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = n - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+delta)%n + n) % n
	}
	return sel.Options[idx], true
}
