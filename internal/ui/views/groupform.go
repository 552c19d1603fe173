package views

import (
	"strings"

	"groupedit/internal/domain"
	"groupedit/internal/groupedit"
)

// FormRenderer renders the create/edit group modal
type FormRenderer struct {
	styles *Styles
}

func NewFormRenderer(styles *Styles) *FormRenderer {
	return &FormRenderer{styles: styles}
}

// Render draws vm with the already rendered text inputs
func (r *FormRenderer) Render(vm groupedit.ViewModel, nameInput, descriptionInput string) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(vm.Title))
	b.WriteString("\n")

	b.WriteString(r.row(vm, groupedit.FieldName, "Name", nameInput))
	b.WriteString(r.row(vm, groupedit.FieldDescription, "Description", descriptionInput))
	b.WriteString(r.row(vm, groupedit.FieldPrivacy, "Privacy", r.radios(vm.Privacy)))
	if vm.AddPolicy != nil {
		b.WriteString(r.row(vm, groupedit.FieldAddAllowed, "Add members", r.selector(*vm.AddPolicy)))
	}
	b.WriteString("\n")
	b.WriteString(r.button(vm))

	if vm.ValidationMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.StatusError.Render(vm.ValidationMessage))
	}

	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("tab next • space toggle • ←/→ change • ctrl+s save • esc cancel"))
	return b.String()
}

func (r *FormRenderer) row(vm groupedit.ViewModel, field groupedit.Field, label, value string) string {
	style := r.styles.Label
	if vm.Focus == field {
		style = r.styles.FocusedLabel
	}
	return style.Render(label) + " " + value + "\n"
}

func (r *FormRenderer) radios(options []groupedit.RadioOption) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		mark := "( )"
		if opt.Checked {
			mark = "(•)"
		}
		text := mark + " " + opt.Label
		if opt.Selected {
			text = r.styles.Highlight.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "   ")
}

func (r *FormRenderer) selector(sel groupedit.PolicySelector) string {
	parts := make([]string, 0, len(sel.Options))
	for _, opt := range sel.Options {
		label := string(opt)
		if opt == domain.AddAllowedUnset {
			label = "default"
		}
		if opt == sel.Selected {
			parts = append(parts, r.styles.Highlight.Render("‹"+label+"›"))
		} else {
			parts = append(parts, r.styles.Dim.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (r *FormRenderer) button(vm groupedit.ViewModel) string {
	switch {
	case !vm.SaveEnabled:
		return r.styles.ButtonBusy.Render("Saving…")
	case vm.Focus == groupedit.FieldSave:
		return r.styles.ButtonFocused.Render("Save")
	default:
		return r.styles.Button.Render("Save")
	}
}
