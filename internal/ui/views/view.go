package views

import (
	"fmt"
	"strings"

	"groupedit/internal/domain"
	"groupedit/internal/groupedit"
)

// FormView is the modal form as the renderer needs it
type FormView struct {
	VM               groupedit.ViewModel
	NameInput        string
	DescriptionInput string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Groups        []*domain.GroupRecord
	SelectedIndex int
	Loading       bool
	StatusMessage string
	StatusIsError bool
	HelpView      string
	Form          *FormView
	Popup         string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	listRender  *GroupListRenderer
	formRender  *FormRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		listRender:  NewGroupListRenderer(styles),
		formRender:  NewFormRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("groupedit")
	if state.Loading {
		title += " " + r.styles.Dim.Render("loading…")
	}
	content.WriteString(title)
	content.WriteString("\n")

	// title, status line and help footer
	listHeight := state.Height - 8
	if listHeight < 3 {
		listHeight = 3
	}
	content.WriteString(r.listRender.Render(state.Groups, state.SelectedIndex, state.Width-4, listHeight))

	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(style.Render(state.StatusMessage)))
	}
	if state.HelpView != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	main := r.styles.Main.Render(content.String())

	switch {
	case state.Form != nil:
		form := r.formRender.Render(state.Form.VM, state.Form.NameInput, state.Form.DescriptionInput)
		return r.popupRender.RenderPopupOverlay(main, form, state.Height, state.Width, r.styles.FormBox)
	case state.Popup != "":
		return r.popupRender.RenderPopupOverlay(main, state.Popup, state.Height, state.Width, r.styles.InfoBox)
	}
	return main
}

// GroupDetails formats a group for the details pager
func GroupDetails(g *domain.GroupRecord) string {
	var b strings.Builder
	privacy := "private"
	if g.Public {
		privacy = "public"
	}
	addAllowed := string(g.AddAllowed)
	if addAllowed == "" {
		addAllowed = "site default"
	}
	policy := string(g.AddToGroupPolicy)
	if policy == "" {
		policy = "none"
	}

	fmt.Fprintf(&b, "Group #%d\n\n", g.ID)
	fmt.Fprintf(&b, "  Name:         %s\n", g.Name)
	fmt.Fprintf(&b, "  Description:  %s\n", g.Description)
	fmt.Fprintf(&b, "  Privacy:      %s\n", privacy)
	fmt.Fprintf(&b, "  Add members:  %s\n", addAllowed)
	fmt.Fprintf(&b, "  Site policy:  %s\n", policy)
	if !g.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "  Created:      %s\n", g.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !g.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "  Updated:      %s\n", g.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
