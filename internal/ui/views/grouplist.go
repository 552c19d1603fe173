package views

import (
	"fmt"
	"strings"

	"groupedit/internal/domain"
)

// GroupListRenderer renders the group listing
type GroupListRenderer struct {
	styles *Styles
}

func NewGroupListRenderer(styles *Styles) *GroupListRenderer {
	return &GroupListRenderer{styles: styles}
}

// Render draws at most height rows, scrolled so the selected row is visible
func (r *GroupListRenderer) Render(groups []*domain.GroupRecord, selected, width, height int) string {
	if len(groups) == 0 {
		return r.styles.Dim.Render("No groups yet. Press n to create one.")
	}

	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > len(groups) {
		end = len(groups)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(groups[i], i == selected, width))
	}
	if end < len(groups) {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("  … %d more", len(groups)-end)))
	}
	return strings.Join(lines, "\n")
}

func (r *GroupListRenderer) renderRow(g *domain.GroupRecord, selected bool, width int) string {
	badge := "private"
	if g.Public {
		badge = "public"
	}
	if g.AddAllowed != domain.AddAllowedUnset {
		badge += ", " + string(g.AddAllowed) + "s add"
	}

	name := g.Name
	desc := ""
	if g.Description != "" {
		desc = " " + r.styles.Dim.Render(truncate(g.Description, width/2))
	}
	row := fmt.Sprintf("%-4d %s %s%s", g.ID, name, r.styles.Badge.Render("["+badge+"]"), desc)

	if selected {
		return r.styles.SelectionBg.Render(r.styles.Highlight.Render("> ") + row)
	}
	return "  " + row
}
