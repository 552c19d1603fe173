package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groupedit/internal/domain"
	"groupedit/internal/groupedit"
)

func TestFormRendersSelectorOnlyWhenPresent(t *testing.T) {
	r := NewFormRenderer(NewStyles())
	vm := groupedit.BuildViewModel(&domain.GroupRecord{ID: 1, Name: "a"}, domain.GroupDraft{Name: "a"}, domain.Capabilities{}, groupedit.FormState{SaveEnabled: true})

	out := r.Render(vm, "a", "")
	assert.Contains(t, out, "Edit group")
	assert.NotContains(t, out, "Add members")

	record := &domain.GroupRecord{ID: 1, AddToGroupPolicy: domain.PolicyNoAdmin}
	admin := groupedit.BuildViewModel(record, domain.GroupDraft{AddAllowedPolicy: domain.AddAllowedAdministrator},
		domain.Capabilities{IsAdministrator: true}, groupedit.FormState{SaveEnabled: true})
	out = r.Render(admin, "", "")
	assert.Contains(t, out, "Add members")
	assert.Contains(t, out, "‹administrator›")
}

func TestFormShowsBusyButtonAndMessage(t *testing.T) {
	r := NewFormRenderer(NewStyles())
	vm := groupedit.BuildViewModel(nil, domain.GroupDraft{}, domain.Capabilities{},
		groupedit.FormState{ValidationMessage: "Name is required"})

	out := r.Render(vm, "", "")
	assert.Contains(t, out, "Saving…")
	assert.Contains(t, out, "Name is required")
}

func TestGroupListEmptyAndScrolled(t *testing.T) {
	r := NewGroupListRenderer(NewStyles())
	assert.Contains(t, r.Render(nil, 0, 80, 5), "No groups yet")

	var groups []*domain.GroupRecord
	for i := int64(1); i <= 10; i++ {
		groups = append(groups, &domain.GroupRecord{ID: i, Name: "g"})
	}
	out := r.Render(groups, 9, 80, 3)
	assert.Contains(t, out, "10 ")
	assert.NotContains(t, out, "\n  1 ")
}
