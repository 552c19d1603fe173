package groupedit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"groupedit/internal/domain"
)

func TestBuildViewModelTitles(t *testing.T) {
	require.Equal(t, "Create group", BuildViewModel(nil, domain.GroupDraft{}, domain.Capabilities{}, FormState{}).Title)
	require.Equal(t, "Edit group", BuildViewModel(&domain.GroupRecord{ID: 1}, domain.GroupDraft{}, domain.Capabilities{}, FormState{}).Title)
}

func TestBuildViewModelDoesNotShareRadios(t *testing.T) {
	form := FormState{Privacy: privacyOptions(true)}
	vm := BuildViewModel(nil, domain.GroupDraft{}, domain.Capabilities{}, form)
	vm.Privacy[0].Checked = true

	require.False(t, form.Privacy[0].Checked)
}

func TestFocusOrder(t *testing.T) {
	user := BuildViewModel(nil, domain.GroupDraft{}, domain.Capabilities{}, FormState{})
	require.Equal(t, []Field{FieldName, FieldDescription, FieldPrivacy, FieldSave}, user.FocusOrder())

	record := &domain.GroupRecord{ID: 1, AddToGroupPolicy: domain.PolicyYesAdmin}
	admin := BuildViewModel(record, domain.GroupDraft{}, domain.Capabilities{IsAdministrator: true}, FormState{})
	require.Equal(t, []Field{FieldName, FieldDescription, FieldPrivacy, FieldAddAllowed, FieldSave}, admin.FocusOrder())

	adminCreate := BuildViewModel(nil, domain.GroupDraft{}, domain.Capabilities{IsAdministrator: true}, FormState{})
	require.Equal(t, user.FocusOrder(), adminCreate.FocusOrder())
}

func TestFieldFromKey(t *testing.T) {
	f, ok := FieldFromKey("name")
	require.True(t, ok)
	require.Equal(t, FieldName, f)

	f, ok = FieldFromKey("addAllowed")
	require.True(t, ok)
	require.Equal(t, FieldAddAllowed, f)

	_, ok = FieldFromKey("")
	require.False(t, ok)
	_, ok = FieldFromKey("save")
	require.False(t, ok, "the save button is not a data field")
}
