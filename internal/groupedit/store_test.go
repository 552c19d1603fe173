package groupedit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"groupedit/internal/domain"
	"groupedit/internal/groupedit"
	"groupedit/internal/groups"
)

type nopHost struct{ last groupedit.ViewModel }

func (h *nopHost) Show(vm groupedit.ViewModel) { h.last = vm }
func (h *nopHost) Hide()                       {}

func TestAdminRenameKeepsStoredAddAllowed(t *testing.T) {
	ctx := context.Background()
	store := groups.NewMemoryGroupStore(domain.PolicyUnset)

	admin := domain.AddAllowedAdministrator
	rec, err := store.Create(ctx, domain.GroupFields{Name: "g", AddAllowed: &admin})
	require.NoError(t, err)

	host := &nopHost{}
	ctrl := groupedit.New(rec, domain.Capabilities{IsAdministrator: true}, store, host, nil)
	vm := ctrl.Render()
	ctrl.Opened()
	require.Nil(t, vm.AddPolicy)

	cmd := ctrl.Submit(ctx, groupedit.FormValues{Name: "renamed"})
	require.NotNil(t, cmd)
	require.True(t, ctrl.HandleResult(cmd()))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Name)
	require.Equal(t, domain.AddAllowedAdministrator, got.AddAllowed)
}

func TestAdminEditWithRecognizedPolicyStoresSelection(t *testing.T) {
	ctx := context.Background()
	store := groups.NewMemoryGroupStore(domain.PolicyYesMod)

	rec, err := store.Create(ctx, domain.GroupFields{Name: "g"})
	require.NoError(t, err)

	ctrl := groupedit.New(rec, domain.Capabilities{IsAdministrator: true}, store, &nopHost{}, nil)
	vm := ctrl.Render()
	ctrl.Opened()
	require.NotNil(t, vm.AddPolicy)
	require.Equal(t, domain.AddAllowedModerator, vm.AddPolicy.Selected)

	require.True(t, ctrl.HandleResult(ctrl.Submit(ctx, groupedit.FormValues{Name: "g"})()))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AddAllowedModerator, got.AddAllowed)
}
