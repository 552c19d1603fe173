package groups

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"groupedit/internal/domain"
)

func setupSQLStore(t *testing.T, policy domain.Policy) *SQLGroupStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test db")

	// every connection to :memory: is a fresh database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s, err := NewSQLGroupStore(db, policy)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// forEachStore runs fn against every local Store implementation
func forEachStore(t *testing.T, policy domain.Policy, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryGroupStore(policy))
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, setupSQLStore(t, policy))
	})
}

func requireFieldError(t *testing.T, err error, field, message string) {
	t.Helper()
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe), "expected a FieldError, got %v", err)
	require.Equal(t, field, fe.Field)
	require.Equal(t, message, fe.Message)
}

func TestStoreCreate(t *testing.T) {
	forEachStore(t, domain.PolicyYesMod, func(t *testing.T, s Store) {
		ctx := context.Background()

		rec, err := s.Create(ctx, domain.GroupFields{Name: "  Team A ", Description: " first ", Public: true})
		require.NoError(t, err)
		require.NotZero(t, rec.ID)
		require.Equal(t, "Team A", rec.Name)
		require.Equal(t, "first", rec.Description)
		require.True(t, rec.Public)
		require.Equal(t, domain.PolicyYesMod, rec.AddToGroupPolicy)
		require.Equal(t, domain.AddAllowedUnset, rec.AddAllowed)

		got, err := s.Get(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, rec.Name, got.Name)
	})
}

func TestStoreCreateValidation(t *testing.T) {
	forEachStore(t, domain.PolicyUnset, func(t *testing.T, s Store) {
		ctx := context.Background()

		_, err := s.Create(ctx, domain.GroupFields{Name: "   "})
		requireFieldError(t, err, "name", MsgNameRequired)

		bogus := domain.AddAllowed("everyone")
		_, err = s.Create(ctx, domain.GroupFields{Name: "x", AddAllowed: &bogus})
		requireFieldError(t, err, "addAllowed", MsgInvalidAddAllowed)

		_, err = s.Create(ctx, domain.GroupFields{Name: "Team"})
		require.NoError(t, err)
		_, err = s.Create(ctx, domain.GroupFields{Name: "team"})
		requireFieldError(t, err, "name", MsgNameTaken)
	})
}

func TestStoreUpdate(t *testing.T) {
	forEachStore(t, domain.PolicyNoAdmin, func(t *testing.T, s Store) {
		ctx := context.Background()

		first, err := s.Create(ctx, domain.GroupFields{Name: "Old"})
		require.NoError(t, err)
		other, err := s.Create(ctx, domain.GroupFields{Name: "Other"})
		require.NoError(t, err)

		admin := domain.AddAllowedAdministrator
		updated, err := s.Update(ctx, first, domain.GroupFields{Name: "New", Description: "d", Public: true, AddAllowed: &admin})
		require.NoError(t, err)
		require.Equal(t, first.ID, updated.ID)
		require.Equal(t, "New", updated.Name)
		require.Equal(t, domain.AddAllowedAdministrator, updated.AddAllowed)

		// Keeping its own name is not a conflict
		_, err = s.Update(ctx, updated, domain.GroupFields{Name: "new"})
		require.NoError(t, err)

		_, err = s.Update(ctx, other, domain.GroupFields{Name: "NEW"})
		requireFieldError(t, err, "name", MsgNameTaken)

		// The old name is free again
		_, err = s.Create(ctx, domain.GroupFields{Name: "Old"})
		require.NoError(t, err)

		_, err = s.Update(ctx, &domain.GroupRecord{ID: 9999}, domain.GroupFields{Name: "ghost"})
		require.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestStoreList(t *testing.T) {
	forEachStore(t, domain.PolicyUnset, func(t *testing.T, s Store) {
		ctx := context.Background()

		for _, name := range []string{"b", "a", "c"} {
			_, err := s.Create(ctx, domain.GroupFields{Name: name})
			require.NoError(t, err)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, []string{"b", "a", "c"}, []string{list[0].Name, list[1].Name, list[2].Name})

		_, err = s.Get(ctx, 12345)
		require.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryGroupStore(domain.PolicyUnset)
	ctx := context.Background()

	rec, err := s.Create(ctx, domain.GroupFields{Name: "Team"})
	require.NoError(t, err)
	rec.Name = "mutated"

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "Team", got.Name)
}
