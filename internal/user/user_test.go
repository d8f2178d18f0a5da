package user_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"bloguser/internal/user"
	dErrors "bloguser/pkg/domain-errors"
	"bloguser/pkg/testutil"
)

func TestUserCreation(t *testing.T) {
	ctx := context.Background()

	testutil.Scenario(t, "create with default role", func(t *testing.T) {
		registry := user.NewRegistry()
		created := registry.Create(user.CreateUserRequest{Name: "John Doe"})

		testutil.Then(t, "name and role match and the id is a fresh uuid", func(t *testing.T) {
			assert.Equal(t, "John Doe", created.Name)
			assert.Equal(t, user.RoleReader, created.Role)
			assert.Len(t, created.ID, 36)
		})
	})

	testutil.Scenario(t, "create with a specific role", func(t *testing.T) {
		registry := user.NewRegistry()
		created := registry.Create(user.CreateUserRequest{Name: "John Doe", Role: user.RoleWriter})

		assert.Equal(t, "John Doe", created.Name)
		assert.Equal(t, user.RoleWriter, created.Role)
	})

	testutil.Scenario(t, "create does not add", func(t *testing.T) {
		registry := user.NewRegistry()
		created := registry.Create(user.CreateUserRequest{Name: "John Doe"})
		for range 5 {
			registry.Create(user.CreateUserRequest{Name: "Someone"})
		}

		_, err := registry.Get(ctx, created.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		require.NoError(t, registry.Add(ctx, created.ID, created))
	})

	testutil.Scenario(t, "ids are never reused", func(t *testing.T) {
		registry := user.NewRegistry()
		seen := make(map[string]struct{})
		for range 500 {
			id := registry.Create(user.CreateUserRequest{Name: "John Doe"}).ID
			require.NotContains(t, seen, id)
			seen[id] = struct{}{}
		}
	})
}

func TestAddingUsers(t *testing.T) {
	ctx := context.Background()

	testutil.Given(t, "a created user added under its own id", func(t *testing.T) {
		registry := user.NewRegistry()
		original := registry.Create(user.CreateUserRequest{Name: "John Doe"})
		require.NoError(t, registry.Add(ctx, original.ID, original))

		testutil.Then(t, "get returns an equal record", func(t *testing.T) {
			found, err := registry.Get(ctx, original.ID)
			require.NoError(t, err)
			assert.Equal(t, original, found)
		})

		testutil.When(t, "the same id is added again with another record", func(t *testing.T) {
			other := registry.Create(user.CreateUserRequest{Name: "Jane Roe", Role: user.RoleWriter})
			err := registry.Add(ctx, original.ID, other)

			testutil.Then(t, "the add fails with a conflict", func(t *testing.T) {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
				assert.Equal(t, "user already exists", err.Error())
			})

			testutil.Then(t, "the original record is untouched", func(t *testing.T) {
				found, err := registry.Get(ctx, original.ID)
				require.NoError(t, err)
				assert.Equal(t, original, found)
			})
		})

		testutil.When(t, "other users are added first", func(t *testing.T) {
			for i := range 3 {
				u := registry.Create(user.CreateUserRequest{Name: fmt.Sprintf("User %d", i)})
				require.NoError(t, registry.Add(ctx, u.ID, u))
			}

			testutil.Then(t, "re-adding the original id still fails", func(t *testing.T) {
				err := registry.Add(ctx, original.ID, original)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
			})
		})
	})

	testutil.Given(t, "a record added under a key other than its id", func(t *testing.T) {
		registry := user.NewRegistry()
		u := registry.Create(user.CreateUserRequest{Name: "John Doe"})
		require.NoError(t, registry.Add(ctx, "alias", u))

		testutil.Then(t, "it is found under the key and keeps its own id", func(t *testing.T) {
			found, err := registry.Get(ctx, "alias")
			require.NoError(t, err)
			assert.Equal(t, u.ID, found.ID)
		})

		testutil.Then(t, "it is not found under its own id", func(t *testing.T) {
			_, err := registry.Get(ctx, u.ID)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		})
	})

	testutil.Given(t, "many callers adding the same id at once", func(t *testing.T) {
		registry := user.NewRegistry()
		u := registry.Create(user.CreateUserRequest{Name: "John Doe"})
		var wins atomic.Int32

		var g errgroup.Group
		for range 32 {
			g.Go(func() error {
				err := registry.Add(ctx, u.ID, u)
				if err == nil {
					wins.Add(1)
					return nil
				}
				if dErrors.HasCode(err, dErrors.CodeConflict) {
					return nil
				}
				return err
			})
		}
		require.NoError(t, g.Wait())

		testutil.Then(t, "exactly one add succeeds", func(t *testing.T) {
			assert.Equal(t, int32(1), wins.Load())
		})
	})
}

func TestGettingUsers(t *testing.T) {
	testutil.Scenario(t, "get on an empty registry", func(t *testing.T) {
		registry := user.NewRegistry()
		_, err := registry.Get(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		assert.Equal(t, "user not found", err.Error())
	})
}
