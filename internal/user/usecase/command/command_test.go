package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/virtual-tryon/internal/user/domain"
	"github.com/tair/virtual-tryon/internal/user/repository"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	h := NewRegisterUserHandler(repository.NewMemoryUserRepository())

	user, err := h.Handle(ctx, RegisterUserCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, CheckPassword(user, "s3cret"))
	assert.False(t, CheckPassword(user, "wrong"))

	_, err = h.Handle(ctx, RegisterUserCommand{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = h.Handle(ctx, RegisterUserCommand{Username: " ", Password: "x"})
	assert.Error(t, err)
}

func TestEnsureDemoUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepository()
	h := NewEnsureDemoUserHandler(repo, NewRegisterUserHandler(repo))

	first, err := h.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, DemoUsername, first.Username)
	assert.True(t, CheckPassword(first, DemoPassword))

	second, err := h.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
