package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/virtual-tryon/internal/user/domain"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// Demo identity used for every favorites operation
const (
	DemoUsername = "demouser"
	DemoPassword = "password"
)

// EnsureDemoUserHandler creates the demo identity on first start
type EnsureDemoUserHandler struct {
	repo     domain.UserRepository
	register *RegisterUserHandler
}

// NewEnsureDemoUserHandler creates a new ensure demo user handler
func NewEnsureDemoUserHandler(repo domain.UserRepository, register *RegisterUserHandler) *EnsureDemoUserHandler {
	return &EnsureDemoUserHandler{repo: repo, register: register}
}

// Handle returns the demo user, registering it when absent
func (h *EnsureDemoUserHandler) Handle(ctx context.Context) (*domain.User, error) {
	user, err := h.repo.FindByUsername(ctx, DemoUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up demo user: %w", err)
	}

	user, err = h.register.Handle(ctx, RegisterUserCommand{Username: DemoUsername, Password: DemoPassword})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Str("username", user.Username).Msg("Demo user created")
	return user, nil
}
