package ports

import (
	"context"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

type HackathonRepo interface {
	Create(ctx context.Context, h *domain.Hackathon) error
	GetByID(ctx context.Context, id string) (*domain.Hackathon, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Hackathon, error)
	Find(ctx context.Context, sel domain.Selector) ([]*domain.Hackathon, error)
	UpdatePhase(ctx context.Context, id string, phase domain.Phase) error
}
