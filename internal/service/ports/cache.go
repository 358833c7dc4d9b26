package ports

import (
	"context"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

type PhaseCache interface {
	Get(ctx context.Context, hackathonID string) (domain.Phase, bool, error)
	Set(ctx context.Context, hackathonID string, phase domain.Phase) error
}
