package ports

import (
	"context"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

type AdminAlerter interface {
	AlertInvalidWindows(ctx context.Context, records []domain.RecordError)
}

// AlertLedger records which hackathons admins were already told about.
// MarkAlerted reports true only for the first mark within the cooldown.
type AlertLedger interface {
	MarkAlerted(ctx context.Context, hackathonID string) (bool, error)
}
