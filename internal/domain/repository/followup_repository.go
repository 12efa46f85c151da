package repository

import (
	"time"

	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
)

// FollowUpRepository define el puerto de persistencia para FollowUp.
// dueBefore en nil significa sin cota superior de fecha.
type FollowUpRepository interface {
	Create(followUp *entity.FollowUp) error
	List(status string, dueBefore *time.Time) ([]*entity.FollowUp, error)
}
