package repository

import "github.com/jhoicas/bidtracker-api/internal/domain/entity"

// CampaignRepository define el puerto de persistencia para Campaign.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id string) (*entity.Campaign, error)
	List(limit, offset int) ([]*entity.Campaign, error)
}
