package repository

import (
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	domainRepo "github.com/sangkips/sales-engine-api/internal/domain/repository"
	"gorm.io/gorm"
)

type merchantRepository struct {
	recordRepository[entity.Merchant]
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) domainRepo.MerchantRepository {
	return &merchantRepository{newRecordRepository[entity.Merchant](db, "merchants")}
}
