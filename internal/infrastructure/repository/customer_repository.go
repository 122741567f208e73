package repository

import (
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	domainRepo "github.com/sangkips/sales-engine-api/internal/domain/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	recordRepository[entity.Customer]
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{newRecordRepository[entity.Customer](db, "customers")}
}
