package repository

import "github.com/sangkips/sales-engine-api/internal/domain/entity"

// MerchantRepository defines the interface for merchant data operations
type MerchantRepository interface {
	RecordRepository[entity.Merchant]
}
