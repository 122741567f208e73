package repository

import "github.com/sangkips/sales-engine-api/internal/domain/entity"

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	RecordRepository[entity.Customer]
}
