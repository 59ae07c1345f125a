package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler reads a single customer straight from storage.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer lookups.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// customer carries the requested identifier.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	response, err := scanCustomerRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerID", query.CustomerID())
	}
	if err != nil {
		return CustomerResponse{}, err
	}

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomerRow(row rowScanner) (CustomerResponse, error) {
	var id uuid.UUID
	var name, email string
	var phone sql.NullString

	if err := row.Scan(&id, &name, &email, &phone); err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:    customerID,
		Name:  name,
		Email: email,
		Phone: phone.String,
	}, nil
}
