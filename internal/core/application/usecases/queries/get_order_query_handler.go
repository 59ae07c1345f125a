package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its items from storage.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup, items included. Returns an object-not-found
// error when no order carries the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if err = attachOrderItems(ctx, h.db, &response); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

// scanOrderRow scans the order columns shared by all order queries:
// id, customer_id, created_at, status. Items and total are filled in later
// by attachOrderItems.
func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var id, customerID uuid.UUID
	var createdAt time.Time
	var status string

	if err := row.Scan(&id, &customerID, &createdAt, &status); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:         orderID,
		CustomerID: ownerID,
		CreatedAt:  createdAt.UTC(),
		Status:     status,
		Total:      decimal.Zero,
		Items:      make([]OrderItemResponse, 0),
	}, nil
}

// attachOrderItems loads the order's lines in insertion order and computes
// the running total.
func attachOrderItems(ctx context.Context, db *gorm.DB, response *OrderResponse) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY sort_order
	`, response.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var productName string
		var quantity int
		var unitPrice decimal.Decimal

		if err = rows.Scan(&id, &productName, &quantity, &unitPrice); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}

		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		response.Items = append(response.Items, OrderItemResponse{
			ID:          itemID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Subtotal:    subtotal,
		})
		response.Total = response.Total.Add(subtotal)
	}

	return rows.Err()
}
