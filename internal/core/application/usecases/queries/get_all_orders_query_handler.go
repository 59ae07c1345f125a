package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order, items included.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrders(ctx, h.db, `
		SELECT
			id,
			customer_id,
			created_at,
			status
		FROM orders
		ORDER BY created_at DESC, id
	`)
}

// listOrders runs the given order query and attaches the items of every
// returned order.
func listOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err = attachOrderItems(ctx, db, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}
