package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body of POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerRequest is the body of PUT /api/customers/:id.
// The new state replaces the old one as a whole.
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse is the wire form of a customer.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderItemRequest carries one line of a new order, or the body of
// POST /api/orders/:id/items. The unit price travels as a decimal string to
// avoid binary floating point on the wire.
type OrderItemRequest struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items,omitempty"`
}

// OrderItemResponse is the wire form of one order line.
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is the wire form of an order, total included.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customerId"`
	CreatedAt  time.Time           `json:"createdAt"`
	Status     string              `json:"status"`
	Total      string              `json:"total"`
	Items      []OrderItemResponse `json:"items"`
}

// customerFromDomain renders a persisted customer entity.
func customerFromDomain(aggregate *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    aggregate.ID().String(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Phone: aggregate.Phone(),
	}
}

// customerFromQuery renders a customer read model.
func customerFromQuery(response queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:    response.ID.String(),
		Name:  response.Name,
		Email: response.Email,
		Phone: response.Phone,
	}
}

// orderFromDomain renders a persisted order aggregate.
func orderFromDomain(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		CreatedAt:  aggregate.CreatedAt(),
		Status:     aggregate.Status().String(),
		Total:      aggregate.Total().String(),
		Items:      itemResponses,
	}
}

// orderFromQuery renders an order read model.
func orderFromQuery(response queries.OrderResponse) OrderResponse {
	itemResponses := make([]OrderItemResponse, 0, len(response.Items))
	for _, item := range response.Items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.Subtotal.String(),
		})
	}

	return OrderResponse{
		ID:         response.ID.String(),
		CustomerID: response.CustomerID.String(),
		CreatedAt:  response.CreatedAt,
		Status:     response.Status,
		Total:      response.Total.String(),
		Items:      itemResponses,
	}
}

// ordersFromQuery renders a list of order read models.
func ordersFromQuery(responses []queries.OrderResponse) []OrderResponse {
	orders := make([]OrderResponse, 0, len(responses))
	for _, response := range responses {
		orders = append(orders, orderFromQuery(response))
	}
	return orders
}
