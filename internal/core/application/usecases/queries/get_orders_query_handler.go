package queries

import (
	"context"
	"database/sql"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads a participant's orders with their line-item
// snapshots straight from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first; each carries
// its full snapshot item list and totals rendered to two decimal places.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filterColumn := map[ParticipantRole]string{
		RoleClient:   "client_id",
		RoleMerchant: "merchant_id",
		RoleCourier:  "courier_id",
	}[query.Role()]

	orders := make([]GetOrdersQueryResponse, 0)
	orderIndex := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			courier_id,
			status,
			subtotal,
			tax,
			total,
			created_at
		FROM orders
		WHERE `+filterColumn+` = ?
		ORDER BY created_at DESC
	`, query.ParticipantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			clientID  uuid.UUID
			courierID *uuid.UUID
			status    int
			subtotal  decimal.Decimal
			tax       decimal.Decimal
			total     decimal.Decimal
			createdAt time.Time
		)

		if err = rows.Scan(&id, &clientID, &courierID, &status, &subtotal, &tax, &total, &createdAt); err != nil {
			return nil, err
		}

		resp, respErr := buildOrderResponse(id, clientID, courierID, status, subtotal, tax, total, createdAt)
		if respErr != nil {
			return nil, respErr
		}

		orderIndex[id] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, orderIndex); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildOrderResponse(
	id, clientID uuid.UUID,
	courierID *uuid.UUID,
	status int,
	subtotal, tax, total decimal.Decimal,
	createdAt time.Time,
) (GetOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	client, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var courier *kernel.UUID
	if courierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return GetOrdersQueryResponse{}, courierErr
		}
		courier = &cID
	}

	return GetOrdersQueryResponse{
		ID:        orderID,
		ClientID:  client,
		CourierID: courier,
		Status:    order.Status(status).String(),
		Subtotal:  subtotal.StringFixed(2),
		Tax:       tax.StringFixed(2),
		Total:     total.StringFixed(2),
		CreatedAt: createdAt,
		Items:     make([]OrderItemResponse, 0),
	}, nil
}

// attachItems loads the snapshot items of every order in one query and
// distributes them by order id.
func (h GetOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
	orderIndex map[uuid.UUID]int,
) error {
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for id := range orderIndex {
		orderIDs = append(orderIDs, id)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			unit_price,
			image_url
		FROM order_items
		WHERE order_id IN ?
		ORDER BY name
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			name      string
			unitPrice decimal.Decimal
			imageURL  sql.NullString
		)

		if err = rows.Scan(&orderID, &productID, &name, &unitPrice, &imageURL); err != nil {
			return err
		}

		pID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}

		idx := orderIndex[orderID]
		orders[idx].Items = append(orders[idx].Items, OrderItemResponse{
			ProductID: pID,
			Name:      name,
			UnitPrice: unitPrice.StringFixed(2),
			ImageURL:  imageURL.String,
		})
	}

	return rows.Err()
}
