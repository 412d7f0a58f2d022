// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary amounts are stored as numeric columns; line items live in their
// own table and are loaded with the order.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID       `gorm:"type:uuid;index"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index"`
	CourierID  *uuid.UUID      `gorm:"type:uuid;index"`
	AddressID  uuid.UUID       `gorm:"type:uuid"`
	Items      []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(14,4)"`
	Tax        decimal.Decimal `gorm:"type:numeric(14,4)"`
	Total      decimal.Decimal `gorm:"type:numeric(14,4)"`
	Status     int             `gorm:"index"`
	CreatedAt  time.Time       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one snapshot line item row. The row ID is generated at
// persistence time; the domain identifies items only by position.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Name      string          `gorm:"type:text"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,4)"`
	ImageURL  string          `gorm:"type:text"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line-item rows get fresh IDs on every conversion; Add is the only write
// path for them, so rows are created exactly once.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Decimal(),
			ImageURL:  item.ImageURL(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ClientID:   aggregate.ClientID().Bytes(),
		MerchantID: aggregate.MerchantID().Bytes(),
		CourierID:  courierID,
		AddressID:  aggregate.AddressID().Bytes(),
		Items:      itemDTOs,
		Subtotal:   aggregate.Subtotal().Decimal(),
		Tax:        aggregate.Tax().Decimal(),
		Total:      aggregate.Total().Decimal(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemFromDTO(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, clientID, merchantID, courierID, addressID,
		items, subtotal, tax, total,
		order.Status(dto.Status), dto.CreatedAt,
	)
}

func itemFromDTO(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, dto.Name, unitPrice, dto.ImageURL)
}
