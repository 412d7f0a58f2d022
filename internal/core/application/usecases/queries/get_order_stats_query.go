package queries

import (
	"errors"

	"appcenar/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves order counts per lifecycle status.
// Used by the periodic stats job for an operational summary.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a parameterless stats query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds order counts per status.
type GetOrderStatsQueryResponse struct {
	Pending    int64
	InProgress int64
	Completed  int64
}

// Total returns the overall order count.
func (r GetOrderStatsQueryResponse) Total() int64 {
	return r.Pending + r.InProgress + r.Completed
}
