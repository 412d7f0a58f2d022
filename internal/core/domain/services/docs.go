// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the ordering system.
//
// The package includes:
//   - PricingEngine: prices a line-item snapshot against the configured tax rate
//   - OrderDispatcher: pairs pending orders with available couriers
//
// Domain services coordinate between aggregates, implementing business
// logic that spans more than one aggregate root.
package services
