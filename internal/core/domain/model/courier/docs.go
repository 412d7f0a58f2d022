// Package courier provides the courier aggregate for dispatch.
//
// A courier is either Available or Busy and carries at most one order at
// a time. Claiming a courier for an order flips them to Busy; completing
// the delivery releases them back to Available. Deactivated couriers are
// never claimed, but an in-flight delivery can still finish.
package courier
