// Package statemachine holds the authoritative transition rules for orders
// and order items. Handlers translate its errors into HTTP statuses:
// ErrUnknownStatus → 400, ErrWrongRole → 403, ErrIllegalTransition → 409.
package statemachine

import (
	"errors"
	"fmt"

	"restaurant-pos-api/models"
)

var (
	// ErrUnknownStatus means the requested status is not a legal value at all
	ErrUnknownStatus = errors.New("unknown status")
	// ErrWrongRole means the transition exists but the acting role may not perform it
	ErrWrongRole = errors.New("role not allowed for this transition")
	// ErrIllegalTransition means no edge connects the current status to the requested one
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Transition defines a valid order state change and the role that performs it
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
	Role models.StaffRole
}

// validTransitions is the authoritative order state machine:
// open --closed(by waiter)--> closed --paid(by cashier)--> paid.
// There are no backward edges; a closed or paid order never reopens.
var validTransitions = []Transition{
	{From: models.OrderOpen, To: models.OrderClosed, Role: models.RoleWaiter},
	{From: models.OrderClosed, To: models.OrderPaid, Role: models.RoleCashier},
}

// roleForTarget maps each reachable status to the single role allowed to set it
var roleForTarget = func() map[models.OrderStatus]models.StaffRole {
	m := make(map[models.OrderStatus]models.StaffRole)
	for _, t := range validTransitions {
		m[t.To] = t.Role
	}
	return m
}()

func isOrderStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderOpen, models.OrderClosed, models.OrderPaid:
		return true
	}
	return false
}

// CheckOrderTransition validates moving an order from its current status to a
// requested one by an actor with the given role. The role check comes first:
// only a waiter closes, only a cashier marks paid. A role-permitted move is
// then rejected unless an edge connects the two statuses, so paying an order
// that was never closed fails even for a cashier.
func CheckOrderTransition(from, to models.OrderStatus, role models.StaffRole) error {
	if !isOrderStatus(to) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	required, reachable := roleForTarget[to]
	if !reachable {
		return fmt.Errorf("%w: no transition leads to %q", ErrIllegalTransition, to)
	}
	if role != required {
		return fmt.Errorf("%w: only %s can set an order to %s", ErrWrongRole, required, to)
	}
	for _, t := range validTransitions {
		if t.From == from && t.To == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", ErrIllegalTransition, from, to)
}

func isItemStatus(s models.ItemStatus) bool {
	switch s {
	case models.ItemPending, models.ItemReady:
		return true
	}
	return false
}

// CheckItemTransition validates moving an order item between prep states.
// The acting role must equal the item's station exactly; the only defined
// edge is pending → ready, so a ready item never goes back to pending.
func CheckItemTransition(from, to models.ItemStatus, station models.Station, role models.StaffRole) error {
	if !isItemStatus(to) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if string(role) != string(station) {
		return fmt.Errorf("%w: item belongs to the %s station", ErrWrongRole, station)
	}
	if from == models.ItemPending && to == models.ItemReady {
		return nil
	}
	return fmt.Errorf("%w: %s → %s", ErrIllegalTransition, from, to)
}

// ValidOrderTransitionsFrom returns all statuses reachable from the given one
func ValidOrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// AllTransitions returns the full order state machine for documentation
func AllTransitions() []Transition {
	return validTransitions
}
