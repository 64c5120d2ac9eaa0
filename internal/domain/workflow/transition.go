package workflow

import (
	"fmt"
	"log/slog"
)

// transitions holds the per-kind state machines. A status mapping to an empty
// set is terminal. Every non-terminal status must have at least one outgoing
// edge; the invariant test enforces both.
var transitions = map[EntityType]map[Status][]Status{
	EntityTask: {
		"open":        {"in_progress", "cancelled"},
		"in_progress": {"completed", "cancelled", "on_hold"},
		"on_hold":     {"in_progress", "cancelled"},
		"completed":   {},
		"cancelled":   {},
	},
	EntityMaintenanceTicket: {
		"open":          {"in_progress", "cancelled"},
		"in_progress":   {"completed", "pending_parts", "on_hold", "cancelled"},
		"pending_parts": {"in_progress", "completed", "cancelled"},
		"on_hold":       {"in_progress", "cancelled"},
		"completed":     {"closed"},
		"closed":        {},
		"cancelled":     {},
	},
	EntityLeaveRequest: {
		"pending":   {"approved", "rejected", "cancelled"},
		"approved":  {"cancelled"},
		"rejected":  {},
		"cancelled": {},
	},
	EntityJobPosting: {
		"draft":     {"open", "cancelled"},
		"open":      {"filled", "closed", "on_hold", "cancelled"},
		"on_hold":   {"open", "cancelled"},
		"filled":    {"closed"},
		"closed":    {},
		"cancelled": {},
	},
	EntityDocument: {
		"draft":     {"in_review", "archived"},
		"in_review": {"published", "draft"},
		"published": {"archived"},
		"archived":  {},
	},
}

// Validate reports whether an entity of the given kind may move from one
// status to another. Pure lookup, no side effects beyond logging config gaps.
func Validate(entityType EntityType, from, to Status) error {
	table, ok := transitions[entityType]
	if !ok {
		slog.Error("transition table missing entity kind", "entity_type", entityType)
		return fmt.Errorf("%w: %s/%s", ErrUnknownState, entityType, from)
	}

	allowed, ok := table[from]
	if !ok {
		slog.Error("transition table missing status", "entity_type", entityType, "status", from)
		return fmt.Errorf("%w: %s/%s", ErrUnknownState, entityType, from)
	}

	for _, s := range allowed {
		if s == to {
			return nil
		}
	}

	return fmt.Errorf("%w: %s cannot move %s -> %s", ErrInvalidTransition, entityType, from, to)
}

// NextStatuses returns the statuses the entity may move to from the given
// status. Unknown pairs return an empty slice.
func NextStatuses(entityType EntityType, from Status) []Status {
	allowed := transitions[entityType][from]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether the status permits no further transition for the
// given entity kind.
func IsTerminal(entityType EntityType, status Status) bool {
	allowed, ok := transitions[entityType][status]
	return ok && len(allowed) == 0
}

// Statuses returns every status the entity kind's table knows about.
func Statuses(entityType EntityType) []Status {
	table := transitions[entityType]
	out := make([]Status, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	return out
}
