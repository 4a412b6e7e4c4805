// Package job implements the delivery job aggregate and the dispatch state machine.
//
// The package includes:
//   - Job: the aggregate root holding status, owning agent, lifecycle timestamps,
//     proof of delivery and progress telemetry
//   - Status, Event, Role, Actor: the vocabulary of the lifecycle
//   - Decide: a pure function from (status, event, role) to a Decision listing the
//     side effects the caller applies atomically with the status write
//   - Payload: one concrete request type per event
//
// Claims, releases and lifecycle events all pass through Decide, so the transition
// table in transition.go is the single place that defines what is legal.
package job
