// Package services provides domain services that work across dispatch aggregates.
//
// The package includes:
//   - FeeCalculator: computes the earning amount for a delivered job from a base fee,
//     a per-kilometre bonus and an on-time bonus
//
// The earnings ledger only records the amount; the pricing rules live here so that
// they can change without touching the ledger or the lifecycle code.
package services
