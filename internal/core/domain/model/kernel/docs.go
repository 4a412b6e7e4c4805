// Package kernel holds the value objects shared by every dispatch aggregate.
//
// The package includes:
//   - UUID: identifier for jobs, orders, agents and earning entries
//   - GeoPoint: a validated latitude/longitude pair reported with job progress
//   - Clock: the time source injected into command handlers
package kernel
