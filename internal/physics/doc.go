// Package physics provides dynamical system models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equation governing the system's evolution:
//
//   - [Logistic]: population growth saturating at a carrying capacity
package physics
