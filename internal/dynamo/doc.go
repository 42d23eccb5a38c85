// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Grid]: evenly spaced time instants a run is sampled on
//   - [Metric]: scalar summary observed along a run
//
// # Example
//
//	t := dynamo.Linspace(0, 20, 400)
//	dt, err := t.Step()
//	if err != nil {
//	    return err
//	}
//
// # Grids
//
// A [Grid] derives its step from its first two points. [Grid.Step] rejects
// grids shorter than two points and grids whose spacing is not constant.
package dynamo
