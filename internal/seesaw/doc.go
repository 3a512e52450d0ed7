// Package seesaw provides the core model of the seesaw toy.
//
// The package has no UI dependencies; front ends drive it through a
// [Simulation] and render whatever it reports:
//
//   - [Calculate]: torque balance and target angle for a set of objects
//   - [Project]: pointer to plank-local coordinates, accounting for tilt
//   - [Animator]: first-order filter easing the plank toward its target
//   - [Journal]: bounded, newest-first activity log
//
// # Example
//
//	sim := seesaw.New(seesaw.DefaultParams(), seesaw.WithSeed(42))
//	sim.Attach(store)
//	obj := sim.Place(-120)
//	for !sim.Settled() {
//	    sim.Frame()
//	}
//
// # Thread Safety
//
// Simulation is NOT thread-safe. Front ends call it from their single
// event loop.
package seesaw
