// Package fanout implements the fan-out/join runner: it starts a fixed number
// of goroutines, each running the same work function with its own index,
// keeps their handles in creation order, and then joins every handle in that
// same order.
//
// A run is strictly two-phase. All units are spawned before the first join
// is issued, and every handle is joined exactly once before Run returns.
// Nothing is cancellable: Run blocks for as long as its slowest unit.
package fanout
