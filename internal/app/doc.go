// Package app is the composition root for the triptych application.
//
// Run wires the pieces together in order: load the seed configuration,
// load user preferences, build the board and the activity feed as plain
// owned values, and hand everything to the UI. There are no globals and no
// background workers; the UI's event loop is the only activity in the
// process.
//
// Fatal errors (an invalid seed file, terminal setup failure) are returned
// from Run and reported by main. Once the UI is running, steady-state
// operation never errors.
package app
