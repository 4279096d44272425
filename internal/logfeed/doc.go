// Package logfeed holds the rotating activity feed shown under the board.
//
// The feed simulates ongoing activity: a fixed set of entries rotates on a
// fixed tick, independent of user input. Advance moves the front entry to
// the back; applying it len(entries) times restores the original order. The
// feed is owned by the control loop and mutated only through Advance.
package logfeed
