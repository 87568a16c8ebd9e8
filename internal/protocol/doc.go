// Package protocol renders a validated trace as the line-oriented transition
// protocol read by the reference simulator.
//
// Each transition i produces one block:
//
//	<width> <height>
//	production      height rows, cells right-justified to width 2
//	owner           frames[i] owners, natural width
//	strength        frames[i] strengths, width 3
//	moves           moves[i], natural width
//	next_owner      frames[i+1] owners, natural width
//	next_strength   frames[i+1] strengths, width 3
//
// Every cell is followed by a single space, including the last one on a row.
// Blocks follow each other with no separator.
package protocol
