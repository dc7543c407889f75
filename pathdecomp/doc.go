// Package pathdecomp models a path decomposition of bounded width as a
// sequence of IntroduceNode / IntroduceEdge / ForgetNode steps, plus the
// live "bag" those steps play out against.
//
// A PathDecomp is produced externally (by a path-decomposition generator
// that is out of scope for this module — see spec §4.3) and consumed by
// the minor and k6 engines, which replay it step by step while maintaining
// their own partial-minor state. pathdecomp itself only tracks the bag: the
// ordered set of node names currently live, and the bag positions
// IntroduceEdge steps refer to.
//
// Width is the maximum bag size observed over a full replay; both engines
// rely on width staying small (their state is exponential in it).
package pathdecomp
