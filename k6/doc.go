// Package k6 implements the K6-engine: a path-decomposition sweep
// specialized to find K_6 minor models directly, rather than emitting a
// generic minor and checking it afterwards. Each partial state assigns bag
// vertices to one of 6 branches (or none), tracks the 15 possible bridge
// edges between branch pairs, and tracks, for every branch and every
// unordered pair of the other 5 branches, the internal path connecting the
// two bridge endpoints inside that branch.
//
// A branch is only allowed to leave the live frontier (be forgotten) once
// all 10 of its internal paths are complete and every triangle through it
// has at least one solid side. A minor is only emitted once all 6 branches
// have reached that point.
package k6
