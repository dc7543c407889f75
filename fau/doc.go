// Package fau provides the union-find (disjoint-set) structure the minor
// package uses to decide whether a partial minor's forgotten branches are
// still connected to the live bag.
//
// It wraps github.com/spakin/disjoint rather than hand-rolling a parent/rank
// slice: disjoint.Element already gives path compression and union-by-rank,
// and its Find/Union pair is exactly the make/find/join surface spec'd for
// this component. FAU adds nothing but integer-indexed ergonomics on top.
package fau
