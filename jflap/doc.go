// Package jflap reads and writes deterministic automata in the JFLAP (.jff) interchange format.
//
// A document holds a single automaton element with state elements (numeric id, display name, optional
// initial/final marker children) and transition elements (from id, to id, read symbol). Imported
// automata use the state names as identifiers and the distinct read symbols as alphabet; exported
// automata get sequential ids in identifier order.
package jflap
