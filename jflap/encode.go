package jflap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/geange/dfa"
)

// Layout of exported states: a grid of layoutColumns columns, layoutSpacing apart.
const (
	layoutColumns = 5
	layoutSpacing = 150.0
	layoutMargin  = 100.0
)

// Encode Writes a as a JFLAP document. States are numbered in identifier order; every stored transition is
// written with its symbol as is.
func Encode(w io.Writer, a *dfa.Automaton) error {
	doc := toDocument(a)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("jflap: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile Encodes a into the file at path, creating or truncating it.
func WriteFile(path string, a *dfa.Automaton) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, a)
}

func toDocument(a *dfa.Automaton) *document {
	ids := make(map[string]string, a.GetNumStates())
	initial, hasInitial := a.Initial()

	doc := &document{Type: "fa"}
	for i, name := range a.States() {
		id := strconv.Itoa(i)
		ids[name] = id

		x := layoutMargin + layoutSpacing*float64(i%layoutColumns)
		y := layoutMargin + layoutSpacing*float64(i/layoutColumns)
		s := state{ID: id, Name: name, X: &x, Y: &y}
		if hasInitial && name == initial {
			s.Initial = &marker{}
		}
		if a.IsFinal(name) {
			s.Final = &marker{}
		}
		doc.Automaton.States = append(doc.Automaton.States, s)
	}

	for _, t := range a.Transitions() {
		doc.Automaton.Transitions = append(doc.Automaton.Transitions, transition{
			From: ids[t.From],
			To:   ids[t.To],
			Read: t.Symbol,
		})
	}
	return doc
}
