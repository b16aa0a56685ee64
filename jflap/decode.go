package jflap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/geange/dfa"
)

// Decode Reads a JFLAP document and builds the automaton it describes. The document must mark at least one
// state initial (the last one wins) and at least one state final, otherwise ErrNoInitialState or
// ErrNoFinalState is returned and no automaton is built. Transitions that do not pass
// dfa.Automaton.AddTransition, such as empty or multi-character reads or unknown state ids, are dropped.
func Decode(r io.Reader, opts ...Option) (*dfa.Automaton, error) {
	o := newOptions(opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("jflap: read: %w", err)
	}
	if o.validate {
		if err := Validate(data); err != nil {
			return nil, err
		}
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return fromDocument(&doc, o)
}

// ReadFile Decodes the JFLAP document stored at path.
func ReadFile(path string, opts ...Option) (*dfa.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts...)
}

func fromDocument(doc *document, o *options) (*dfa.Automaton, error) {
	names := make(map[string]string, len(doc.Automaton.States))
	order := make([]string, 0, len(doc.Automaton.States))
	finals := make(map[string]bool)
	initial := ""
	hasInitial := false

	for _, s := range doc.Automaton.States {
		names[s.ID] = s.Name
		order = append(order, s.Name)
		if s.Initial != nil {
			initial = s.Name
			hasInitial = true
		}
		if s.Final != nil {
			finals[s.Name] = true
		}
	}
	if !hasInitial {
		return nil, ErrNoInitialState
	}
	if len(finals) == 0 {
		return nil, ErrNoFinalState
	}

	seen := make(map[string]struct{})
	symbols := make([]string, 0)
	for _, t := range doc.Automaton.Transitions {
		if _, ok := seen[t.Read]; !ok {
			seen[t.Read] = struct{}{}
			symbols = append(symbols, t.Read)
		}
	}

	a := dfa.NewAutomatonV1(symbols, len(order))
	for _, name := range order {
		a.CreateState(name, name == initial, finals[name])
	}

	for _, t := range doc.Automaton.Transitions {
		from, okFrom := names[t.From]
		to, okTo := names[t.To]
		if !okFrom || !okTo || !a.AddTransition(from, to, t.Read) {
			o.logger.Debug("dropping transition",
				"from", t.From, "to", t.To, "read", t.Read)
		}
	}
	return a, nil
}
