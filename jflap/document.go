package jflap

import "encoding/xml"

type document struct {
	XMLName   xml.Name  `xml:"structure"`
	Type      string    `xml:"type,omitempty"`
	Automaton automaton `xml:"automaton"`
}

type automaton struct {
	States      []state      `xml:"state"`
	Transitions []transition `xml:"transition"`
}

type state struct {
	ID      string   `xml:"id,attr"`
	Name    string   `xml:"name,attr"`
	X       *float64 `xml:"x,omitempty"`
	Y       *float64 `xml:"y,omitempty"`
	Initial *marker  `xml:"initial,omitempty"`
	Final   *marker  `xml:"final,omitempty"`
}

// marker An empty element whose presence is the information.
type marker struct{}

type transition struct {
	From string `xml:"from"`
	To   string `xml:"to"`
	Read string `xml:"read"`
}
