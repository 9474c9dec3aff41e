package jmh

import "strings"

// UnknownClass stands in for the class of a single-segment benchmark name.
const UnknownClass = "UnknownClass"

// Identifier is a benchmark name split into class and method parts.
type Identifier struct {
	FullClass string // every segment but the last, e.g. "com.example.Foo"
	Class     string // second-to-last segment, e.g. "Foo"
	Method    string // last segment
}

// ParseIdentifier splits a dot-delimited benchmark name.
func ParseIdentifier(name string) Identifier {
	parts := strings.Split(name, ".")
	id := Identifier{
		FullClass: UnknownClass,
		Class:     UnknownClass,
		Method:    parts[len(parts)-1],
	}
	if len(parts) > 1 {
		id.FullClass = strings.Join(parts[:len(parts)-1], ".")
		id.Class = parts[len(parts)-2]
	}
	return id
}

// Qualified returns "Class.method".
func (id Identifier) Qualified() string {
	return id.Class + "." + id.Method
}
