// Package token classifies raw confindent input line by line.
//
// Each input line is one of three things: blank, a comment, or content.
// Content lines carry an indentation depth, a key and an optional value:
//
//	Host
//		HostName example.com
//		User alice
//
// The classifier learns the indentation unit from the first indented
// content line and holds every later content line to whole repetitions
// of it. Blank and comment lines never establish nor violate the unit.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/parse - Builds trees from classified lines
//   - github.com/confindent/go-confindent/ir - The node tree
package token
