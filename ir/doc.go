// Package ir provides the node tree for confindent documents.
//
// # Overview
//
// A parsed document is a tree of Node values. Every node has a name, an
// optional scalar value and an ordered list of children. Child order is
// document order and duplicate names are permitted; the by-name lookups
// are derived linear scans over that sequence, never the storage itself.
//
// The document root is a Node with an empty name and no parent; it is
// not addressable by name and only its children matter.
//
// # Creating Nodes
//
//	doc := ir.NewDocument()
//	host := doc.NewChild("Host")
//	host.NewValuedChild("HostName", "example.com")
//	host.NewValuedChild("User", "alice")
//
// # Querying
//
//	host := doc.Child("Host")          // first child named Host, or nil
//	users := host.Named("User")        // every child named User, in order
//	name, err := host.ChildStr("HostName")
//	port, err := host.ChildInt("Port")
//
// Typed accessors distinguish a missing value (ErrMissingValue), a
// missing child (ErrMissingChild) and a present value that does not
// parse (ErrConversion); errors.Is works against all three.
//
// # Thread Safety
//
// No query mutates the tree, so a fully built tree may be traversed from
// any number of goroutines. Builder methods (NewChild, SetValue, ...) are
// not safe for concurrent use with anything else.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/parse - Parses text into trees
//   - github.com/confindent/go-confindent/encode - Encodes trees to text
package ir
