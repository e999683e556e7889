// Package encode writes confindent trees back to text.
//
// # Usage
//
//	doc := ir.NewDocument()
//	host := doc.NewChild("Host")
//	host.NewValuedChild("HostName", "example.com")
//	err := encode.Encode(doc, os.Stdout)
//
//	// Fixed two-space indentation
//	err = encode.Encode(doc, w, encode.Indent("  "))
//
// Encoding a parsed tree reproduces an equivalent document: parsing the
// output yields a tree equal to the input under ir.Equal.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/ir - The node tree
//   - github.com/confindent/go-confindent/parse - Parse text to trees
package encode
