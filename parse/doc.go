// Package parse builds confindent trees from text.
//
// # Usage
//
//	doc, err := parse.ParseString("Host\n\tHostName example.com\n")
//	if err != nil {
//	    return err
//	}
//	hostname, err := doc.Child("Host").ChildStr("HostName")
//
// Parsing is fail-fast: any indentation, structure or encoding problem
// aborts the whole parse and no partial tree is returned.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/ir - The node tree
//   - github.com/confindent/go-confindent/encode - Encode trees to text
//   - github.com/confindent/go-confindent/token - Line classification
package parse
