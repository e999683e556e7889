// Package confindent reads and writes configuration by indentation, an
// SSH-config-inspired format: every line is a key with an optional
// value, and indentation depth gives nesting.
//
//	Host example.com
//		User alice
//		Port 22
//		IdentityFile ~/.ssh/id_ed25519
//
//	doc, err := confindent.ParseString(conf)
//	if err != nil {
//	    return err
//	}
//	host := doc.Child("Host")
//	addr, _ := host.Str()         // "example.com"
//	user, _ := host.ChildStr("User")
//	port, _ := host.ChildInt("Port")
//
// The heavy lifting lives in the subpackages; this package only holds
// the conveniences above.
//
//   - github.com/confindent/go-confindent/parse - text to tree
//   - github.com/confindent/go-confindent/ir - tree and query model
//   - github.com/confindent/go-confindent/encode - tree to text
//   - github.com/confindent/go-confindent/token - line classification
package confindent
