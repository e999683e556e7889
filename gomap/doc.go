// Package gomap converts between Go structs and confindent trees by
// reflection.
//
// Only exported fields are processed, matched to child names
// case-sensitively. A `conf` tag overrides the name; `conf:"-"` skips
// the field.
//
//	type Host struct {
//	    HostName string
//	    User     string
//	    Port     int64
//	    Ciphers  []string          // comma-separated value
//	    Tunnel   *TunnelConfig     // nested section, nil when absent
//	}
//
//	var h Host
//	err := gomap.FromIR(doc.Child("Host"), &h)
//
//	node, err := gomap.ToIR("Host", h)
//
// Scalars read through the ir typed accessors, so a missing child
// leaves the field at its zero value while a present-but-unparsable
// value is an error.
package gomap
