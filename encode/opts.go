package encode

type EncodeOption func(*EncState)

// Indent sets the indentation unit, one tab by default. It must be a
// non-empty whitespace string.
func Indent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// Depth shifts the whole output right by n indentation units.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors enables ANSI colorization. A nil Colors leaves output
// plain.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
