package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type classifyOpts struct {
	marker string
	unit   string
}

type Opt func(*classifyOpts)

// Marker sets the comment marker. The default is "#".
func Marker(m string) Opt {
	return func(o *classifyOpts) { o.marker = m }
}

// Unit fixes the indentation unit, disabling learning. It must be a
// non-empty whitespace string.
func Unit(u string) Opt {
	return func(o *classifyOpts) { o.unit = u }
}

// Classify classifies a whole document into Lines.
func Classify(d []byte, opts ...Opt) ([]Line, error) {
	c, err := NewClassifier(d, opts...)
	if err != nil {
		return nil, err
	}
	var lines []Line
	for {
		ln, err := c.Next()
		if err != nil {
			return nil, err
		}
		if ln == nil {
			return lines, nil
		}
		lines = append(lines, *ln)
	}
}

// Classifier walks one document line by line. The zero value is not
// usable; construct with NewClassifier.
type Classifier struct {
	opt classifyOpts
	doc *PosDoc
	off int

	unit string
}

func NewClassifier(d []byte, opts ...Opt) (*Classifier, error) {
	opt := classifyOpts{marker: "#"}
	for _, o := range opts {
		o(&opt)
	}
	if opt.marker == "" {
		return nil, fmt.Errorf("empty comment marker")
	}
	if opt.unit != "" && strings.TrimFunc(opt.unit, unicode.IsSpace) != "" {
		return nil, fmt.Errorf("%w: unit %q is not whitespace", ErrIndent, opt.unit)
	}
	return &Classifier{
		opt:  opt,
		doc:  &PosDoc{d: d},
		unit: opt.unit,
	}, nil
}

// Next returns the next classified line, or nil at end of input.
func (c *Classifier) Next() (*Line, error) {
	d := c.doc.d
	if c.off >= len(d) {
		return nil, nil
	}
	start := c.off
	end := start
	for end < len(d) && d[end] != '\n' {
		end++
	}
	if end < len(d) {
		c.doc.nl(end)
		c.off = end + 1
	} else {
		c.off = end
	}
	line := d[start:end]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if !utf8.Valid(line) {
		return nil, NewClassifyErr(ErrEncoding, c.doc.Pos(start))
	}
	return c.classify(string(line), start)
}

func (c *Classifier) classify(line string, start int) (*Line, error) {
	w := 0
	for w < len(line) && (line[w] == ' ' || line[w] == '\t') {
		w++
	}
	ws, rest := line[:w], line[w:]
	if strings.TrimSpace(rest) == "" {
		return &Line{Type: LineBlank, Pos: c.doc.Pos(start)}, nil
	}
	if strings.HasPrefix(rest, c.opt.marker) {
		return &Line{Type: LineComment, Pos: c.doc.Pos(start)}, nil
	}

	depth, err := c.depth(ws, start)
	if err != nil {
		return nil, err
	}
	keyPos := c.doc.Pos(start + w)
	key, after, err := splitKey(rest)
	if err != nil {
		return nil, NewClassifyErr(err, keyPos)
	}
	val := strings.TrimLeftFunc(after, unicode.IsSpace)
	valPos := c.doc.Pos(start + len(line) - len(val))
	val = strings.TrimRightFunc(val, unicode.IsSpace)
	ln := &Line{
		Type:  LineContent,
		Depth: depth,
		Key:   key,
		Pos:   keyPos,
	}
	if val == "" {
		return ln, nil
	}
	if val[0] == '"' {
		uq, err := Unquote(val)
		if err != nil {
			return nil, NewClassifyErr(err, valPos)
		}
		val = uq
	}
	ln.Value = &val
	return ln, nil
}

// depth converts leading whitespace to a nesting depth. The first
// indented content line fixes the unit; later lines must repeat it
// exactly.
func (c *Classifier) depth(ws string, start int) (int, error) {
	if ws == "" {
		return 0, nil
	}
	if c.unit == "" {
		c.unit = ws
		return 1, nil
	}
	q := len(ws) / len(c.unit)
	if len(ws)%len(c.unit) != 0 || ws != strings.Repeat(c.unit, q) {
		return 0, NewClassifyErr(
			fmt.Errorf("%w: %q against unit %q", ErrIndent, ws, c.unit),
			c.doc.Pos(start))
	}
	return q, nil
}

func splitKey(rest string) (key, after string, err error) {
	if rest[0] == '"' {
		n, err := quotedLen([]byte(rest))
		if err != nil {
			return "", "", err
		}
		after = rest[n:]
		if after != "" {
			r, _ := utf8.DecodeRuneInString(after)
			if !unicode.IsSpace(r) {
				return "", "", ErrTrailing
			}
		}
		return QuotedToString([]byte(rest)[:n]), after, nil
	}
	i := strings.IndexFunc(rest, unicode.IsSpace)
	if i < 0 {
		return rest, "", nil
	}
	return rest[:i], rest[i:], nil
}
