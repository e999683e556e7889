package token

import "fmt"

type LineType int

const (
	LineBlank LineType = iota
	LineComment
	LineContent
)

func (t LineType) String() string {
	return map[LineType]string{
		LineBlank:   "LineBlank",
		LineComment: "LineComment",
		LineContent: "LineContent",
	}[t]
}

// Line is one classified input line. Value is nil when the content line
// had nothing after its key. Depth and Key are meaningful only for
// LineContent.
type Line struct {
	Type  LineType
	Depth int
	Key   string
	Value *string
	Pos   *Pos
}

func (l *Line) Info() string {
	return fmt.Sprintf("%s %s", l.Type, l.Pos.String())
}

type ClassifyErr struct {
	Err error
	Pos Pos
}

func (e *ClassifyErr) Unwrap() error {
	return e.Err
}

func NewClassifyErr(err error, p *Pos) *ClassifyErr {
	return &ClassifyErr{Err: err, Pos: *p}
}

func (e *ClassifyErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
