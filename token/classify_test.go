package token

import (
	"errors"
	"testing"
)

func str(s string) *string { return &s }

type classifyCase struct {
	name string
	in   string
	opts []Opt
	want []Line
	e    error
}

func TestClassify(t *testing.T) {
	cases := []classifyCase{
		{
			name: "empty",
			in:   "",
			want: []Line{},
		},
		{
			name: "key value",
			in:   "Key Value",
			want: []Line{{Type: LineContent, Key: "Key", Value: str("Value")}},
		},
		{
			name: "key only",
			in:   "Key",
			want: []Line{{Type: LineContent, Key: "Key"}},
		},
		{
			name: "value keeps interior spaces",
			in:   "Exec do the thing  now",
			want: []Line{{Type: LineContent, Key: "Exec", Value: str("do the thing  now")}},
		},
		{
			name: "blank and comment",
			in:   "a\n\n   \n# note\n  # indented note\nb",
			want: []Line{
				{Type: LineContent, Key: "a"},
				{Type: LineBlank},
				{Type: LineBlank},
				{Type: LineComment},
				{Type: LineComment},
				{Type: LineContent, Key: "b"},
			},
		},
		{
			name: "learned two space unit",
			in:   "a\n  b\n    c\n  d",
			want: []Line{
				{Type: LineContent, Key: "a"},
				{Type: LineContent, Depth: 1, Key: "b"},
				{Type: LineContent, Depth: 2, Key: "c"},
				{Type: LineContent, Depth: 1, Key: "d"},
			},
		},
		{
			name: "learned tab unit",
			in:   "a\n\tb\n\t\tc",
			want: []Line{
				{Type: LineContent, Key: "a"},
				{Type: LineContent, Depth: 1, Key: "b"},
				{Type: LineContent, Depth: 2, Key: "c"},
			},
		},
		{
			name: "crlf",
			in:   "a v\r\n\tb w\r\n",
			want: []Line{
				{Type: LineContent, Key: "a", Value: str("v")},
				{Type: LineContent, Depth: 1, Key: "b", Value: str("w")},
			},
		},
		{
			name: "quoted key",
			in:   `"my key" value`,
			want: []Line{{Type: LineContent, Key: "my key", Value: str("value")}},
		},
		{
			name: "quoted value",
			in:   `key "a b"`,
			want: []Line{{Type: LineContent, Key: "key", Value: str("a b")}},
		},
		{
			name: "quoted empty value",
			in:   `key ""`,
			want: []Line{{Type: LineContent, Key: "key", Value: str("")}},
		},
		{
			name: "escapes",
			in:   `key "tab\there\nand \"quotes\""`,
			want: []Line{{Type: LineContent, Key: "key", Value: str("tab\there\nand \"quotes\"")}},
		},
		{
			name: "interior quote stays raw",
			in:   `key say "hi" loudly`,
			want: []Line{{Type: LineContent, Key: "key", Value: str(`say "hi" loudly`)}},
		},
		{
			name: "alternate marker",
			in:   "; note\nkey v",
			opts: []Opt{Marker(";")},
			want: []Line{
				{Type: LineComment},
				{Type: LineContent, Key: "key", Value: str("v")},
			},
		},
		{
			name: "fixed unit",
			in:   "a\n    b",
			opts: []Opt{Unit("    ")},
			want: []Line{
				{Type: LineContent, Key: "a"},
				{Type: LineContent, Depth: 1, Key: "b"},
			},
		},
		{
			name: "ragged indent",
			in:   "a\n  b\n   c",
			e:    ErrIndent,
		},
		{
			name: "tab against space unit",
			in:   "a\n  b\n\tc",
			e:    ErrIndent,
		},
		{
			name: "fixed unit violated",
			in:   "a\n\tb",
			opts: []Opt{Unit("  ")},
			e:    ErrIndent,
		},
		{
			name: "unterminated value quote",
			in:   `key "oops`,
			e:    ErrUnterminated,
		},
		{
			name: "junk after quoted key",
			in:   `"key"x v`,
			e:    ErrTrailing,
		},
		{
			name: "junk after quoted value",
			in:   `key "a" b`,
			e:    ErrTrailing,
		},
		{
			name: "bad escape",
			in:   `key "\q"`,
			e:    ErrBadEscape,
		},
		{
			name: "invalid utf8",
			in:   "key \xff\n",
			e:    ErrEncoding,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := Classify([]byte(tc.in), tc.opts...)
			if tc.e != nil {
				if err == nil {
					t.Fatalf("expected %v, got lines %v", tc.e, lines)
				}
				if !errors.Is(err, tc.e) {
					t.Fatalf("expected %v, got %v", tc.e, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(lines) != len(tc.want) {
				t.Fatalf("got %d lines, want %d: %+v", len(lines), len(tc.want), lines)
			}
			for i := range lines {
				got, want := lines[i], tc.want[i]
				if got.Type != want.Type {
					t.Errorf("line %d: type %s, want %s", i, got.Type, want.Type)
				}
				if got.Type != LineContent {
					continue
				}
				if got.Depth != want.Depth {
					t.Errorf("line %d: depth %d, want %d", i, got.Depth, want.Depth)
				}
				if got.Key != want.Key {
					t.Errorf("line %d: key %q, want %q", i, got.Key, want.Key)
				}
				switch {
				case got.Value == nil && want.Value != nil:
					t.Errorf("line %d: no value, want %q", i, *want.Value)
				case got.Value != nil && want.Value == nil:
					t.Errorf("line %d: value %q, want none", i, *got.Value)
				case got.Value != nil && *got.Value != *want.Value:
					t.Errorf("line %d: value %q, want %q", i, *got.Value, *want.Value)
				}
			}
		})
	}
}

func TestClassifierUnitFrozen(t *testing.T) {
	// the first indented content line commits the unit for the rest of
	// the document
	_, err := Classify([]byte("a\n\tb\nc\n  d"))
	if !errors.Is(err, ErrIndent) {
		t.Fatalf("expected %v, got %v", ErrIndent, err)
	}
}

func TestClassifyPositions(t *testing.T) {
	lines, err := Classify([]byte("a\n  b v\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lines[0].Pos.Line(); got != 0 {
		t.Errorf("line 0 at %d", got)
	}
	if got := lines[1].Pos.Line(); got != 1 {
		t.Errorf("line 1 at %d", got)
	}
	if got := lines[1].Pos.Col(); got != 2 {
		t.Errorf("line 1 key col %d, want 2", got)
	}
}
