// Package parser turns DDS display source text into a typed element tree
// plus a per-record mirror index. The parse is a pure synchronous
// transform: nothing in it is fatal, malformed input degrades to absent
// or default values.
package parser

import "github.com/christianlarsen/dspf-edit/linescan"

// ElementKind tags the variants of Element.
type ElementKind int

const (
	KindFile ElementKind = iota
	KindRecord
	KindField
	KindConstant
	KindAttribute
)

// String returns the string representation of ElementKind.
func (k ElementKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindRecord:
		return "record"
	case KindField:
		return "field"
	case KindConstant:
		return "constant"
	case KindAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// Element is the sum type over the node variants of the tree. Dispatch on
// Kind and cast to the concrete variant; each variant carries only the
// fields meaningful to it.
type Element interface {
	Kind() ElementKind
	// Line is the 0-based index of the source line where the element
	// begins.
	Line() int
}

// AttributeSpec is one keyword value attached to an owner, together with
// the conditioning indicators of the line it came from.
type AttributeSpec struct {
	Value      string
	Indicators []linescan.Indicator
}

// File is the root singleton. It collects keywords not tied to any
// record, field, or constant.
type File struct {
	Attributes []AttributeSpec
}

func (f *File) Kind() ElementKind { return KindFile }
func (f *File) Line() int         { return 0 }

// Record is a named group of fields and constants. EndLine is inclusive
// and finalized after the whole document is scanned.
type Record struct {
	Name       string
	StartLine  int
	EndLine    int
	Size       RecordSize
	Attributes []AttributeSpec
}

func (r *Record) Kind() ElementKind { return KindRecord }
func (r *Record) Line() int         { return r.StartLine }

// IsSubfile reports whether any attached attribute value equals the
// subfile marker keyword exactly.
func (r *Record) IsSubfile() bool {
	for _, attr := range r.Attributes {
		if attr.Value == subfileKeyword {
			return true
		}
	}

	return false
}

// Usage is the one-column usage flag of a field.
type Usage byte

const (
	UsageOutput Usage = 'O'
	UsageInput  Usage = 'I'
	UsageBoth   Usage = 'B'
	UsageHidden Usage = 'H'
	// UsageDefault is a blank usage column, equivalent to output.
	UsageDefault Usage = ' '
)

// Hidden reports whether the field has no screen position.
func (u Usage) Hidden() bool { return u == UsageHidden }

// Field is a named, typed, positioned data item. Row and Col are 0 when
// the field is hidden.
type Field struct {
	Name       string
	Type       byte
	Length     int
	Decimals   int
	Usage      Usage
	Row        int
	Col        int
	Referenced bool
	RecordName string
	LineNo     int
	Indicators []linescan.Indicator
	Attributes []AttributeSpec
}

func (f *Field) Kind() ElementKind { return KindField }
func (f *Field) Line() int         { return f.LineNo }

// Constant is fixed literal text at a screen position. Name keeps the
// surrounding quotes; the mirror summary strips them. LastLine is the
// index of the final physical line of a multi-line literal.
type Constant struct {
	Name       string
	Row        int
	Col        int
	RecordName string
	LineNo     int
	LastLine   int
	Indicators []linescan.Indicator
	Attributes []AttributeSpec
}

func (c *Constant) Kind() ElementKind { return KindConstant }
func (c *Constant) Line() int         { return c.LineNo }

// Attribute is a free-standing keyword line. After ownership linking,
// attributes are folded into their owners and removed from the visible
// element list.
type Attribute struct {
	Value      string
	LineNo     int
	LastLine   int
	Indicators []linescan.Indicator
}

func (a *Attribute) Kind() ElementKind { return KindAttribute }
func (a *Attribute) Line() int         { return a.LineNo }
