package parser

import "github.com/christianlarsen/dspf-edit/linescan"

// Options configure a parse. The zero value means the standard sequence
// area width and the documented 24x80 fallback geometry.
type Options struct {
	// SequenceAreaWidth is the leading region stripped from every line
	// before column offsets apply. Negative means the default.
	SequenceAreaWidth int
	// Fallback is the geometry used when the sizing keyword is absent or
	// malformed. Zero means 24x80.
	Fallback Geometry
}

// ParseResult is the complete outcome of one parse: the element tree
// (File first, attributes folded into their owners), the per-record
// mirror, the resolved display sizes, and structural findings. It is a
// plain value owned by the caller; nothing in it is shared with later
// parses.
type ParseResult struct {
	Elements []Element
	Records  []*RecordMirror
	Size     SizeAttributes
	Findings []Finding
}

// File returns the root element.
func (r *ParseResult) File() *File {
	return r.Elements[0].(*File)
}

// Record returns the mirror entry for the named record, or nil.
func (r *ParseResult) Record(name string) *RecordMirror {
	for _, mirror := range r.Records {
		if mirror.Name == name {
			return mirror
		}
	}

	return nil
}

// Parse builds the element tree and mirror index for one document. It
// never fails: malformed input degrades to absent or default values, and
// anything structurally surprising is reported through Findings.
func Parse(text string, options ...Options) *ParseResult {
	opts := Options{SequenceAreaWidth: linescan.DefaultSequenceAreaWidth}
	if len(options) > 0 {
		opts = options[0]
		if opts.SequenceAreaWidth < 0 {
			opts.SequenceAreaWidth = linescan.DefaultSequenceAreaWidth
		}
	}

	fallback := opts.Fallback
	if fallback.Rows <= 0 || fallback.Cols <= 0 {
		fallback = DefaultGeometry
	}

	scanner := linescan.NewScanner(text, linescan.Options{
		SequenceAreaWidth: opts.SequenceAreaWidth,
	})

	b := newBuilder(scanner)
	elements := b.run()

	linkOwners(elements)

	visible := dropAttributes(elements)
	file := visible[0].(*File)
	size := resolveSizeAttributes(file, fallback)

	mirrors, mirrorFindings := buildMirror(visible, b.records, scanner.Len(), size)

	return &ParseResult{
		Elements: visible,
		Records:  mirrors,
		Size:     size,
		Findings: append(b.findings, mirrorFindings...),
	}
}
