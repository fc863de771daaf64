package parser

import (
	"fmt"
	"strings"
)

// FieldSummary is the denormalized per-record view of one field.
type FieldSummary struct {
	Name       string   `yaml:"name"`
	Row        int      `yaml:"row"`
	Col        int      `yaml:"col"`
	Length     int      `yaml:"length"`
	Attributes []string `yaml:"attributes,omitempty"`
	LineNo     int      `yaml:"line"`
}

// ConstantSummary is the denormalized per-record view of one constant.
// Name is the literal text with surrounding quotes stripped.
type ConstantSummary struct {
	Name       string   `yaml:"name"`
	Row        int      `yaml:"row"`
	Col        int      `yaml:"col"`
	Length     int      `yaml:"length"`
	Attributes []string `yaml:"attributes,omitempty"`
	LineNo     int      `yaml:"line"`
}

// RecordMirror is the per-record lookup entry kept alongside the element
// tree for fast access by downstream features.
type RecordMirror struct {
	Name       string            `yaml:"name"`
	Attributes []string          `yaml:"attributes,omitempty"`
	Fields     []FieldSummary    `yaml:"fields,omitempty"`
	Constants  []ConstantSummary `yaml:"constants,omitempty"`
	StartLine  int               `yaml:"start_line"`
	EndLine    int               `yaml:"end_line"`
	Size       RecordSize        `yaml:"size"`
}

// buildMirror derives the per-record mirror from the linked element list:
// record boundaries, resolved sizes, flattened attributes, and
// deduplicated field/constant summaries (first occurrence wins).
func buildMirror(elements []Element, records []*Record, docLines int, size SizeAttributes) ([]*RecordMirror, []Finding) {
	var findings []Finding

	mirrors := make([]*RecordMirror, 0, len(records))
	byName := make(map[string]*RecordMirror, len(records))

	for i, record := range records {
		end := docLines - 1
		if i+1 < len(records) {
			end = records[i+1].StartLine - 1
		}

		record.EndLine = end
		record.Size = resolveRecordSize(record, size.Primary)

		mirror := &RecordMirror{
			Name:       record.Name,
			Attributes: flattenValues(record.Attributes),
			StartLine:  record.StartLine,
			EndLine:    end,
			Size:       record.Size,
		}

		mirrors = append(mirrors, mirror)

		if _, exists := byName[record.Name]; !exists {
			byName[record.Name] = mirror
		}
	}

	for _, element := range elements {
		switch e := element.(type) {
		case *Field:
			mirror := byName[e.RecordName]
			if mirror == nil {
				continue
			}

			if mirror.hasField(e.Name) {
				findings = append(findings, duplicateFinding(e.Name, e.RecordName, e.LineNo))
				continue
			}

			mirror.Fields = append(mirror.Fields, FieldSummary{
				Name:       e.Name,
				Row:        e.Row,
				Col:        e.Col,
				Length:     e.Length,
				Attributes: flattenValues(e.Attributes),
				LineNo:     e.LineNo,
			})
		case *Constant:
			mirror := byName[e.RecordName]
			if mirror == nil {
				continue
			}

			name := stripQuotes(e.Name)
			if mirror.hasConstant(name) {
				findings = append(findings, duplicateFinding(name, e.RecordName, e.LineNo))
				continue
			}

			mirror.Constants = append(mirror.Constants, ConstantSummary{
				Name:       name,
				Row:        e.Row,
				Col:        e.Col,
				Length:     len(name),
				Attributes: flattenValues(e.Attributes),
				LineNo:     e.LineNo,
			})
		}
	}

	for _, mirror := range mirrors {
		if len(mirror.Fields) == 0 && len(mirror.Constants) == 0 {
			findings = append(findings, Finding{
				Kind:    FindingEmptyRecord,
				LineNo:  mirror.StartLine,
				Message: fmt.Sprintf("record %s has no positioned elements", mirror.Name),
			})
		}
	}

	return mirrors, findings
}

func (m *RecordMirror) hasField(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}

	return false
}

func (m *RecordMirror) hasConstant(name string) bool {
	for _, c := range m.Constants {
		if c.Name == name {
			return true
		}
	}

	return false
}

func duplicateFinding(name, recordName string, line int) Finding {
	return Finding{
		Kind:    FindingDuplicateName,
		LineNo:  line,
		Message: fmt.Sprintf("duplicate name %s in record %s, first occurrence wins", name, recordName),
	}
}

// flattenValues collects the bare keyword values of an attribute list.
func flattenValues(specs []AttributeSpec) []string {
	if len(specs) == 0 {
		return nil
	}

	values := make([]string, 0, len(specs))
	for _, spec := range specs {
		values = append(values, spec.Value)
	}

	return values
}

// stripQuotes removes one pair of surrounding single quotes, if present.
func stripQuotes(text string) string {
	if len(text) >= 2 && strings.HasPrefix(text, "'") && strings.HasSuffix(text, "'") {
		return text[1 : len(text)-1]
	}

	return text
}
