package parser

import "strings"

// Keywords with fixed meaning to the size resolver.
const (
	subfileKeyword = "SFL"
	sizeKeyword    = "DSPSIZ"
	windowKeyword  = "WINDOW"
)

// Predefined display sizes selectable by name in the sizing keyword.
const (
	displaySizeName3 = "*DS3" // 24x80
	displaySizeName4 = "*DS4" // 27x132
)

// SizeSource says where a record's resolved size came from.
type SizeSource string

const (
	SizeSourceDefault SizeSource = "default"
	SizeSourceWindow  SizeSource = "window"
)

// Geometry is one display size: dimensions plus the optional predefined
// name it was declared under.
type Geometry struct {
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
	Name string `yaml:"name,omitempty"`
}

// DefaultGeometry is the documented fallback when the sizing keyword is
// absent or malformed.
var DefaultGeometry = Geometry{Rows: 24, Cols: 80}

// SizeAttributes is the document-level resolution of the sizing keyword:
// the primary display size and, when declared, a secondary one.
type SizeAttributes struct {
	Primary   Geometry  `yaml:"primary"`
	Secondary *Geometry `yaml:"secondary,omitempty"`
}

// RecordSize is a record's resolved screen area. Origin is (1,1) for the
// document default and the window start position for windowed records.
type RecordSize struct {
	Rows      int        `yaml:"rows"`
	Cols      int        `yaml:"cols"`
	OriginRow int        `yaml:"origin_row"`
	OriginCol int        `yaml:"origin_col"`
	Source    SizeSource `yaml:"source"`
}

// resolveSizeAttributes reads the file-level attribute list for the
// sizing keyword and resolves up to two geometries, falling back to the
// given default when the keyword is absent or yields none.
func resolveSizeAttributes(file *File, fallback Geometry) SizeAttributes {
	for _, attr := range file.Attributes {
		arg, ok := keywordArgument(attr.Value, sizeKeyword)
		if !ok {
			continue
		}

		geometries := parseGeometries(arg)
		if len(geometries) == 0 {
			break
		}

		size := SizeAttributes{Primary: geometries[0]}
		if len(geometries) > 1 {
			secondary := geometries[1]
			size.Secondary = &secondary
		}

		return size
	}

	return SizeAttributes{Primary: fallback}
}

// parseGeometries parses the argument list of the sizing keyword
// left-to-right: a predefined-name token consumes one token; a numeric
// token consumes itself, the next numeric token, and optionally a
// following predefined-name token. At most two geometries are kept.
func parseGeometries(arg string) []Geometry {
	tokens := strings.Fields(arg)

	var out []Geometry

	for i := 0; i < len(tokens) && len(out) < 2; i++ {
		token := tokens[i]

		if strings.HasPrefix(token, "*") {
			if g, ok := predefinedGeometry(token); ok {
				out = append(out, g)
			}

			continue
		}

		rows := parsePositive(token)
		if rows == 0 || i+1 >= len(tokens) {
			break
		}

		cols := parsePositive(tokens[i+1])
		if cols == 0 {
			break
		}

		i++

		g := Geometry{Rows: rows, Cols: cols}

		if i+1 < len(tokens) && strings.HasPrefix(tokens[i+1], "*") {
			i++
			g.Name = tokens[i]
		}

		out = append(out, g)
	}

	return out
}

func predefinedGeometry(name string) (Geometry, bool) {
	switch name {
	case displaySizeName3:
		return Geometry{Rows: 24, Cols: 80, Name: name}, true
	case displaySizeName4:
		return Geometry{Rows: 27, Cols: 132, Name: name}, true
	default:
		return Geometry{}, false
	}
}

// resolveRecordSize gives a record its final size: the window geometry
// when a well-formed windowing keyword is attached, otherwise the
// document default with origin (1,1).
func resolveRecordSize(record *Record, def Geometry) RecordSize {
	for _, attr := range record.Attributes {
		arg, ok := keywordArgument(attr.Value, windowKeyword)
		if !ok {
			continue
		}

		args := strings.Fields(arg)
		if len(args) < 4 {
			break
		}

		startRow := parsePositive(args[0])
		startCol := parsePositive(args[1])
		rows := parsePositive(args[2])
		cols := parsePositive(args[3])

		if startRow == 0 || startCol == 0 || rows == 0 || cols == 0 {
			break
		}

		return RecordSize{
			Rows:      rows,
			Cols:      cols,
			OriginRow: startRow,
			OriginCol: startCol,
			Source:    SizeSourceWindow,
		}
	}

	return RecordSize{
		Rows:      def.Rows,
		Cols:      def.Cols,
		OriginRow: 1,
		OriginCol: 1,
		Source:    SizeSourceDefault,
	}
}

// keywordArgument extracts the parenthesized argument of value when value
// is an invocation of the named keyword, e.g. "DSPSIZ(24 80)" -> "24 80".
// It returns false for other keywords and for a missing closing
// parenthesis.
func keywordArgument(value, keyword string) (string, bool) {
	if !strings.HasPrefix(value, keyword+"(") {
		return "", false
	}

	rest := value[len(keyword)+1:]

	end := strings.LastIndexByte(rest, ')')
	if end < 0 {
		return "", false
	}

	return rest[:end], true
}

// parsePositive parses a strictly positive decimal token, 0 otherwise.
func parsePositive(token string) int {
	n := 0

	for _, r := range token {
		if r < '0' || r > '9' {
			return 0
		}

		n = n*10 + int(r-'0')
	}

	return n
}
