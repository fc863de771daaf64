package parser

// linkOwners attaches every free-standing Attribute element to its owner:
// the nearest preceding field or constant, else the nearest preceding
// record, else the file. One forward pass with three tracked owner
// pointers is equivalent to a reverse scan per attribute over line order.
func linkOwners(elements []Element) {
	var (
		file         *File
		record       *Record
		fieldOrConst *[]AttributeSpec
	)

	for _, element := range elements {
		switch e := element.(type) {
		case *File:
			file = e
		case *Record:
			record = e
			fieldOrConst = nil
		case *Field:
			fieldOrConst = &e.Attributes
		case *Constant:
			fieldOrConst = &e.Attributes
		case *Attribute:
			specs := attributeSpecs(splitKeywords(e.Value), e.Indicators)

			switch {
			case fieldOrConst != nil:
				*fieldOrConst = append(*fieldOrConst, specs...)
			case record != nil:
				record.Attributes = append(record.Attributes, specs...)
			case file != nil:
				file.Attributes = append(file.Attributes, specs...)
			}
		}
	}
}

// dropAttributes removes Attribute elements from the externally visible
// list once they have been folded into their owners.
func dropAttributes(elements []Element) []Element {
	visible := make([]Element, 0, len(elements))

	for _, element := range elements {
		if element.Kind() == KindAttribute {
			continue
		}

		visible = append(visible, element)
	}

	return visible
}
