package world

// FieldType is the static classification of a grid cell.
type FieldType uint8

const (
	FieldNone FieldType = iota
	FieldWall
	FieldLava
)

// String returns the field name used by renderers, or "" for empty cells.
func (f FieldType) String() string {
	switch f {
	case FieldWall:
		return "wall"
	case FieldLava:
		return "lava"
	default:
		return ""
	}
}

// Kind returns the contact kind reported when something runs into the field.
func (f FieldType) Kind() Kind {
	switch f {
	case FieldWall:
		return KindWall
	case FieldLava:
		return KindLava
	default:
		return KindNone
	}
}

// fieldForGlyph maps static plan glyphs to field types.
func fieldForGlyph(ch byte) (FieldType, bool) {
	switch ch {
	case ' ':
		return FieldNone, true
	case 'x':
		return FieldWall, true
	case '!':
		return FieldLava, true
	default:
		return FieldNone, false
	}
}
