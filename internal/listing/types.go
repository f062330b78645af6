package listing

// Field names a user-editable listing field.
type Field string

const (
	FieldTitle       Field = "title"
	FieldPrice       Field = "price"
	FieldLocation    Field = "location"
	FieldDescription Field = "description"
)

// Fields lists every draft field in form order.
var Fields = []Field{FieldTitle, FieldPrice, FieldLocation, FieldDescription}

// ParseField maps a raw field name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Draft is an unsaved listing exactly as typed by the user.
type Draft struct {
	Title       string
	Price       string
	Location    string
	Description string
}

// Get returns the raw value of f.
func (d Draft) Get(f Field) (string, error) {
	switch f {
	case FieldTitle:
		return d.Title, nil
	case FieldPrice:
		return d.Price, nil
	case FieldLocation:
		return d.Location, nil
	case FieldDescription:
		return d.Description, nil
	}
	return "", ErrUnknownField
}

// Set replaces the raw value of f.
func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldPrice:
		d.Price = value
	case FieldLocation:
		d.Location = value
	case FieldDescription:
		d.Description = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Submission is the normalized payload derived from a valid Draft.
type Submission struct {
	Title       string
	Price       float64
	Location    string
	Description string
}

// ErrorMap maps a field to its validation message. An empty map means valid.
type ErrorMap map[Field]string

// Valid reports whether no field has an error.
func (m ErrorMap) Valid() bool {
	return len(m) == 0
}

// Clone returns an independent copy of m.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
