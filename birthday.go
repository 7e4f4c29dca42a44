package dbsapi

import "encoding/json"

// Birthday is a student listed in the home page birthday box.
type Birthday struct {
	Name    string
	Class   string
	Section string
}

// String formats the birthday as "Name (Class Section)".
func (b Birthday) String() string {
	return b.Name + " (" + b.Class + " " + b.Section + ")"
}

// MarshalJSON encodes the birthday as a [name, class, section] tuple.
func (b Birthday) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{b.Name, b.Class, b.Section})
}

// FormatBirthdays returns each birthday in its String form.
func FormatBirthdays(birthdays []Birthday) []string {
	out := make([]string, 0, len(birthdays))
	for _, b := range birthdays {
		out = append(out, b.String())
	}
	return out
}
