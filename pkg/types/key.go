package types

import (
	"strconv"
	"strings"
)

// Key selects which Record field a query targets.
type Key string

// Recognized keys.
const (
	KeyName  Key = "name"
	KeyEmail Key = "email"
	KeyAge   Key = "age"
	KeyID    Key = "id"
)

// validKeys is the set of recognized key values.
var validKeys = map[Key]bool{
	KeyName:  true,
	KeyEmail: true,
	KeyAge:   true,
	KeyID:    true,
}

// ParseKey parses s, case-insensitively, as a Key.
// Returns ErrUnknownKey if s names no Record field.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if !validKeys[k] {
		return "", ErrUnknownKey
	}
	return k, nil
}

// Kind of value a Key expects.
const (
	KindText = "text"
	KindInt  = "int"
)

// Kind returns the value kind this key expects: KindText for name and
// email, KindInt for age and id.
func (k Key) Kind() string {
	switch k {
	case KeyAge, KeyID:
		return KindInt
	default:
		return KindText
	}
}

// Value is a query operand tagged with its kind. Construct one with
// Text, Int, or Key.ParseValue; the zero Value matches nothing.
//
// The tag makes a kind mismatch unconstructible through ParseValue,
// while ErrTypeMismatch remains part of the store contract for values
// built directly with the wrong constructor.
type Value struct {
	kind string
	text string
	num  int
}

// Text returns a text-kinded Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Int returns an integer-kinded Value.
func Int(n int) Value {
	return Value{kind: KindInt, num: n}
}

// Kind returns the value's kind tag.
func (v Value) Kind() string {
	return v.kind
}

// Text returns the text payload. Meaningful only when Kind is KindText.
func (v Value) Text() string {
	return v.text
}

// Int returns the integer payload. Meaningful only when Kind is KindInt.
func (v Value) Int() int {
	return v.num
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// ParseValue parses one line of input into a Value of the kind this key
// expects. Text keys take the line verbatim; integer keys parse it with
// strconv.Atoi and return ErrNotANumber on failure.
func (k Key) ParseValue(line string) (Value, error) {
	if k.Kind() == KindInt {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return Value{}, ErrNotANumber
		}
		return Int(n), nil
	}
	return Text(line), nil
}
