package types

import "fmt"

// Record is a stored entry: a name, an email address, and an age.
//
// ID is metadata assigned by the store from its own monotonically
// increasing counter (starting at 0, never reused, never reset). It
// plays no part in record identity: stores deduplicate on the value
// triple (Name, Email, Age) alone.
type Record struct {
	ID    int    // Assigned by the store on Add; ignored on input.
	Name  string // Free-form text.
	Email string // Free-form text; not validated.
	Age   int    // Non-negative.
}

// String renders the record in the tracker's list format.
func (r Record) String() string {
	return fmt.Sprintf("%s, age %d, email %s, #%d", r.Name, r.Age, r.Email, r.ID)
}

// Field returns the record field named by key as a Value.
// Used by stores to compare records against query values.
func (r Record) Field(key Key) (Value, error) {
	switch key {
	case KeyName:
		return Text(r.Name), nil
	case KeyEmail:
		return Text(r.Email), nil
	case KeyAge:
		return Int(r.Age), nil
	case KeyID:
		return Int(r.ID), nil
	default:
		return Value{}, ErrUnknownKey
	}
}
