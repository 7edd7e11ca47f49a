package service

import "encoding/json"

// OptionalString distinguishes the three states a JSON field can take in a
// partial update: absent, explicit null, and a concrete value. An absent key
// never reaches UnmarshalJSON, so Set stays false and the stored value is kept;
// an explicit null arrives with Set=true, Valid=false and clears the field.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON records presence before decoding the payload.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Valid = true
	o.Value = value
	return nil
}

// Ptr returns the pointer representation used by the persistence layer:
// nil for an explicit null, the decoded value otherwise. Callers must check
// Set before applying the result.
func (o OptionalString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	value := o.Value
	return &value
}
