package models

import "encoding/json"

// NoteID is an opaque note identifier. The wrapped value (a string or a
// number) is sent to the server exactly as supplied.
type NoteID struct {
	value any
}

// NewNoteID wraps v without validating or converting it.
func NewNoteID(v any) NoteID {
	return NoteID{value: v}
}

// Value returns the wrapped identifier.
func (id NoteID) Value() any {
	return id.value
}

// IsZero reports whether no identifier was wrapped.
func (id NoteID) IsZero() bool {
	return id.value == nil
}

// MarshalJSON encodes the wrapped value itself, so NewNoteID("abc123")
// becomes "abc123" and NewNoteID(7) becomes 7.
func (id NoteID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON keeps whatever JSON value the identifier was encoded as.
func (id *NoteID) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	id.value = v
	return nil
}

// DeleteNoteRequest is the body of POST /delete-note.
type DeleteNoteRequest struct {
	NoteID NoteID `json:"noteId"`
}
