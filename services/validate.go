package services

import (
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

type requiredField struct {
	name  string
	value string
}

// checkRequired returns a MissingFieldError for the first empty field, in
// declaration order.
func checkRequired(fields []requiredField) error {
	for _, f := range fields {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// toNotes converts the untyped notes value from a PATCH body. nil means the
// field was absent; anything other than a list of strings is rejected.
func toNotes(v interface{}) (models.StringList, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, false, ErrInvalidNotes
	}
	notes := make(models.StringList, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false, ErrInvalidNotes
		}
		notes = append(notes, s)
	}
	return notes, true, nil
}
