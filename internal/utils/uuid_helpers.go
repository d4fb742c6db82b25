package utils

import "github.com/google/uuid"

// ParseUUIDPtr parses s into a uuid pointer; a blank s yields nil.
func ParseUUIDPtr(s string) (*uuid.UUID, error) {
	if IsBlank(s) {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	return &id, nil
}
