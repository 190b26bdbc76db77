package entity

import "github.com/google/uuid"

// IDGenerator returns a fresh primary key for a new row.
type IDGenerator func() string

// PrefixedID generates ids like "thread-0190b5a4-...". uuid v7 keeps them roughly time ordered.
func PrefixedID(prefix string) IDGenerator {
	return func() string {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		return prefix + "-" + id.String()
	}
}
