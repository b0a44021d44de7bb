package state

import (
	"github.com/google/uuid"
)

// NewID is replaced in tests that need predictable identifiers.
var NewID = func() string {
	return uuid.NewString()
}
