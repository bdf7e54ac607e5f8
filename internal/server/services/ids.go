package services

import (
	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/google/uuid"
)

// isID reports whether s can be stored in a UUID column.
func isID(s string) bool {
	return uuid.Validate(s) == nil
}

// checkIDs takes field/value pairs and rejects the first non-empty value
// that is not a UUID.
func checkIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if v := pairs[i+1]; v != "" && !isID(v) {
			return common.Invalid(pairs[i], "must be a UUID")
		}
	}
	return nil
}
