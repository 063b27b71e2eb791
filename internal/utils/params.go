package utils

import (
	"strconv"
	"strings"
)

// ParamsToIDs converts a comma-separated query value like "1,2,3" into a
// list of ids. A non-integer token fails the whole list so the handler can
// answer 400 instead of silently dropping it.
func ParamsToIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if id < 0 {
			return nil, strconv.ErrRange
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
