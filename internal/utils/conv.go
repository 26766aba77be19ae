package utils

import (
	"strconv"
)

// StringToUint converts a path or query parameter to a uint id,
// returning 0 when it does not parse.
func StringToUint(s string) uint {
	i, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(i)
}
