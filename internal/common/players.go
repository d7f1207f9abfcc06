package common

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// PlaceholderPlayerID is the id given to the player at zero-based index i when none was supplied.
func PlaceholderPlayerID(i int) string {
	return "p" + strconv.Itoa(i+1)
}

// PlaceholderPlayerName is the display name given to the player at zero-based index i when none was supplied.
func PlaceholderPlayerName(i int) string {
	return "Spelare " + strconv.Itoa(i+1)
}

// ScalarString stringifies a decoded JSON scalar and trims it. null, objects and arrays yield "".
func ScalarString(v interface{}) string {
	switch v.(type) {
	case nil, map[string]interface{}, []interface{}:
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

// NonNegativeInt coerces a decoded JSON value to an int: numbers truncate, numeric strings parse,
// anything else is 0. Negative results clamp to 0.
func NonNegativeInt(v interface{}) int {
	var n int
	if s, ok := v.(string); ok {
		// strings are always decimal: "010" is 10
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return 0
		}
		n = int(f)
	} else {
		var err error
		n, err = cast.ToIntE(v)
		if err != nil {
			f, ferr := cast.ToFloat64E(v)
			if ferr != nil {
				return 0
			}
			n = int(f)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}
