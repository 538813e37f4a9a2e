package tools

import (
	"encoding/json"
	"math"

	"github.com/uservault/uservault/users"
)

// intArg reads an integer argument. JSON numbers arrive as float64; only
// integral values pass. Strings and other types are rejected so that a
// crafted value can never reach a statement.
func intArg(args map[string]any, key, msg string) (int64, bool, error) {
	v, present := args[key]
	if !present || v == nil {
		return 0, false, nil
	}

	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, true, users.InvalidInput(msg)
		}

		return int64(n), true, nil
	case int:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, true, users.InvalidInput(msg)
		}

		return i, true, nil
	default:
		return 0, true, users.InvalidInput(msg)
	}
}

func stringArg(args map[string]any, key, msg string) (string, bool, error) {
	v, present := args[key]
	if !present || v == nil {
		return "", false, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", true, users.InvalidInput(msg)
	}

	return s, true, nil
}
