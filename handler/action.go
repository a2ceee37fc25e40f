package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback data is encoded as "name:arg:arg...". Decoding validates arity
// and argument types before anything acts on the values; malformed input is
// answered with "Invalid action" and otherwise ignored.

// Action is a decoded callback payload.
type Action struct {
	Name string
	Args []string
}

// ParseAction splits raw callback data into an action name and arguments.
func ParseAction(data string) Action {
	parts := strings.Split(data, ":")
	return Action{Name: parts[0], Args: parts[1:]}
}

// FormatAction encodes an action name and arguments into callback data.
func FormatAction(name string, args ...interface{}) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%v", a))
	}
	return strings.Join(parts, ":")
}

// Arity reports whether the action carries exactly n arguments.
func (a Action) Arity(n int) bool {
	return len(a.Args) == n
}

// Int64 decodes argument i as a positive int64 id.
func (a Action) Int64(i int) (int64, error) {
	if i < 0 || i >= len(a.Args) {
		return 0, fmt.Errorf("action %s: missing argument %d", a.Name, i)
	}
	v, err := strconv.ParseInt(a.Args[i], 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("action %s: argument %d is not a valid id", a.Name, i)
	}
	return v, nil
}

// Int decodes argument i as an int.
func (a Action) Int(i int) (int, error) {
	if i < 0 || i >= len(a.Args) {
		return 0, fmt.Errorf("action %s: missing argument %d", a.Name, i)
	}
	v, err := strconv.Atoi(a.Args[i])
	if err != nil {
		return 0, fmt.Errorf("action %s: argument %d is not a number", a.Name, i)
	}
	return v, nil
}

// String returns argument i, or "" when absent.
func (a Action) String(i int) string {
	if i < 0 || i >= len(a.Args) {
		return ""
	}
	return a.Args[i]
}
