package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON renders any value as compact JSON. A marshal failure comes
// back as its error text, so a caller printing the result always has
// something readable to show.
func DumpJSON[T any](t T) string {
	rendered, err := json.Marshal(t)
	if err != nil {
		return fmt.Sprintf("DumpJSON error: %s", err)
	}
	return string(rendered)
}
