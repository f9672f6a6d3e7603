package libreria

import (
	"bytes"
	"encoding/json"
	"strings"
)

// flexBool tolerates the backend's inconsistent status encoding: JSON
// booleans as well as the strings "true"/"false".
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "true", `"true"`, "1":
		*b = true
		return nil
	case "false", `"false"`, "0", "null":
		*b = false
		return nil
	}
	var plain bool
	if err := json.Unmarshal(trimmed, &plain); err != nil {
		return err
	}
	*b = flexBool(plain)
	return nil
}

// envelope is the wrapper every backend response shares. Entity payload
// fields live on the concrete response structs that embed it.
type envelope struct {
	Status  flexBool `json:"status"`
	Message string   `json:"status_Message"`
}

// env lets response structs that embed envelope surface it through an
// interface assertion in Client.call.
func (e envelope) env() envelope { return e }

// ok reports the domain outcome. A recognized empty-result sentinel counts
// as success with zero records, never as a failure.
func (e envelope) ok() bool {
	return bool(e.Status) || isEmptyResult(e.Message)
}

// emptyResultMarkers are the backend's "nothing matched" messages. They
// arrive with status=false but describe a successful, empty load.
var emptyResultMarkers = []string{
	"no se encontraron",
	"no se encontró",
	"no hay registros",
	"sin resultados",
}

// isEmptyResult reports whether msg is an empty-result sentinel rather than
// a real failure.
func isEmptyResult(msg string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(msg))
	if trimmed == "" {
		return false
	}
	for _, marker := range emptyResultMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}
