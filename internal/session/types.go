// internal/session/types.go
package session

// Identity is the only session data the rest of the application observes.
type Identity struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	IsAdmin  bool   `json:"is_admin"`
}

// Result is the discriminated outcome of login and registration. Backend
// failures land here as messages; they are never raised as faults. Fields
// carries the server's per-field validation payload when one was returned,
// so callers can render messages next to the offending input.
type Result struct {
	Success bool
	Error   string
	Fields  map[string][]string
}

func success() Result {
	return Result{Success: true}
}

func failure(message string) Result {
	return Result{Error: message}
}

func fieldFailure(message string, fields map[string][]string) Result {
	return Result{Error: message, Fields: fields}
}

// adminState is the tri-state outcome of privilege resolution: resolved
// true, resolved false, or unresolved (keep whatever was known before).
type adminState int

const (
	adminUnresolved adminState = iota
	adminFalse
	adminTrue
)
