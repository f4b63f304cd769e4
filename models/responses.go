package models

// CurrentUserResponse is the body of GET /current-user. Username is present
// only when the caller holds an authenticated session.
type CurrentUserResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
}

// AuthResponse is the body returned by POST /login and POST /register on
// success, and (with Success=false and Error set) on login failure.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ReviewsResponse wraps the paginated review listing of GET /posts.
type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

// NotesResponse wraps the paginated note listing of GET /notes.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// ErrorResponse is the generic error body used by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
