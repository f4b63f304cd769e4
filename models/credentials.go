package models

// Credentials is the request payload of POST /login. The Username field may
// carry either the account's username or its email address.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
