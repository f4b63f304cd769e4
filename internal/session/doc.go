// Package session implements cookie-based browser sessions.
//
// Session state lives in server memory: the client cookie carries only an
// opaque, authenticated session id, and all values are kept in an in-process
// store. Sessions therefore do not survive a process restart and expire
// after the configured lifetime. The store implements gorilla/sessions'
// Store interface so it can be swapped for an external backend without
// touching the HTTP layer.
package session
