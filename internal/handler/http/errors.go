// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shelfnotes Authors

package http

// Client-facing message strings. Several of them are part of the API contract
// consumed by the front end, so their exact wording matters.
const (
	// msgAuthRequired is the 401 body of every session-protected endpoint.
	msgAuthRequired = "Authentication required. Please log in"

	// msgNothingToAdd is the 400 body of POST /add/ when both texts are empty.
	msgNothingToAdd = "At least one of 'review' or 'note' must be provided."

	// msgCreated is the 201 body of POST /add/.
	msgCreated = "Created successfully"

	// msgDuplicateUser is the 409 body of POST /register. It deliberately does
	// not reveal which of the two unique columns collided.
	msgDuplicateUser = "username or email already registered"

	// msgUserNotFound and msgWrongPassword are the distinct 401 reasons of
	// POST /login.
	msgUserNotFound  = "User not found"
	msgWrongPassword = "Incorrect password"

	msgInvalidJSON   = "Invalid JSON was passed"
	msgInternalError = "internal server error"
)
