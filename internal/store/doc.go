// Package store implements the persistence layer of the application.
//
// It provides the PostgreSQL connection handle, embedded schema migrations,
// and one repository per aggregate (users, books, reviews, notes). Repository
// methods translate driver-level failures into the sentinel errors defined in
// errors.go so that upper layers can match them with errors.Is.
package store
