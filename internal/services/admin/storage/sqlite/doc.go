// Package sqlite provides the admin persistence adapter backed by a single
// SQLite file holding the four clinic tables.
package sqlite
