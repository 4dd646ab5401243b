// Package storage defines the persistence interfaces for the admin panel.
package storage
