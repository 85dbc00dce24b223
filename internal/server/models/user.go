// Package models holds the server-side domain records.
package models

// User is a registered account. It is written once at registration and never
// modified afterwards.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
