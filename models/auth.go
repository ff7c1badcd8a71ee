package models

import "time"

// Credential holds the salted password digest for a user, one-to-one via UserID.
// Created at signup and never updated (no password-change flow).
type Credential struct {
	ID           string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string    `bson:"user_id" json:"user_id"`
	PasswordHash string    `bson:"password_hash" json:"password_hash"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AuthToken is an opaque bearer token record. A user may hold any number of
// live tokens; expired ones are rejected at resolve time but never purged.
type AuthToken struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Token     string    `bson:"token" json:"token"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

// EmailLog is a write-only audit record standing in for real email delivery
type EmailLog struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	To        string    `bson:"to" json:"to"`
	Subject   string    `bson:"subject" json:"subject"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
