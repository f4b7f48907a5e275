package models

import (
	"strings"
	"time"
)

// Identity is the authenticated subject of a session. Its id is an opaque
// string; reconciliation only reads it.
type Identity struct {
	ID        string    `bson:"_id" json:"id"`
	FirstName string    `bson:"first_name" json:"first_name"`
	LastName  string    `bson:"last_name" json:"last_name"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (i *Identity) Name() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}
