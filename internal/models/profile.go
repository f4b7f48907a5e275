package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BioMaxLen is the longest biography a profile may hold, in characters.
const BioMaxLen = 300

type Profile struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	IdentityID       string        `bson:"identity_id" json:"identity_id"`
	Name             string        `bson:"name" json:"name"`
	Email            string        `bson:"email" json:"email"`
	Bio              string        `bson:"bio" json:"bio"`
	NewUser          bool          `bson:"new_user" json:"new_user"`
	FirstMessageSent bool          `bson:"first_message_sent" json:"first_message_sent"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updated_at"`
}

// LegacyUser is a record from the pre-profile "users" collection. It is
// keyed by email and only consulted to seed new profiles.
type LegacyUser struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
	Bio   string        `bson:"bio" json:"bio"`
}
