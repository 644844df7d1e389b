package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record.
//
// Password is stored and compared in plaintext. That mirrors the behavior
// this service replicates and is a known security defect; see DESIGN.md.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fullname  string             `bson:"fullname" json:"fullname"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password"`
	CreatedOn time.Time          `bson:"createdOn" json:"createdOn"`
}

// Sanitized is the password-free view of a User returned by the
// get-user endpoint.
type Sanitized struct {
	ID        primitive.ObjectID `json:"id"`
	Fullname  string             `json:"fullname"`
	Email     string             `json:"email"`
	CreatedOn time.Time          `json:"createdOn"`
}

// Sanitize strips the password from a User.
func (u *User) Sanitize() Sanitized {
	return Sanitized{
		ID:        u.ID,
		Fullname:  u.Fullname,
		Email:     u.Email,
		CreatedOn: u.CreatedOn,
	}
}
