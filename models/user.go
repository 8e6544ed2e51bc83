package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Division   string             `bson:"division" json:"division"`
	District   string             `bson:"district" json:"district"`
	Upazila    string             `bson:"upazila" json:"upazila"`
	BloodGroup string             `bson:"bloodGroup" json:"bloodGroup"`
	ImageURL   string             `bson:"image_url" json:"image_url"`
	Role       Role               `bson:"role" json:"role"`
	Status     UserStatus         `bson:"status" json:"status"`
}

// UserProfile carries the fields a user may overwrite about themselves.
// Role and status are only reachable through the admin routes.
type UserProfile struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Division   string `bson:"division" json:"division"`
	District   string `bson:"district" json:"district"`
	Upazila    string `bson:"upazila" json:"upazila"`
	ImageURL   string `bson:"image_url" json:"image_url"`
	BloodGroup string `bson:"bloodGroup" json:"bloodGroup"`
}
