package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Static administrative geography. Seeded once, never written by a route.

type Division struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RefID  string             `bson:"id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	BnName string             `bson:"bn_name" json:"bn_name"`
}

type District struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RefID      string             `bson:"id" json:"id"`
	DivisionID string             `bson:"division_id" json:"division_id"`
	Name       string             `bson:"name" json:"name"`
	BnName     string             `bson:"bn_name" json:"bn_name"`
}

type Upazila struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RefID      string             `bson:"id" json:"id"`
	DistrictID string             `bson:"district_id" json:"district_id"`
	Name       string             `bson:"name" json:"name"`
	BnName     string             `bson:"bn_name" json:"bn_name"`
}
