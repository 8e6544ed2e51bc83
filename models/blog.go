package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Content   string             `bson:"content" json:"content"`
	Status    BlogStatus         `bson:"status" json:"status"`
}
