package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content is one generated learning topic. The full raw text is the canonical
// artifact; title and topicArea are extracted for history queries.
type Content struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	TopicArea   string             `bson:"topicArea" json:"topicArea"`
	GeneratedAt time.Time          `bson:"generatedAt" json:"generatedAt"`
	IsUsed      bool               `bson:"isUsed" json:"isUsed"`
}
