package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog 用户行为日志，仅追加，存 mongo
type ActivityLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int64              `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Action    string             `bson:"action" json:"action"` // viewed / added-to-cart / purchased ...
	Metadata  map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
