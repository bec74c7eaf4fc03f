package kafka

import "time"

// FavoriteEvent is published whenever a user's favorites change
type FavoriteEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	UserID     uint      `json:"userId"`
	ProductID  uint      `json:"productId"`
	FavoriteID uint      `json:"favoriteId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Kafka topics
const (
	TopicFavorites = "tryon-favorites"
)
