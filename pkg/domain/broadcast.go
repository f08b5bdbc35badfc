package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BroadcastID uniquely identifies a queued broadcast.
// It wraps uuid.UUID to provide type safety at the domain layer.
type BroadcastID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id BroadcastID) String() string {
	return uuid.UUID(id).String()
}

// ParseBroadcastID parses the canonical UUID representation of a broadcast ID.
func ParseBroadcastID(s string) (BroadcastID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return BroadcastID{}, fmt.Errorf("could not parse broadcast id: %w", err)
	}

	return BroadcastID(u), nil
}

// MediaKind describes the payload type of a broadcast message.
type MediaKind string

const (
	MediaKindText      MediaKind = "text"
	MediaKindPhoto     MediaKind = "photo"
	MediaKindVoice     MediaKind = "voice"
	MediaKindVideo     MediaKind = "video"
	MediaKindVideoNote MediaKind = "video_note"
)

// BroadcastStatus represents the delivery state of a broadcast.
type BroadcastStatus string

const (
	// BroadcastStatusPending indicates the broadcast is queued but not yet delivered.
	BroadcastStatusPending BroadcastStatus = "PENDING"
	// BroadcastStatusSent indicates delivery to all users has finished.
	BroadcastStatusSent BroadcastStatus = "SENT"
)

// Broadcast is a message an admin queued for delivery to every known user.
// Media payloads are referenced by their Telegram file ID; Telegram keeps the
// file, the bot only stores the handle.
type Broadcast struct {
	// ID is the unique identifier of the broadcast.
	ID BroadcastID `json:"id"`
	// Kind is the payload type.
	Kind MediaKind `json:"kind"`
	// Text is the message body for text broadcasts, or the caption for media
	// broadcasts. Video notes carry no caption.
	Text string `json:"text"`
	// MediaID is the Telegram file ID of the media payload. Empty for text.
	MediaID string `json:"mediaId"`

	// Status is the current delivery state.
	Status BroadcastStatus `json:"status"`
	// SentCount is the number of users the broadcast was delivered to.
	SentCount int `json:"sentCount"`

	// CreatedAt is the time the broadcast was queued.
	CreatedAt time.Time `json:"createdAt"`
	// SentAt is the time delivery finished; zero while pending.
	SentAt time.Time `json:"sentAt"`
}
