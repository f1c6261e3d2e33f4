package dal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	AggActor        = "actor"
	AggPost         = "post"
	AggFollow       = "follow"
	AggLike         = "like"
	AggRepost       = "repost"
	AggReaction     = "reaction"
	AggNotification = "notification"
)

const (
	EvRemoteActorCreated  = "RemoteActorCreated"
	EvActorLogoUpdated    = "ActorLogoUpdated"
	EvLocalActorCreated   = "LocalActorCreated"
	EvPostCreated         = "PostCreated"
	EvFollowAccepted      = "FollowAccepted"
	EvFollowRemoved       = "FollowRemoved"
	EvLikeCreated         = "LikeCreated"
	EvLikeRemoved         = "LikeRemoved"
	EvRepostCreated       = "RepostCreated"
	EvRepostRemoved       = "RepostRemoved"
	EvReactionCreated     = "ReactionCreated"
	EvNotificationCreated = "NotificationCreated"
)

// Event is the append-only audit envelope written in the same transaction as
// the projected state rows it describes. The log is audit-only: projections
// are never rebuilt by replay.
type Event struct {
	EventId        string
	AggregateName  string
	AggregateId    string
	EventName      string
	AggregateState string // JSON of the row(s) after the mutation; repo fills it
	EventPayload   string // JSON of the triggering input
	OccurredAt     time.Time
}

// NewEvent builds a partially filled envelope; the repo completes AggregateId
// and AggregateState at write time, once row ids are known.
func NewEvent(aggregateName, eventName string, payload any) *Event {
	return &Event{
		EventId:       uuid.NewString(),
		AggregateName: aggregateName,
		EventName:     eventName,
		EventPayload:  marshalOrEmpty(payload),
		OccurredAt:    time.Now().UTC(),
	}
}

func marshalOrEmpty(obj any) string {
	if obj == nil {
		return ""
	}
	bytes, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	return string(bytes)
}
