package dal

import (
	"time"
)

const (
	ActorLocal  = "local"
	ActorRemote = "remote"
)

const (
	PostLocal  = "local"
	PostRemote = "remote"
)

const (
	TimelinePost   = "post"
	TimelineRepost = "repost"
)

const (
	NotifFollow   = "follow"
	NotifLike     = "like"
	NotifReply    = "reply"
	NotifReaction = "reaction"
)

type User struct {
	Id        int64
	Handle    string // kestrel
	CreatedAt time.Time
	PubKey    string
}

type Actor struct {
	Id       int64
	Uri      string // https://genart.social/users/twilliability
	InboxUrl string // https://genart.social/users/twilliability/inbox
	LogoUri  string // avatar image URL; empty if none known
	Kind     string // ActorLocal | ActorRemote
	UserId   int64  // non-zero for local actors only
	Url      string // profile page URL of remote actors
	Username string // preferredUsername of remote actors
}

type Post struct {
	Id           int64
	Uri          string // origin URI; the dedupe key of remote posts
	ActorId      int64
	UserId       int64 // non-zero for local posts only
	Kind         string
	Content      string
	InReplyToUri string
	CreatedAt    time.Time
}

type PostImage struct {
	Id     int64
	PostId int64
	Url    string
	Alt    string
}

type Follow struct {
	FollowerId  int64
	FollowingId int64
	ActivityUri string // URI of the Follow activity; needed for the Accept reply
	CreatedAt   time.Time
}

type Like struct {
	Id          int64
	ActorId     int64
	PostId      int64
	ActivityUri string // set when remote-triggered; the idempotency key
	CreatedAt   time.Time
}

type Repost struct {
	Id          int64
	ActorId     int64
	PostId      int64
	ActivityUri string
	CreatedAt   time.Time
}

type Reaction struct {
	Id          int64
	ActorId     int64
	PostId      int64
	Emoji       string // the reaction content, e.g. ":blobcat:"
	ImageUrl    string // custom emoji image, if the tag carried one
	ActivityUri string
	CreatedAt   time.Time
}

type TimelineItem struct {
	Id        int64
	Kind      string // TimelinePost | TimelineRepost
	ActorId   int64
	PostId    int64
	RepostId  int64 // non-zero for repost items only
	CreatedAt time.Time
}

type Notification struct {
	Id              int64
	RecipientUserId int64
	Kind            string
	ActorId         int64
	PostId          int64 // non-zero where a post is the subject
	Preview         string
	IsRead          bool
	CreatedAt       time.Time
}

type PushSubscription struct {
	Id       int64
	UserId   int64
	Endpoint string
	P256dh   string
	Auth     string
}
