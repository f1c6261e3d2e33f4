package dto

type WebfingerResp struct {
	Subject string          `json:"subject"`
	Aliases []string        `json:"aliases"`
	Links   []WebfingerLink `json:"links"`
}

type WebfingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

type NewUserReq struct {
	Handle string `json:"handle"`
}

type UserResp struct {
	Id        int64  `json:"id"`
	Handle    string `json:"handle"`
	CreatedAt string `json:"created_at"`
}

type NotificationResp struct {
	Id        int64  `json:"id"`
	Kind      string `json:"kind"`
	ActorId   int64  `json:"actor_id"`
	Actor     string `json:"actor,omitempty"`
	PostId    int64  `json:"post_id,omitempty"`
	Preview   string `json:"preview,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type NotificationsPageResp struct {
	Total         int                 `json:"total"`
	Notifications []*NotificationResp `json:"notifications"`
}

type TimelineItemResp struct {
	Id        int64  `json:"id"`
	Kind      string `json:"kind"`
	ActorId   int64  `json:"actor_id"`
	PostId    int64  `json:"post_id"`
	RepostId  int64  `json:"repost_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type PushSubscriptionReq struct {
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// PushPayload is the JSON body handed to the web push transport.
type PushPayload struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ActorName string `json:"actor_name"`
	PostUrl   string `json:"post_url,omitempty"`
}
