package logic

import (
	"fmt"
	"strings"
	"time"

	"wren/dal"
	"wren/dto"
	"wren/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_directory.go -package mocks wren/logic IUserDirectory

// IUserDirectory serves the public documents about local users: webfinger,
// the actor document, and the collection summaries. It also provisions new
// local users with their key pair and actor record.
type IUserDirectory interface {
	GetWebfinger(user string) (*dto.WebfingerResp, error)
	GetUserInfo(user string) (*dto.UserInfo, error)
	GetOutboxSummary(user string) (*dto.OrderedListSummary, error)
	GetFollowersSummary(user string) (*dto.OrderedListSummary, error)
	GetFollowingSummary(user string) (*dto.OrderedListSummary, error)
	GetUserStatus(user string, statusId int64) (*dto.Note, error)
	CreateUser(handle string) (*dal.User, error)
}

type userDirectory struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	idb      shared.IdBuilder
	keyStore IKeyStore
}

func NewUserDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
) IUserDirectory {
	return &userDirectory{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		idb:      shared.IdBuilder{Host: cfg.Host},
		keyStore: keyStore,
	}
}

func (udir *userDirectory) GetWebfinger(user string) (*dto.WebfingerResp, error) {

	user = strings.ToLower(user)
	dbUser, err := udir.repo.GetUserByHandle(user)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, nil
	}

	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, udir.cfg.Host),
		Aliases: []string{
			udir.idb.UserUrl(user),
		},
		Links: []dto.WebfingerLink{
			{
				Rel:  "http://webfinger.net/rel/profile-page",
				Type: "text/html",
				Href: udir.idb.UserUrl(user),
			},
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: udir.idb.UserUrl(user),
			},
		},
	}
	return &resp, nil
}

func (udir *userDirectory) GetUserInfo(user string) (*dto.UserInfo, error) {

	user = strings.ToLower(user)
	dbUser, err := udir.repo.GetUserByHandle(user)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, nil
	}

	userUrl := udir.idb.UserUrl(user)
	resp := dto.UserInfo{
		Context: []string{
			"https://www.w3.org/ns/activitystreams",
			"https://w3id.org/security/v1",
		},
		Id:                userUrl,
		Type:              "Person",
		PreferredUserName: user,
		Name:              user,
		Published:         dbUser.CreatedAt.Format(time.RFC3339),
		Inbox:             udir.idb.UserInbox(user),
		Outbox:            udir.idb.UserOutbox(user),
		Followers:         udir.idb.UserFollowers(user),
		Following:         udir.idb.UserFollowing(user),
		Url:               userUrl,
		Endpoints:         dto.UserEndpoints{SharedInbox: udir.idb.SharedInbox()},
		PublicKey: dto.PublicKey{
			Id:           udir.idb.UserKeyId(user),
			Owner:        userUrl,
			PublicKeyPem: dbUser.PubKey,
		},
	}
	return &resp, nil
}

func (udir *userDirectory) GetOutboxSummary(user string) (*dto.OrderedListSummary, error) {

	user = strings.ToLower(user)
	dbUser, err := udir.repo.GetUserByHandle(user)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, nil
	}

	var postCount uint
	if postCount, err = udir.repo.GetPostCount(dbUser.Id); err != nil {
		return nil, err
	}

	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserOutbox(user),
		Type:       "OrderedCollection",
		TotalItems: postCount,
	}
	return &resp, nil
}

func (udir *userDirectory) GetFollowersSummary(user string) (*dto.OrderedListSummary, error) {

	user = strings.ToLower(user)
	dbUser, err := udir.repo.GetUserByHandle(user)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, nil
	}

	var actor *dal.Actor
	if actor, err = udir.repo.GetActorByUserId(dbUser.Id); err != nil {
		return nil, err
	}
	var followerCount uint
	if actor != nil {
		if followerCount, err = udir.repo.GetFollowerCount(actor.Id); err != nil {
			return nil, err
		}
	}

	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowers(user),
		Type:       "OrderedCollection",
		TotalItems: followerCount,
	}
	return &resp, nil
}

func (udir *userDirectory) GetFollowingSummary(user string) (*dto.OrderedListSummary, error) {

	user = strings.ToLower(user)
	dbUser, err := udir.repo.GetUserByHandle(user)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, nil
	}

	// Local users don't follow anyone over the wire yet
	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowing(user),
		Type:       "OrderedCollection",
		TotalItems: 0,
	}
	return &resp, nil
}

func (udir *userDirectory) GetUserStatus(user string, statusId int64) (*dto.Note, error) {

	user = strings.ToLower(user)
	dbUser, err := udir.repo.GetUserByHandle(user)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, nil
	}

	var post *dal.Post
	if post, err = udir.repo.GetPostById(statusId); err != nil {
		return nil, err
	}
	if post == nil || post.UserId != dbUser.Id {
		return nil, nil
	}

	var images []*dal.PostImage
	if images, err = udir.repo.GetPostImages(post.Id); err != nil {
		return nil, err
	}

	note := dto.Note{
		Context:      "https://www.w3.org/ns/activitystreams",
		Id:           udir.idb.UserStatus(user, post.Id),
		Type:         "Note",
		Published:    post.CreatedAt.Format(time.RFC3339),
		AttributedTo: udir.idb.UserUrl(user),
		To:           []string{shared.ActivityPublic},
		Cc:           []string{udir.idb.UserFollowers(user)},
		Content:      post.Content,
	}
	if post.InReplyToUri != "" {
		note.InReplyTo = &post.InReplyToUri
	}
	for _, img := range images {
		note.Attachment = append(note.Attachment, dto.Attachment{
			Type: "Document",
			Url:  img.Url,
			Name: img.Alt,
		})
	}
	return &note, nil
}

func (udir *userDirectory) CreateUser(handle string) (*dal.User, error) {

	handle = strings.ToLower(handle)
	udir.logger.Infof("Creating local user '%s'", handle)

	existing, err := udir.repo.GetUserByHandle(handle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user already exists: %s", handle)
	}

	var pubKey, privKey string
	if pubKey, privKey, err = udir.keyStore.MakeKeyPair(); err != nil {
		return nil, err
	}

	var user *dal.User
	if user, err = udir.repo.AddUser(handle, pubKey, privKey); err != nil {
		return nil, err
	}

	actor := dal.Actor{
		Uri:      udir.idb.UserUrl(handle),
		InboxUrl: udir.idb.UserInbox(handle),
		UserId:   user.Id,
		Url:      udir.idb.UserUrl(handle),
		Username: handle,
	}
	evt := dal.NewEvent(dal.AggActor, dal.EvLocalActorCreated, &actor)
	if err = udir.repo.AddLocalActor(&actor, evt); err != nil {
		return nil, err
	}

	return user, nil
}
