package logic

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"wren/dal"
	"wren/dto"
	"wren/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks wren/logic IInbox

// IInbox applies inbound activities to local state. Every handler returns a
// request problem string for bad or inapplicable input, which the caller logs
// and acknowledges, and an error only for store or infrastructure failures,
// so the sending server redelivers.
type IInbox interface {
	HandleFollow(senderInfo *dto.UserInfo, bodyBytes []byte) (string, error)
	HandleUndo(senderInfo *dto.UserInfo, bodyBytes []byte) (string, error)
	HandleCreateNote(actBase dto.ActivityInBase, senderInfo *dto.UserInfo, bodyBytes []byte) (string, error)
	HandleLike(senderInfo *dto.UserInfo, bodyBytes []byte) (string, error)
	HandleAnnounce(senderInfo *dto.UserInfo, bodyBytes []byte) (string, error)
	HandleEmojiReact(actBase dto.ActivityInBase, senderInfo *dto.UserInfo, bodyBytes []byte) (string, error)
}

type inbox struct {
	cfg         *shared.Config
	logger      shared.ILogger
	idb         shared.IdBuilder
	repo        dal.IRepo
	resolver    IActorResolver
	fetcher     IDocumentFetcher
	keyStore    IKeyStore
	sender      IActivitySender
	fanout      IFanout
	metrics     IMetrics
	reUserUrl   *regexp.Regexp
	reStatusUrl *regexp.Regexp
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	fetcher IDocumentFetcher,
	keyStore IKeyStore,
	sender IActivitySender,
	fanout IFanout,
	metrics IMetrics,
) IInbox {
	reUserUrl := regexp.MustCompile("^https://" + cfg.Host + "/u/([^/]+)/?$")
	reStatusUrl := regexp.MustCompile("^https://" + cfg.Host + "/u/([^/]+)/status/([0-9]+)/?$")
	return &inbox{cfg, logger, shared.IdBuilder{Host: cfg.Host}, repo, resolver,
		fetcher, keyStore, sender, fanout, metrics,
		reUserUrl, reStatusUrl}
}

// localUserFromUrl resolves a URI of the form https://host/u/handle to the
// local user, or nil if the URI has a different shape or no such user exists.
func (ib *inbox) localUserFromUrl(uri string) (*dal.User, error) {
	groups := ib.reUserUrl.FindStringSubmatch(uri)
	if groups == nil {
		return nil, nil
	}
	return ib.repo.GetUserByHandle(groups[1])
}

// localPostFromUrl resolves a URI of the form https://host/u/handle/status/id
// to the local post, or nil if the URI has a different shape or no such post
// exists.
func (ib *inbox) localPostFromUrl(uri string) (*dal.Post, error) {
	groups := ib.reStatusUrl.FindStringSubmatch(uri)
	if groups == nil {
		return nil, nil
	}
	postId, convErr := strconv.ParseInt(groups[2], 10, 64)
	if convErr != nil {
		return nil, nil
	}
	return ib.repo.GetPostById(postId)
}

func (ib *inbox) upsertSender(senderInfo *dto.UserInfo) (*dal.Actor, error) {
	return ib.resolver.UpsertRemoteActor(IdentityFromUserInfo(senderInfo))
}

func (ib *inbox) HandleFollow(
	senderInfo *dto.UserInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Info("Handling Follow activity")

	reqProblem = ""
	err = nil

	var actFollow dto.ActivityIn[string]
	if jsonErr := json.Unmarshal(bodyBytes, &actFollow); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Follow activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}
	if actFollow.Id == "" {
		reqProblem = "Follow activity has no id"
		return
	}

	// Whom does the sender want to follow?
	var user *dal.User
	if user, err = ib.localUserFromUrl(actFollow.Object); err != nil {
		return
	}
	if user == nil {
		reqProblem = fmt.Sprintf("Follow object is not a local user: %s", actFollow.Object)
		return
	}
	var localActor *dal.Actor
	if localActor, err = ib.resolver.ResolveByUserId(user.Id); err != nil {
		return
	}
	if localActor == nil {
		err = fmt.Errorf("no actor record for local user %s", user.Handle)
		return
	}

	var senderActor *dal.Actor
	if senderActor, err = ib.upsertSender(senderInfo); err != nil {
		return
	}

	follow := dal.Follow{
		FollowerId:  senderActor.Id,
		FollowingId: localActor.Id,
		ActivityUri: actFollow.Id,
		CreatedAt:   time.Now().UTC(),
	}
	evt := dal.NewEvent(dal.AggFollow, dal.EvFollowAccepted, &actFollow)
	var isNew bool
	if isNew, err = ib.repo.AddFollowIfNew(&follow, evt); err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Follow already on record: %s follows %s", senderActor.Uri, localActor.Uri)
		ib.metrics.DuplicateActivity("Follow")
		return
	}

	if err = ib.fanout.NotifyFollow(user.Id, senderActor); err != nil {
		return
	}
	ib.updateFollowerGauge(localActor.Id)

	// Accept goes out only on a state change. A failed send is not an error:
	// the follow is recorded, and the remote side re-follows if it never
	// sees our Accept.
	if sendErr := ib.sendAccept(user.Handle, &actFollow, senderActor); sendErr != nil {
		ib.logger.Warnf("Failed to send Accept to %s: %v", senderActor.InboxUrl, sendErr)
	}

	ib.metrics.ActivityHandled("Follow")
	return
}

func (ib *inbox) sendAccept(handle string, actFollow *dto.ActivityIn[string], follower *dal.Actor) error {

	ib.logger.Infof("Accepting follow from %s", follower.Uri)

	privKey, err := ib.keyStore.GetPrivKey(handle)
	if err != nil {
		return fmt.Errorf("failed to get private key for user %s: %v", handle, err)
	}

	acceptId := ib.repo.GetNextId()
	actAccept := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      ib.idb.ActivityUrl(acceptId),
		Type:    "Accept",
		Actor:   ib.idb.UserUrl(handle),
		Object: dto.ActivityOut{
			Id:     actFollow.Id,
			Type:   "Follow",
			Actor:  actFollow.Actor,
			Object: ib.idb.UserUrl(handle),
		},
	}

	return ib.sender.Send(privKey, handle, follower.InboxUrl, &actAccept)
}

// updateFollowerGauge refreshes the follower count gauge after a follow row
// changed; a failed read only skips the refresh.
func (ib *inbox) updateFollowerGauge(actorId int64) {
	count, err := ib.repo.GetFollowerCount(actorId)
	if err != nil {
		ib.logger.Warnf("Failed to count followers of actor %d: %v", actorId, err)
		return
	}
	ib.metrics.TotalFollowers(int(count))
}

func (ib *inbox) HandleUndo(
	senderInfo *dto.UserInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Info("Handling Undo activity")

	reqProblem = ""
	err = nil

	var actUndo dto.ActivityIn[dto.ActivityInBase]
	if jsonErr := json.Unmarshal(bodyBytes, &actUndo); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Undo activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}

	switch actUndo.Object.Type {
	case "Follow":
		reqProblem, err = ib.handleUndoFollow(bodyBytes)
	case "Like":
		reqProblem, err = ib.handleUndoLike(&actUndo)
	case "Announce":
		reqProblem, err = ib.handleUndoAnnounce(&actUndo)
	default:
		ib.logger.Infof("Ignoring Undo of unsupported object type '%s'", actUndo.Object.Type)
		ib.metrics.ActivityDropped("Undo")
	}
	return
}

func (ib *inbox) handleUndoFollow(bodyBytes []byte) (reqProblem string, err error) {

	reqProblem = ""
	err = nil

	var actUndoFollow dto.ActivityIn[dto.ActivityIn[string]]
	if jsonErr := json.Unmarshal(bodyBytes, &actUndoFollow); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Undo Follow activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}

	var user *dal.User
	if user, err = ib.localUserFromUrl(actUndoFollow.Object.Object); err != nil {
		return
	}
	if user == nil {
		reqProblem = fmt.Sprintf("Undo Follow object is not a local user: %s", actUndoFollow.Object.Object)
		return
	}
	var localActor *dal.Actor
	if localActor, err = ib.resolver.ResolveByUserId(user.Id); err != nil {
		return
	}
	if localActor == nil {
		err = fmt.Errorf("no actor record for local user %s", user.Handle)
		return
	}

	// If we've never seen the sender, there is nothing to undo
	var senderActor *dal.Actor
	if senderActor, err = ib.resolver.ResolveByUri(actUndoFollow.Actor); err != nil {
		return
	}
	if senderActor == nil {
		ib.logger.Infof("Undo Follow from unknown actor %s; nothing to do", actUndoFollow.Actor)
		return
	}

	evt := dal.NewEvent(dal.AggFollow, dal.EvFollowRemoved, &actUndoFollow)
	var removed bool
	if removed, err = ib.repo.RemoveFollow(senderActor.Id, localActor.Id, evt); err != nil {
		return
	}
	if !removed {
		ib.logger.Infof("No follow on record from %s; nothing to undo", senderActor.Uri)
		ib.metrics.DuplicateActivity("Undo")
		return
	}
	ib.updateFollowerGauge(localActor.Id)
	ib.metrics.ActivityHandled("Undo")
	return
}

func (ib *inbox) handleUndoLike(actUndo *dto.ActivityIn[dto.ActivityInBase]) (reqProblem string, err error) {

	reqProblem = ""
	err = nil

	likeUri := actUndo.Object.Id
	if likeUri == "" {
		reqProblem = "Undo Like has no object id"
		return
	}

	evt := dal.NewEvent(dal.AggLike, dal.EvLikeRemoved, actUndo)
	var removed bool
	if removed, err = ib.repo.RemoveLikeByActivityUri(likeUri, evt); err != nil {
		return
	}
	if !removed {
		ib.logger.Infof("No like on record with activity %s; nothing to undo", likeUri)
		ib.metrics.DuplicateActivity("Undo")
		return
	}
	ib.metrics.ActivityHandled("Undo")
	return
}

func (ib *inbox) handleUndoAnnounce(actUndo *dto.ActivityIn[dto.ActivityInBase]) (reqProblem string, err error) {

	reqProblem = ""
	err = nil

	announceUri := actUndo.Object.Id
	if announceUri == "" {
		reqProblem = "Undo Announce has no object id"
		return
	}

	evt := dal.NewEvent(dal.AggRepost, dal.EvRepostRemoved, actUndo)
	var removed bool
	if removed, err = ib.repo.RemoveRepostByActivityUri(announceUri, evt); err != nil {
		return
	}
	if !removed {
		ib.logger.Infof("No repost on record with activity %s; nothing to undo", announceUri)
		ib.metrics.DuplicateActivity("Undo")
		return
	}
	ib.metrics.ActivityHandled("Undo")
	return
}

func (ib *inbox) HandleCreateNote(
	actBase dto.ActivityInBase,
	senderInfo *dto.UserInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Info("Handling Create Note activity")

	reqProblem = ""
	err = nil

	var act dto.ActivityIn[dto.Note]
	if jsonErr := json.Unmarshal(bodyBytes, &act); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Create Note activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}
	note := &act.Object
	if note.Id == "" {
		reqProblem = "Create Note: note has no id"
		return
	}

	var author *dal.Actor
	if author, err = ib.upsertSender(senderInfo); err != nil {
		return
	}

	var post *dal.Post
	var isNew bool
	if post, isNew, err = ib.storeRemoteNote(note, author); err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Note already on record: %s", note.Id)
		ib.metrics.DuplicateActivity("Create")
		return
	}

	// Reply to one of ours?
	if note.InReplyTo != nil && *note.InReplyTo != "" {
		var origPost *dal.Post
		if origPost, err = ib.localPostFromUrl(*note.InReplyTo); err != nil {
			return
		}
		if origPost != nil {
			if err = ib.fanout.NotifyReply(origPost, post, author); err != nil {
				return
			}
		}
	}

	ib.metrics.ActivityHandled("Create")
	return
}

// storeRemoteNote inserts a remote note with its images and timeline item in
// one transaction, keyed on the note's origin URI.
func (ib *inbox) storeRemoteNote(note *dto.Note, author *dal.Actor) (post *dal.Post, isNew bool, err error) {

	createdAt := time.Now().UTC()
	if note.Published != "" {
		if parsed, parseErr := time.Parse(time.RFC3339, note.Published); parseErr == nil {
			createdAt = parsed
		}
	}

	post = &dal.Post{
		Uri:       note.Id,
		ActorId:   author.Id,
		Kind:      dal.PostRemote,
		Content:   note.Content,
		CreatedAt: createdAt,
	}
	if note.InReplyTo != nil {
		post.InReplyToUri = *note.InReplyTo
	}

	var images []*dal.PostImage
	for _, att := range note.Attachment {
		if att.Url == "" {
			continue
		}
		if att.Type != "Document" && att.Type != "Image" {
			continue
		}
		images = append(images, &dal.PostImage{Url: att.Url, Alt: att.Name})
	}

	ti := dal.TimelineItem{ActorId: author.Id, CreatedAt: createdAt}
	evt := dal.NewEvent(dal.AggPost, dal.EvPostCreated, note)
	isNew, err = ib.repo.AddPostIfNew(post, images, &ti, evt)
	if err != nil {
		return nil, false, err
	}
	if !isNew {
		// Already stored by an earlier delivery; fetch the row we kept
		if post, err = ib.repo.GetPostByUri(note.Id); err != nil {
			return nil, false, err
		}
	}
	return post, isNew, nil
}

func (ib *inbox) HandleLike(
	senderInfo *dto.UserInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Info("Handling Like activity")

	reqProblem = ""
	err = nil

	var actLike dto.ActivityIn[string]
	if jsonErr := json.Unmarshal(bodyBytes, &actLike); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Like activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}
	if actLike.Id == "" {
		reqProblem = "Like activity has no id"
		return
	}

	// Likes only matter for posts of local users
	var post *dal.Post
	if post, err = ib.localPostFromUrl(actLike.Object); err != nil {
		return
	}
	if post == nil {
		ib.logger.Infof("Like of object we don't keep: %s", actLike.Object)
		ib.metrics.ActivityDropped("Like")
		return
	}

	// Redelivery? Then we're done before touching anything.
	var prior *dal.Like
	if prior, err = ib.repo.GetLikeByActivityUri(actLike.Id); err != nil {
		return
	}
	if prior != nil {
		ib.logger.Infof("Like already on record: %s", actLike.Id)
		ib.metrics.DuplicateActivity("Like")
		return
	}

	var senderActor *dal.Actor
	if senderActor, err = ib.upsertSender(senderInfo); err != nil {
		return
	}

	like := dal.Like{
		ActorId:     senderActor.Id,
		PostId:      post.Id,
		ActivityUri: actLike.Id,
		CreatedAt:   time.Now().UTC(),
	}
	evt := dal.NewEvent(dal.AggLike, dal.EvLikeCreated, &actLike)
	var isNew bool
	if isNew, err = ib.repo.AddLikeIfNew(&like, evt); err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Like already on record: %s", actLike.Id)
		ib.metrics.DuplicateActivity("Like")
		return
	}

	if err = ib.fanout.NotifyLike(post, senderActor); err != nil {
		return
	}
	ib.metrics.ActivityHandled("Like")
	return
}

func (ib *inbox) HandleAnnounce(
	senderInfo *dto.UserInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Info("Handling Announce activity")

	reqProblem = ""
	err = nil

	var actAnnounce dto.ActivityIn[string]
	if jsonErr := json.Unmarshal(bodyBytes, &actAnnounce); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Announce activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}
	if actAnnounce.Id == "" {
		reqProblem = "Announce activity has no id"
		return
	}
	if actAnnounce.Object == "" {
		reqProblem = "Announce activity has no object"
		return
	}

	// Redelivery? Then skip the actor upsert and the possible note fetch.
	var prior *dal.Repost
	if prior, err = ib.repo.GetRepostByActivityUri(actAnnounce.Id); err != nil {
		return
	}
	if prior != nil {
		ib.logger.Infof("Repost already on record: %s", actAnnounce.Id)
		ib.metrics.DuplicateActivity("Announce")
		return
	}

	var senderActor *dal.Actor
	if senderActor, err = ib.upsertSender(senderInfo); err != nil {
		return
	}

	// Boosted object: one of our posts, a remote post we already keep, or a
	// remote post we fetch now.
	var post *dal.Post
	if post, err = ib.localPostFromUrl(actAnnounce.Object); err != nil {
		return
	}
	if post == nil {
		if post, err = ib.repo.GetPostByUri(actAnnounce.Object); err != nil {
			return
		}
	}
	if post == nil {
		if post, reqProblem, err = ib.fetchAnnouncedNote(actAnnounce.Object); err != nil || reqProblem != "" {
			return
		}
	}

	repost := dal.Repost{
		ActorId:     senderActor.Id,
		PostId:      post.Id,
		ActivityUri: actAnnounce.Id,
		CreatedAt:   time.Now().UTC(),
	}
	ti := dal.TimelineItem{ActorId: senderActor.Id, CreatedAt: repost.CreatedAt}
	evt := dal.NewEvent(dal.AggRepost, dal.EvRepostCreated, &actAnnounce)
	var isNew bool
	if isNew, err = ib.repo.AddRepostIfNew(&repost, &ti, evt); err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Repost already on record: %s", actAnnounce.Id)
		ib.metrics.DuplicateActivity("Announce")
		return
	}

	ib.metrics.ActivityHandled("Announce")
	return
}

// fetchAnnouncedNote retrieves a boosted note we have never seen, along with
// its author, and stores the post. The boost's own timeline item is created
// with the repost, so none is written here.
func (ib *inbox) fetchAnnouncedNote(noteUri string) (post *dal.Post, reqProblem string, err error) {

	var note *dto.Note
	if note, err = ib.fetcher.FetchNote(noteUri); err != nil {
		ib.logger.Infof("Failed to fetch announced note %s: %v", noteUri, err)
		reqProblem = fmt.Sprintf("Cannot retrieve announced object: %s", noteUri)
		err = nil
		return
	}
	if note.Id == "" || note.AttributedTo == "" {
		reqProblem = fmt.Sprintf("Announced note %s has no id or author", noteUri)
		return
	}

	var author *dal.Actor
	if author, err = ib.resolver.ResolveOrFetchRemote(note.AttributedTo); err != nil {
		ib.logger.Infof("Failed to resolve author of announced note %s: %v", noteUri, err)
		reqProblem = fmt.Sprintf("Cannot resolve author of announced object: %s", noteUri)
		err = nil
		return
	}

	createdAt := time.Now().UTC()
	if note.Published != "" {
		if parsed, parseErr := time.Parse(time.RFC3339, note.Published); parseErr == nil {
			createdAt = parsed
		}
	}
	post = &dal.Post{
		Uri:       note.Id,
		ActorId:   author.Id,
		Kind:      dal.PostRemote,
		Content:   note.Content,
		CreatedAt: createdAt,
	}
	evt := dal.NewEvent(dal.AggPost, dal.EvPostCreated, note)
	var isNew bool
	if isNew, err = ib.repo.AddPostIfNew(post, nil, nil, evt); err != nil {
		post = nil
		return
	}
	if !isNew {
		if post, err = ib.repo.GetPostByUri(note.Id); err != nil {
			return
		}
	}
	return
}

func (ib *inbox) HandleEmojiReact(
	actBase dto.ActivityInBase,
	senderInfo *dto.UserInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Info("Handling EmojiReact activity")

	reqProblem = ""
	err = nil

	objectUri, _ := actBase.Object.(string)
	if actBase.Id == "" || objectUri == "" || actBase.Content == "" {
		reqProblem = "EmojiReact activity must have id, object and content"
		return
	}

	var post *dal.Post
	if post, err = ib.localPostFromUrl(objectUri); err != nil {
		return
	}
	if post == nil {
		ib.logger.Infof("EmojiReact on object we don't keep: %s", objectUri)
		ib.metrics.ActivityDropped("EmojiReact")
		return
	}

	var prior *dal.Reaction
	if prior, err = ib.repo.GetReactionByActivityUri(actBase.Id); err != nil {
		return
	}
	if prior != nil {
		ib.logger.Infof("Reaction already on record: %s", actBase.Id)
		ib.metrics.DuplicateActivity("EmojiReact")
		return
	}

	// Custom emoji carry their image in a matching Emoji tag
	imageUrl := ""
	for _, tag := range actBase.Tag {
		if tag.Type == "Emoji" && tag.Name == actBase.Content && tag.Icon != nil {
			imageUrl = tag.Icon.Url
			break
		}
	}

	var senderActor *dal.Actor
	if senderActor, err = ib.upsertSender(senderInfo); err != nil {
		return
	}

	reaction := dal.Reaction{
		ActorId:     senderActor.Id,
		PostId:      post.Id,
		Emoji:       actBase.Content,
		ImageUrl:    imageUrl,
		ActivityUri: actBase.Id,
		CreatedAt:   time.Now().UTC(),
	}
	evt := dal.NewEvent(dal.AggReaction, dal.EvReactionCreated, &actBase)
	var isNew bool
	if isNew, err = ib.repo.AddReactionIfNew(&reaction, evt); err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Reaction already on record: %s", actBase.Id)
		ib.metrics.DuplicateActivity("EmojiReact")
		return
	}

	if err = ib.fanout.NotifyReaction(post, senderActor, actBase.Content); err != nil {
		return
	}
	ib.metrics.ActivityHandled("EmojiReact")
	return
}
