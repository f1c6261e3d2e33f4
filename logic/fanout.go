package logic

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"wren/dal"
	"wren/dto"
	"wren/shared"
	"wren/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_fanout.go -package mocks wren/logic IFanout

const previewMaxLen = 80

// IFanout creates notifications for qualifying events and attempts best-effort
// push delivery. Timeline fan-out is not here: timeline items are written in
// the same transaction as the post or repost they belong to.
type IFanout interface {
	NotifyFollow(recipientUserId int64, actor *dal.Actor) error
	NotifyLike(post *dal.Post, actor *dal.Actor) error
	NotifyReply(origPost *dal.Post, reply *dal.Post, actor *dal.Actor) error
	NotifyReaction(post *dal.Post, actor *dal.Actor, emoji string) error
}

type fanout struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	txt     texts.ITexts
	push    IPushSender
	metrics IMetrics
	policy  *bluemonday.Policy
}

func NewFanout(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	txt texts.ITexts,
	push IPushSender,
	metrics IMetrics,
) IFanout {
	return &fanout{cfg, logger, repo, txt, push, metrics, bluemonday.StrictPolicy()}
}

func (fo *fanout) NotifyFollow(recipientUserId int64, actor *dal.Actor) error {

	if recipientUserId == 0 || actor.UserId == recipientUserId {
		return nil
	}
	notif := &dal.Notification{
		RecipientUserId: recipientUserId,
		Kind:            dal.NotifFollow,
		ActorId:         actor.Id,
		CreatedAt:       time.Now().UTC(),
	}
	if err := fo.storeNotification(notif); err != nil {
		return err
	}
	body := fo.txt.WithVals("push_follow.txt", map[string]string{"actor": ActorMoniker(actor)})
	fo.pushToUser(recipientUserId, dal.NotifFollow, body, actor, "")
	return nil
}

func (fo *fanout) NotifyLike(post *dal.Post, actor *dal.Actor) error {

	if post.UserId == 0 || actor.UserId == post.UserId {
		return nil
	}
	notif := &dal.Notification{
		RecipientUserId: post.UserId,
		Kind:            dal.NotifLike,
		ActorId:         actor.Id,
		PostId:          post.Id,
		Preview:         fo.preview(post.Content),
		CreatedAt:       time.Now().UTC(),
	}
	if err := fo.storeNotification(notif); err != nil {
		return err
	}
	body := fo.txt.WithVals("push_like.txt", map[string]string{"actor": ActorMoniker(actor)})
	fo.pushToUser(post.UserId, dal.NotifLike, body, actor, post.Uri)
	return nil
}

func (fo *fanout) NotifyReply(origPost *dal.Post, reply *dal.Post, actor *dal.Actor) error {

	if origPost.UserId == 0 {
		return nil
	}
	// No notification when someone replies to themselves
	if actor.UserId == origPost.UserId || origPost.ActorId == reply.ActorId {
		return nil
	}
	notif := &dal.Notification{
		RecipientUserId: origPost.UserId,
		Kind:            dal.NotifReply,
		ActorId:         actor.Id,
		PostId:          reply.Id,
		Preview:         fo.preview(reply.Content),
		CreatedAt:       time.Now().UTC(),
	}
	if err := fo.storeNotification(notif); err != nil {
		return err
	}
	body := fo.txt.WithVals("push_reply.txt", map[string]string{"actor": ActorMoniker(actor)})
	fo.pushToUser(origPost.UserId, dal.NotifReply, body, actor, reply.Uri)
	return nil
}

func (fo *fanout) NotifyReaction(post *dal.Post, actor *dal.Actor, emoji string) error {

	if post.UserId == 0 || actor.UserId == post.UserId {
		return nil
	}
	notif := &dal.Notification{
		RecipientUserId: post.UserId,
		Kind:            dal.NotifReaction,
		ActorId:         actor.Id,
		PostId:          post.Id,
		Preview:         fo.preview(post.Content),
		CreatedAt:       time.Now().UTC(),
	}
	if err := fo.storeNotification(notif); err != nil {
		return err
	}
	body := fo.txt.WithVals("push_reaction.txt",
		map[string]string{"actor": ActorMoniker(actor), "emoji": emoji})
	fo.pushToUser(post.UserId, dal.NotifReaction, body, actor, post.Uri)
	return nil
}

func (fo *fanout) storeNotification(notif *dal.Notification) error {
	evt := dal.NewEvent(dal.AggNotification, dal.EvNotificationCreated, notif)
	if err := fo.repo.AddNotification(notif, evt); err != nil {
		return err
	}
	fo.metrics.NotificationCreated(notif.Kind)
	return nil
}

func (fo *fanout) preview(content string) string {
	plain := fo.policy.Sanitize(content)
	return shared.TruncateWithEllipsis(plain, previewMaxLen)
}

// pushToUser attempts delivery to every subscription of the recipient.
// Failures are logged per subscription and never affect the primary mutation.
func (fo *fanout) pushToUser(userId int64, kind, body string, actor *dal.Actor, postUrl string) {

	subs, err := fo.repo.GetPushSubscriptions(userId)
	if err != nil {
		fo.logger.Errorf("Failed to get push subscriptions for user %d: %v", userId, err)
		return
	}
	if len(subs) == 0 {
		return
	}

	payload := dto.PushPayload{
		Kind:      kind,
		Title:     fo.cfg.Host,
		Body:      body,
		ActorName: ActorMoniker(actor),
		PostUrl:   postUrl,
	}
	payloadJson, _ := json.Marshal(&payload)

	for _, sub := range subs {
		fo.metrics.PushAttempted()
		err = fo.push.Send(sub, payloadJson)
		if err == nil {
			continue
		}
		fo.metrics.PushFailed()
		if errors.Is(err, ErrSubscriptionGone) {
			fo.logger.Infof("Removing gone push subscription %d of user %d", sub.Id, userId)
			if rmErr := fo.repo.RemovePushSubscription(sub.Id); rmErr != nil {
				fo.logger.Errorf("Failed to remove push subscription %d: %v", sub.Id, rmErr)
			}
			continue
		}
		fo.logger.Warnf("Push delivery to subscription %d of user %d failed: %v", sub.Id, userId, err)
	}
}

// ActorMoniker renders an actor as @user@host, falling back to whatever part
// of the identity we do know.
func ActorMoniker(actor *dal.Actor) string {
	if actor.Username == "" {
		return actor.Uri
	}
	host, err := shared.GetHostName(actor.Uri)
	if err != nil || host == "" {
		return actor.Username
	}
	return shared.MakeFullMoniker(host, actor.Username)
}
