package test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/dto"
	"wren/logic"
	"wren/shared"
	"wren/test/mocks"
)

type fanoutHarness struct {
	mockRepo    *mocks.MockIRepo
	mockTexts   *mocks.MockITexts
	mockPush    *mocks.MockIPushSender
	mockMetrics *mocks.MockIMetrics
	remoteActor *dal.Actor
}

func setupFanoutTest(t *testing.T) (*gomock.Controller, *fanoutHarness, logic.IFanout) {

	ctrl := gomock.NewController(t)

	h := &fanoutHarness{
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockTexts:   mocks.NewMockITexts(ctrl),
		mockPush:    mocks.NewMockIPushSender(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		remoteActor: &dal.Actor{
			Id:       20,
			Uri:      callerUrl,
			InboxUrl: callerInbox,
			Kind:     dal.ActorRemote,
			Username: callerName,
		},
	}

	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	setupDummyMetrics(h.mockMetrics)
	setupFakeTexts(h.mockTexts)

	cfg := &shared.Config{Host: localHost}
	fo := logic.NewFanout(cfg, mockLogger, h.mockRepo, h.mockTexts, h.mockPush, h.mockMetrics)

	return ctrl, h, fo
}

func TestFanout_FollowNotifiesAndPushes(t *testing.T) {

	ctrl, h, fo := setupFanoutTest(t)
	defer ctrl.Finish()

	sub1 := &dal.PushSubscription{Id: 1, UserId: 1, Endpoint: "https://push.example/ep1"}
	sub2 := &dal.PushSubscription{Id: 2, UserId: 1, Endpoint: "https://push.example/ep2"}

	notifMatcher := gomock.Cond(func(notif *dal.Notification) bool {
		return notif.RecipientUserId == 1 &&
			notif.Kind == dal.NotifFollow &&
			notif.ActorId == h.remoteActor.Id
	})
	h.mockRepo.EXPECT().
		AddNotification(notifMatcher, checkEvent(dal.EvNotificationCreated)).
		Return(nil)
	h.mockRepo.EXPECT().GetPushSubscriptions(int64(1)).Return([]*dal.PushSubscription{sub1, sub2}, nil)

	payloadMatcher := gomock.Cond(func(payload []byte) bool {
		var pp dto.PushPayload
		if err := json.Unmarshal(payload, &pp); err != nil {
			return false
		}
		return pp.Kind == dal.NotifFollow &&
			pp.Title == localHost &&
			strings.Contains(pp.Body, "@"+callerName+"@"+callerHost)
	})
	h.mockPush.EXPECT().Send(sub1, payloadMatcher).Return(nil)
	// The push service no longer knows the second subscription; it gets culled
	h.mockPush.EXPECT().Send(sub2, payloadMatcher).Return(logic.ErrSubscriptionGone)
	h.mockRepo.EXPECT().RemovePushSubscription(sub2.Id).Return(nil)

	err := fo.NotifyFollow(1, h.remoteActor)

	assert.Nil(t, err)
}

func TestFanout_LikePreviewStripsMarkup(t *testing.T) {

	ctrl, h, fo := setupFanoutTest(t)
	defer ctrl.Finish()

	post := &dal.Post{
		Id:      42,
		UserId:  1,
		ActorId: 10,
		Kind:    dal.PostLocal,
		Content: "<p>Hello <b>world</b></p>",
	}

	notifMatcher := gomock.Cond(func(notif *dal.Notification) bool {
		return notif.Kind == dal.NotifLike &&
			notif.PostId == post.Id &&
			notif.Preview == "Hello world"
	})
	h.mockRepo.EXPECT().
		AddNotification(notifMatcher, checkEvent(dal.EvNotificationCreated)).
		Return(nil)
	h.mockRepo.EXPECT().GetPushSubscriptions(int64(1)).Return(nil, nil)

	err := fo.NotifyLike(post, h.remoteActor)

	assert.Nil(t, err)
}

func TestFanout_LikeOfRemotePostIsNoOp(t *testing.T) {

	ctrl, h, fo := setupFanoutTest(t)
	defer ctrl.Finish()

	// Remote posts have no local recipient
	post := &dal.Post{Id: 43, UserId: 0, ActorId: 30, Kind: dal.PostRemote}

	err := fo.NotifyLike(post, h.remoteActor)

	assert.Nil(t, err)
}

func TestFanout_SelfReplyIsNoOp(t *testing.T) {

	ctrl, h, fo := setupFanoutTest(t)
	defer ctrl.Finish()

	origPost := &dal.Post{Id: 42, UserId: 1, ActorId: 20, Kind: dal.PostLocal}
	reply := &dal.Post{Id: 43, ActorId: 20, Kind: dal.PostRemote}

	err := fo.NotifyReply(origPost, reply, h.remoteActor)

	assert.Nil(t, err)
}

func TestFanout_ReactionNotifies(t *testing.T) {

	ctrl, h, fo := setupFanoutTest(t)
	defer ctrl.Finish()

	post := &dal.Post{Id: 42, UserId: 1, ActorId: 10, Kind: dal.PostLocal, Content: "plain"}

	notifMatcher := gomock.Cond(func(notif *dal.Notification) bool {
		return notif.Kind == dal.NotifReaction && notif.PostId == post.Id
	})
	h.mockRepo.EXPECT().
		AddNotification(notifMatcher, checkEvent(dal.EvNotificationCreated)).
		Return(nil)
	h.mockRepo.EXPECT().GetPushSubscriptions(int64(1)).Return(nil, nil)

	err := fo.NotifyReaction(post, h.remoteActor, "🔥")

	assert.Nil(t, err)
}
