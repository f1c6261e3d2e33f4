package test

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/dto"
	"wren/logic"
	"wren/shared"
	"wren/test/mocks"
)

const localHost = "wren.community"
const localName = "alice"
const callerHost = "genart.social"
const callerName = "twilliability"

const callerUrl = "https://" + callerHost + "/users/" + callerName
const callerInbox = callerUrl + "/inbox"
const callerAvatar = "https://" + callerHost + "/media/" + callerName + ".png"

type inboxHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockResolver *mocks.MockIActorResolver
	mockFetcher  *mocks.MockIDocumentFetcher
	mockKeyStore *mocks.MockIKeyStore
	mockSender   *mocks.MockIActivitySender
	mockFanout   *mocks.MockIFanout
	mockMetrics  *mocks.MockIMetrics
	sender       *dto.UserInfo
	localUser    *dal.User
	localActor   *dal.Actor
	senderActor  *dal.Actor
	localUserUrl string
}

func setupInboxTest(t *testing.T) (*gomock.Controller, *inboxHarness, logic.IInbox) {

	ctrl := gomock.NewController(t)

	h := &inboxHarness{
		cfg:          &shared.Config{Host: localHost},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
		mockFetcher:  mocks.NewMockIDocumentFetcher(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
		mockFanout:   mocks.NewMockIFanout(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		sender:       makeCallerUserInfo(),
	}
	h.localUserUrl = fmt.Sprintf("https://%s/u/%s", localHost, localName)
	h.localUser = &dal.User{Id: 1, Handle: localName, CreatedAt: time.Now().UTC()}
	h.localActor = &dal.Actor{
		Id:       10,
		Uri:      h.localUserUrl,
		InboxUrl: h.localUserUrl + "/inbox",
		Kind:     dal.ActorLocal,
		UserId:   h.localUser.Id,
		Username: localName,
	}
	h.senderActor = &dal.Actor{
		Id:       20,
		Uri:      callerUrl,
		InboxUrl: callerInbox,
		LogoUri:  callerAvatar,
		Kind:     dal.ActorRemote,
		Username: callerName,
	}

	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	inbox := logic.NewInbox(h.cfg, h.mockLogger, h.mockRepo, h.mockResolver,
		h.mockFetcher, h.mockKeyStore, h.mockSender, h.mockFanout, h.mockMetrics)

	return ctrl, h, inbox
}

func makeCallerUserInfo() *dto.UserInfo {
	return &dto.UserInfo{
		Id:                callerUrl,
		Type:              "Person",
		PreferredUserName: callerName,
		Name:              "Twilliability",
		Inbox:             callerInbox,
		Url:               callerUrl,
		Icon:              dto.Image{Type: "Image", Url: callerAvatar},
	}
}

// expectUpsertSender wires the identity upsert of the activity's sender.
func (h *inboxHarness) expectUpsertSender() *gomock.Call {
	matcher := gomock.Cond(func(identity *logic.RemoteIdentity) bool {
		return identity.Uri == callerUrl && identity.InboxUrl == callerInbox
	})
	return h.mockResolver.EXPECT().UpsertRemoteActor(matcher).Return(h.senderActor, nil)
}

func (h *inboxHarness) expectLocalUserLookup() {
	h.mockRepo.EXPECT().GetUserByHandle(localName).Return(h.localUser, nil)
	h.mockResolver.EXPECT().ResolveByUserId(h.localUser.Id).Return(h.localActor, nil)
}
