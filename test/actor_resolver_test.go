package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/logic"
	"wren/test/mocks"
)

func setupResolverTest(t *testing.T) (*gomock.Controller, *mocks.MockIRepo, *mocks.MockIDocumentFetcher, logic.IActorResolver) {

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockFetcher := mocks.NewMockIDocumentFetcher(ctrl)
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)

	resolver := logic.NewActorResolver(mockLogger, mockRepo, mockFetcher)
	return ctrl, mockRepo, mockFetcher, resolver
}

func makeCallerIdentity() *logic.RemoteIdentity {
	return &logic.RemoteIdentity{
		Uri:      callerUrl,
		InboxUrl: callerInbox,
		Url:      callerUrl,
		Username: callerName,
		LogoUri:  callerAvatar,
	}
}

func TestUpsertRemoteActor_NewActorCreated(t *testing.T) {

	ctrl, mockRepo, _, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetActorByUri(callerUrl).Return(nil, nil)
	actorMatcher := gomock.Cond(func(actor *dal.Actor) bool {
		return actor.Uri == callerUrl &&
			actor.InboxUrl == callerInbox &&
			actor.Username == callerName &&
			actor.LogoUri == callerAvatar
	})
	mockRepo.EXPECT().
		AddRemoteActorIfNew(actorMatcher, checkEvent(dal.EvRemoteActorCreated)).
		Return(true, nil)

	actor, err := resolver.UpsertRemoteActor(makeCallerIdentity())

	assert.Nil(t, err)
	assert.NotNil(t, actor)
	assert.Equal(t, callerUrl, actor.Uri)
}

func TestUpsertRemoteActor_UnchangedIdentityIsNoOp(t *testing.T) {

	ctrl, mockRepo, _, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	existing := &dal.Actor{Id: 20, Uri: callerUrl, InboxUrl: callerInbox,
		LogoUri: callerAvatar, Kind: dal.ActorRemote, Username: callerName}
	mockRepo.EXPECT().GetActorByUri(callerUrl).Return(existing, nil)

	// No insert, no update, no event

	actor, err := resolver.UpsertRemoteActor(makeCallerIdentity())

	assert.Nil(t, err)
	assert.Equal(t, existing, actor)
}

func TestUpsertRemoteActor_ChangedLogoUpdated(t *testing.T) {

	ctrl, mockRepo, _, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	existing := &dal.Actor{Id: 20, Uri: callerUrl, InboxUrl: callerInbox,
		LogoUri: "https://" + callerHost + "/media/old.png", Kind: dal.ActorRemote, Username: callerName}
	mockRepo.EXPECT().GetActorByUri(callerUrl).Return(existing, nil)
	mockRepo.EXPECT().
		UpdateActorLogo(existing.Id, callerAvatar, checkEvent(dal.EvActorLogoUpdated)).
		Return(nil)

	actor, err := resolver.UpsertRemoteActor(makeCallerIdentity())

	assert.Nil(t, err)
	assert.Equal(t, callerAvatar, actor.LogoUri)
}

func TestUpsertRemoteActor_LostInsertRaceRetriesAsUpdate(t *testing.T) {

	ctrl, mockRepo, _, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	existing := &dal.Actor{Id: 20, Uri: callerUrl, InboxUrl: callerInbox,
		LogoUri: callerAvatar, Kind: dal.ActorRemote, Username: callerName}

	// A concurrent delivery inserts the actor between our read and our insert
	first := mockRepo.EXPECT().GetActorByUri(callerUrl).Return(nil, nil)
	mockRepo.EXPECT().
		AddRemoteActorIfNew(gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().GetActorByUri(callerUrl).Return(existing, nil).After(first)

	actor, err := resolver.UpsertRemoteActor(makeCallerIdentity())

	assert.Nil(t, err)
	assert.Equal(t, existing, actor)
}

func TestResolveOrFetchRemote_FetchesUnknownActor(t *testing.T) {

	ctrl, mockRepo, mockFetcher, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	// Once in ResolveOrFetchRemote, once again inside the upsert
	mockRepo.EXPECT().GetActorByUri(callerUrl).Return(nil, nil).Times(2)
	mockFetcher.EXPECT().FetchActor(callerUrl).Return(makeCallerUserInfo(), nil)
	mockRepo.EXPECT().
		AddRemoteActorIfNew(gomock.Any(), checkEvent(dal.EvRemoteActorCreated)).
		Return(true, nil)

	actor, err := resolver.ResolveOrFetchRemote(callerUrl)

	assert.Nil(t, err)
	assert.NotNil(t, actor)
	assert.Equal(t, callerInbox, actor.InboxUrl)
}

func TestResolveOrFetchRemote_KnownActorNotFetched(t *testing.T) {

	ctrl, mockRepo, _, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	existing := &dal.Actor{Id: 20, Uri: callerUrl, Kind: dal.ActorRemote}
	mockRepo.EXPECT().GetActorByUri(callerUrl).Return(existing, nil)

	actor, err := resolver.ResolveOrFetchRemote(callerUrl)

	assert.Nil(t, err)
	assert.Equal(t, existing, actor)
}
