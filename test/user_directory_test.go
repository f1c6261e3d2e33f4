package test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/logic"
	"wren/shared"
	"wren/test/mocks"
)

func setupUserDirTest(t *testing.T) (*gomock.Controller, *mocks.MockIRepo, *mocks.MockIKeyStore, logic.IUserDirectory) {

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockKeyStore := mocks.NewMockIKeyStore(ctrl)
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)

	cfg := &shared.Config{Host: localHost}
	udir := logic.NewUserDirectory(cfg, mockLogger, mockRepo, mockKeyStore)
	return ctrl, mockRepo, mockKeyStore, udir
}

func TestCreateUser_ProvisionsKeyAndActor(t *testing.T) {

	ctrl, mockRepo, mockKeyStore, udir := setupUserDirTest(t)
	defer ctrl.Finish()

	newUser := &dal.User{Id: 5, Handle: "kestrel", CreatedAt: time.Now().UTC(), PubKey: "PUBKEY"}

	mockRepo.EXPECT().GetUserByHandle("kestrel").Return(nil, nil)
	mockKeyStore.EXPECT().MakeKeyPair().Return("PUBKEY", "PRIVKEY", nil)
	mockRepo.EXPECT().AddUser("kestrel", "PUBKEY", "PRIVKEY").Return(newUser, nil)

	actorMatcher := gomock.Cond(func(actor *dal.Actor) bool {
		return actor.Uri == fmt.Sprintf("https://%s/u/kestrel", localHost) &&
			actor.UserId == newUser.Id &&
			actor.Username == "kestrel"
	})
	mockRepo.EXPECT().AddLocalActor(actorMatcher, checkEvent(dal.EvLocalActorCreated)).Return(nil)

	user, err := udir.CreateUser("Kestrel")

	assert.Nil(t, err)
	assert.Equal(t, newUser, user)
}

func TestCreateUser_DuplicateHandleRejected(t *testing.T) {

	ctrl, mockRepo, _, udir := setupUserDirTest(t)
	defer ctrl.Finish()

	existing := &dal.User{Id: 1, Handle: "alice"}
	mockRepo.EXPECT().GetUserByHandle("alice").Return(existing, nil)

	user, err := udir.CreateUser("alice")

	assert.Nil(t, user)
	assert.NotNil(t, err)
}

func TestGetWebfinger_KnownUser(t *testing.T) {

	ctrl, mockRepo, _, udir := setupUserDirTest(t)
	defer ctrl.Finish()

	dbUser := &dal.User{Id: 1, Handle: localName}
	mockRepo.EXPECT().GetUserByHandle(localName).Return(dbUser, nil)

	resp, err := udir.GetWebfinger(localName)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "acct:"+localName+"@"+localHost, resp.Subject)
	userUrl := fmt.Sprintf("https://%s/u/%s", localHost, localName)
	found := false
	for _, link := range resp.Links {
		if link.Rel == "self" && link.Href == userUrl {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGetWebfinger_UnknownUser(t *testing.T) {

	ctrl, mockRepo, _, udir := setupUserDirTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetUserByHandle("nobody").Return(nil, nil)

	resp, err := udir.GetWebfinger("nobody")

	assert.Nil(t, err)
	assert.Nil(t, resp)
}

func TestGetUserStatus_ReturnsNoteWithAttachments(t *testing.T) {

	ctrl, mockRepo, _, udir := setupUserDirTest(t)
	defer ctrl.Finish()

	dbUser := &dal.User{Id: 1, Handle: localName}
	post := &dal.Post{
		Id:        42,
		UserId:    1,
		ActorId:   10,
		Kind:      dal.PostLocal,
		Content:   "<p>morning light</p>",
		CreatedAt: time.Now().UTC(),
	}
	images := []*dal.PostImage{
		{Id: 1, PostId: 42, Url: "https://" + localHost + "/media/1.jpg", Alt: "sunrise"},
	}

	mockRepo.EXPECT().GetUserByHandle(localName).Return(dbUser, nil)
	mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)
	mockRepo.EXPECT().GetPostImages(int64(42)).Return(images, nil)

	note, err := udir.GetUserStatus(localName, 42)

	assert.Nil(t, err)
	assert.NotNil(t, note)
	assert.Equal(t, post.Content, note.Content)
	assert.Equal(t, 1, len(note.Attachment))
	assert.Equal(t, "sunrise", note.Attachment[0].Name)
}

func TestGetUserStatus_OtherUsersPostHidden(t *testing.T) {

	ctrl, mockRepo, _, udir := setupUserDirTest(t)
	defer ctrl.Finish()

	dbUser := &dal.User{Id: 1, Handle: localName}
	post := &dal.Post{Id: 42, UserId: 2, Kind: dal.PostLocal}

	mockRepo.EXPECT().GetUserByHandle(localName).Return(dbUser, nil)
	mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)

	note, err := udir.GetUserStatus(localName, 42)

	assert.Nil(t, err)
	assert.Nil(t, note)
}
