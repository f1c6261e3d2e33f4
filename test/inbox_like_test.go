package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
)

func makeLikeBody(activityId, objectUri string) []byte {
	body := `{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Like",
		"actor": "%s",
		"object": "%s"
	}`
	return []byte(fmt.Sprintf(body, activityId, callerUrl, objectUri))
}

func TestLike_OnLocalPostNotifies(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/like-1"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	post := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}

	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)
	h.mockRepo.EXPECT().GetLikeByActivityUri(activityId).Return(nil, nil)
	h.expectUpsertSender()

	likeMatcher := gomock.Cond(func(like *dal.Like) bool {
		return like.ActorId == h.senderActor.Id &&
			like.PostId == post.Id &&
			like.ActivityUri == activityId
	})
	h.mockRepo.EXPECT().AddLikeIfNew(likeMatcher, checkEvent(dal.EvLikeCreated)).
		Return(true, nil)
	h.mockFanout.EXPECT().NotifyLike(post, h.senderActor).Return(nil)

	reqProblem, err := inbox.HandleLike(h.sender, makeLikeBody(activityId, postUrl))

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestLike_RedeliveredNotifiesOnce(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/like-1"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	post := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}
	body := makeLikeBody(activityId, postUrl)

	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil).Times(2)

	// First delivery stores and notifies; the redelivery is recognized by its
	// activity uri before anything is written
	firstGet := h.mockRepo.EXPECT().
		GetLikeByActivityUri(activityId).Return(nil, nil)
	h.mockRepo.EXPECT().
		GetLikeByActivityUri(activityId).Return(&dal.Like{Id: 7, ActivityUri: activityId}, nil).
		After(firstGet)
	h.expectUpsertSender()
	h.mockRepo.EXPECT().AddLikeIfNew(gomock.Any(), gomock.Any()).Return(true, nil)
	h.mockFanout.EXPECT().NotifyLike(post, h.senderActor).Return(nil)

	reqProblem, err := inbox.HandleLike(h.sender, body)
	assert.Nil(t, err)
	assert.Empty(t, reqProblem)

	reqProblem, err = inbox.HandleLike(h.sender, body)
	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestLike_OnForeignObjectDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/like-2"
	body := makeLikeBody(activityId, "https://elsewhere.example/users/bob/statuses/9")

	// Nothing hits the store, not even the sender upsert

	reqProblem, err := inbox.HandleLike(h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestLike_MissingIdDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	body := []byte(`{
		"type": "Like",
		"actor": "` + callerUrl + `",
		"object": "` + postUrl + `"
	}`)

	reqProblem, err := inbox.HandleLike(h.sender, body)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}
