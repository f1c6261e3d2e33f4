package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"wren/dal"
)

func makeUndoFollowBody(undoId, followId string) []byte {
	body := `{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Undo",
		"actor": "%s",
		"object": {
			"id": "%s",
			"type": "Follow",
			"actor": "%s",
			"object": "https://%s/u/%s"
		}
	}`
	return []byte(fmt.Sprintf(body, undoId, callerUrl, followId, callerUrl, localHost, localName))
}

func TestUndoFollow_RedeliveredIsNoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := makeUndoFollowBody(
		"https://"+callerHost+"/act/undo-1",
		"https://"+callerHost+"/act/follow-1")

	// Two deliveries of the same Undo: the follow row goes away once
	h.expectLocalUserLookup()
	h.expectLocalUserLookup()
	h.mockResolver.EXPECT().ResolveByUri(callerUrl).Return(h.senderActor, nil).Times(2)
	firstRemove := h.mockRepo.EXPECT().
		RemoveFollow(h.senderActor.Id, h.localActor.Id, checkEvent(dal.EvFollowRemoved)).
		Return(true, nil)
	h.mockRepo.EXPECT().
		RemoveFollow(h.senderActor.Id, h.localActor.Id, checkEvent(dal.EvFollowRemoved)).
		Return(false, nil).After(firstRemove)

	// The follower gauge refreshes only on the delivery that removed the row
	h.mockRepo.EXPECT().GetFollowerCount(h.localActor.Id).Return(uint(0), nil)
	h.mockMetrics.EXPECT().TotalFollowers(0)

	reqProblem, err := inbox.HandleUndo(h.sender, body)
	assert.Nil(t, err)
	assert.Empty(t, reqProblem)

	reqProblem, err = inbox.HandleUndo(h.sender, body)
	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestUndoFollow_UnknownActorIsNoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := makeUndoFollowBody(
		"https://"+callerHost+"/act/undo-2",
		"https://"+callerHost+"/act/follow-2")

	h.expectLocalUserLookup()
	h.mockResolver.EXPECT().ResolveByUri(callerUrl).Return(nil, nil)

	// Never seen this actor: nothing to remove

	reqProblem, err := inbox.HandleUndo(h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestUndoLike_RemovesLike(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	likeUri := "https://" + callerHost + "/act/like-1"
	body := []byte(`{
		"id": "https://` + callerHost + `/act/undo-3",
		"type": "Undo",
		"actor": "` + callerUrl + `",
		"object": {
			"id": "` + likeUri + `",
			"type": "Like",
			"actor": "` + callerUrl + `"
		}
	}`)

	h.mockRepo.EXPECT().
		RemoveLikeByActivityUri(likeUri, checkEvent(dal.EvLikeRemoved)).
		Return(true, nil)

	reqProblem, err := inbox.HandleUndo(h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestUndoAnnounce_RemovesRepost(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	announceUri := "https://" + callerHost + "/act/boost-1"
	body := []byte(`{
		"id": "https://` + callerHost + `/act/undo-4",
		"type": "Undo",
		"actor": "` + callerUrl + `",
		"object": {
			"id": "` + announceUri + `",
			"type": "Announce",
			"actor": "` + callerUrl + `"
		}
	}`)

	h.mockRepo.EXPECT().
		RemoveRepostByActivityUri(announceUri, checkEvent(dal.EvRepostRemoved)).
		Return(true, nil)

	reqProblem, err := inbox.HandleUndo(h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestUndo_UnsupportedObjectTypeDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{
		"id": "https://` + callerHost + `/act/undo-5",
		"type": "Undo",
		"actor": "` + callerUrl + `",
		"object": {
			"id": "https://` + callerHost + `/act/block-1",
			"type": "Block",
			"actor": "` + callerUrl + `"
		}
	}`)

	reqProblem, err := inbox.HandleUndo(h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}
