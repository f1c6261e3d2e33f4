package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/dto"
)

const noteId = "https://" + callerHost + "/users/" + callerName + "/statuses/555"
const notePublished = "2026-08-27T19:30:00Z"

func makeCreateNoteBody(inReplyTo string) []byte {
	note := `{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://` + callerHost + `/act/create-1",
		"type": "Create",
		"actor": "` + callerUrl + `",
		"object": {
			"id": "` + noteId + `",
			"type": "Note",
			"published": "` + notePublished + `",
			"attributedTo": "` + callerUrl + `",
			"inReplyTo": ` + inReplyTo + `,
			"content": "<p>Generative herons, batch 4.</p>",
			"attachment": [
				{"type": "Document", "mediaType": "image/png", "url": "https://` + callerHost + `/media/h1.png", "name": "A heron"},
				{"type": "Document", "mediaType": "image/png", "url": "https://` + callerHost + `/media/h2.png"},
				{"type": "Image", "url": "https://` + callerHost + `/media/h3.png"},
				{"type": "Link", "url": "https://` + callerHost + `/about"}
			]
		}
	}`
	return []byte(note)
}

func makeCreateActBase(t *testing.T, bodyBytes []byte) dto.ActivityInBase {
	var actBase dto.ActivityInBase
	err := actBase.UnmarshalJSON(bodyBytes)
	assert.Nil(t, err)
	return actBase
}

func TestCreateNote_StoresPostWithImages(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := makeCreateNoteBody("null")
	publishedAt, _ := time.Parse(time.RFC3339, notePublished)

	h.expectUpsertSender()

	postMatcher := gomock.Cond(func(post *dal.Post) bool {
		return post.Uri == noteId &&
			post.ActorId == h.senderActor.Id &&
			post.Kind == dal.PostRemote &&
			post.CreatedAt.Equal(publishedAt)
	})
	// The Link attachment is not media; only the three images go in
	imagesMatcher := gomock.Cond(func(images []*dal.PostImage) bool {
		return len(images) == 3 && images[0].Alt == "A heron"
	})
	tiMatcher := gomock.Cond(func(ti *dal.TimelineItem) bool {
		return ti != nil && ti.ActorId == h.senderActor.Id
	})
	h.mockRepo.EXPECT().
		AddPostIfNew(postMatcher, imagesMatcher, tiMatcher, checkEvent(dal.EvPostCreated)).
		Return(true, nil)

	reqProblem, err := inbox.HandleCreateNote(makeCreateActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestCreateNote_ReplyToLocalPostNotifies(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	origUrl := `"https://` + localHost + `/u/` + localName + `/status/42"`
	body := makeCreateNoteBody(origUrl)

	origPost := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}

	h.expectUpsertSender()
	h.mockRepo.EXPECT().
		AddPostIfNew(gomock.Any(), gomock.Any(), gomock.Any(), checkEvent(dal.EvPostCreated)).
		Return(true, nil)
	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(origPost, nil)

	replyMatcher := gomock.Cond(func(reply *dal.Post) bool {
		return reply.Uri == noteId && reply.ActorId == h.senderActor.Id
	})
	h.mockFanout.EXPECT().NotifyReply(origPost, replyMatcher, h.senderActor).Return(nil)

	reqProblem, err := inbox.HandleCreateNote(makeCreateActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestCreateNote_RedeliveredIsNoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	origUrl := `"https://` + localHost + `/u/` + localName + `/status/42"`
	body := makeCreateNoteBody(origUrl)

	h.expectUpsertSender()
	h.mockRepo.EXPECT().
		AddPostIfNew(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	h.mockRepo.EXPECT().GetPostByUri(noteId).Return(&dal.Post{Id: 77, Uri: noteId}, nil)

	// No reply notification on redelivery

	reqProblem, err := inbox.HandleCreateNote(makeCreateActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestCreateNote_MissingIdDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{
		"id": "https://` + callerHost + `/act/create-2",
		"type": "Create",
		"actor": "` + callerUrl + `",
		"object": {
			"type": "Note",
			"attributedTo": "` + callerUrl + `",
			"content": "orphan"
		}
	}`)

	reqProblem, err := inbox.HandleCreateNote(makeCreateActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}
