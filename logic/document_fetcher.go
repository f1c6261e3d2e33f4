package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wren/dto"
	"wren/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_document_fetcher.go -package mocks wren/logic IDocumentFetcher

// IDocumentFetcher retrieves remote actor and note documents. This is the only
// place the inbox pipeline goes out to the network for reads; each handler
// fetches on its own, so one slow remote never stalls another activity.
type IDocumentFetcher interface {
	FetchActor(actorUrl string) (info *dto.UserInfo, err error)
	FetchNote(noteUrl string) (note *dto.Note, err error)
}

type documentFetcher struct {
	cfg *shared.Config
}

func NewDocumentFetcher(cfg *shared.Config) IDocumentFetcher {
	return &documentFetcher{cfg}
}

func (df *documentFetcher) FetchActor(actorUrl string) (info *dto.UserInfo, err error) {
	var obj dto.UserInfo
	if err = df.fetchJson(actorUrl, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

func (df *documentFetcher) FetchNote(noteUrl string) (note *dto.Note, err error) {
	var obj dto.Note
	if err = df.fetchJson(noteUrl, &obj); err != nil {
		return nil, err
	}
	if obj.Type != "Note" {
		return nil, fmt.Errorf("document at %s is not a Note; got type '%s'", noteUrl, obj.Type)
	}
	return &obj, nil
}

func (df *documentFetcher) fetchJson(docUrl string, obj any) error {

	timeoutSec := df.cfg.FetchTimeoutSec
	if timeoutSec == 0 {
		timeoutSec = 10
	}
	client := &http.Client{Timeout: time.Second * time.Duration(timeoutSec)}

	var err error
	var req *http.Request
	if req, err = http.NewRequest("GET", docUrl, nil); err != nil {
		return err
	}
	req.Header.Set("Accept", "application/activity+json, application/json")
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to get document %s; got status %v", docUrl, resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return err
	}

	return json.Unmarshal(bodyBytes, obj)
}
