package logic

import (
	"fmt"

	"wren/dal"
	"wren/dto"
	"wren/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_resolver.go -package mocks wren/logic IActorResolver

// RemoteIdentity is what we know about a remote actor from a fetched profile
// document or from the activity envelope itself.
type RemoteIdentity struct {
	Uri      string
	InboxUrl string
	Url      string
	Username string
	LogoUri  string
}

type IActorResolver interface {
	ResolveByUri(uri string) (*dal.Actor, error)
	ResolveByUserId(userId int64) (*dal.Actor, error)
	// UpsertRemoteActor records a remote identity idempotently: a new actor
	// emits RemoteActorCreated, a changed logo emits ActorLogoUpdated, and an
	// unchanged identity emits nothing.
	UpsertRemoteActor(identity *RemoteIdentity) (*dal.Actor, error)
	// ResolveOrFetchRemote returns the stored actor for a URI, fetching and
	// upserting the remote profile if we have never seen it.
	ResolveOrFetchRemote(actorUrl string) (*dal.Actor, error)
}

type actorResolver struct {
	logger  shared.ILogger
	repo    dal.IRepo
	fetcher IDocumentFetcher
}

func NewActorResolver(logger shared.ILogger, repo dal.IRepo, fetcher IDocumentFetcher) IActorResolver {
	return &actorResolver{logger, repo, fetcher}
}

func (ar *actorResolver) ResolveByUri(uri string) (*dal.Actor, error) {
	return ar.repo.GetActorByUri(uri)
}

func (ar *actorResolver) ResolveByUserId(userId int64) (*dal.Actor, error) {
	return ar.repo.GetActorByUserId(userId)
}

func (ar *actorResolver) UpsertRemoteActor(identity *RemoteIdentity) (*dal.Actor, error) {

	if identity.Uri == "" || identity.InboxUrl == "" {
		return nil, fmt.Errorf("remote identity must have uri and inbox url")
	}

	existing, err := ar.repo.GetActorByUri(identity.Uri)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		actor := &dal.Actor{
			Uri:      identity.Uri,
			InboxUrl: identity.InboxUrl,
			LogoUri:  identity.LogoUri,
			Url:      identity.Url,
			Username: identity.Username,
		}
		evt := dal.NewEvent(dal.AggActor, dal.EvRemoteActorCreated, identity)
		var isNew bool
		isNew, err = ar.repo.AddRemoteActorIfNew(actor, evt)
		if err != nil {
			return nil, err
		}
		if isNew {
			return actor, nil
		}
		// Lost a race against a concurrent delivery for the same actor;
		// the uri unique key is the serialization point. Retry as update.
		ar.logger.Debugf("Concurrent insert of actor %s; retrying as update", identity.Uri)
		existing, err = ar.repo.GetActorByUri(identity.Uri)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("actor %s vanished after duplicate-key conflict", identity.Uri)
		}
	}

	if identity.LogoUri != existing.LogoUri {
		evt := dal.NewEvent(dal.AggActor, dal.EvActorLogoUpdated, identity)
		if err = ar.repo.UpdateActorLogo(existing.Id, identity.LogoUri, evt); err != nil {
			return nil, err
		}
		existing.LogoUri = identity.LogoUri
	}

	return existing, nil
}

func (ar *actorResolver) ResolveOrFetchRemote(actorUrl string) (*dal.Actor, error) {

	actor, err := ar.repo.GetActorByUri(actorUrl)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		return actor, nil
	}

	var info *dto.UserInfo
	if info, err = ar.fetcher.FetchActor(actorUrl); err != nil {
		return nil, err
	}
	return ar.UpsertRemoteActor(IdentityFromUserInfo(info))
}

func IdentityFromUserInfo(info *dto.UserInfo) *RemoteIdentity {
	return &RemoteIdentity{
		Uri:      info.Id,
		InboxUrl: info.Inbox,
		Url:      info.Url,
		Username: info.PreferredUserName,
		LogoUri:  info.Icon.Url,
	}
}
