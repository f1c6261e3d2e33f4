package logic

import (
	"errors"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"wren/dal"
	"wren/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_push_sender.go -package mocks wren/logic IPushSender

// ErrSubscriptionGone signals that the push service no longer knows the
// subscription; the caller should remove it.
var ErrSubscriptionGone = errors.New("push subscription gone")

type IPushSender interface {
	Send(sub *dal.PushSubscription, payload []byte) error
}

type pushSender struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewPushSender(cfg *shared.Config, logger shared.ILogger) IPushSender {
	return &pushSender{cfg, logger}
}

func (ps *pushSender) Send(sub *dal.PushSubscription, payload []byte) error {

	wpSub := webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotification(payload, &wpSub, &webpush.Options{
		Subscriber:      ps.cfg.VapidSubject,
		VAPIDPublicKey:  ps.cfg.Secrets.VapidPublicKey,
		VAPIDPrivateKey: ps.cfg.Secrets.VapidPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return ErrSubscriptionGone
	}
	if resp.StatusCode >= 300 {
		return errors.New("push service returned status " + resp.Status)
	}
	return nil
}
