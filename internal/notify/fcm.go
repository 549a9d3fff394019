package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"go.uber.org/zap"

	"studymate-backend/internal/models"
)

// Notifier tells a partner's devices that someone requested them.
type Notifier interface {
	PartnerRequested(ctx context.Context, req *models.PartnerRequest) error
}

// Sender is the part of *messaging.Client we use.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier publishes to the topic "partner-<partnerId>"; the partner's
// client app subscribes to it after creating a profile.
type FCMNotifier struct {
	sender Sender
	logger *zap.Logger
}

func NewFCMNotifier(ctx context.Context, app *firebase.App, logger *zap.Logger) (*FCMNotifier, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging client: %w", err)
	}
	return NewFCMNotifierWithSender(client, logger), nil
}

func NewFCMNotifierWithSender(sender Sender, logger *zap.Logger) *FCMNotifier {
	return &FCMNotifier{sender: sender, logger: logger}
}

func TopicForPartner(partnerID string) string {
	return "partner-" + partnerID
}

func (n *FCMNotifier) PartnerRequested(ctx context.Context, req *models.PartnerRequest) error {
	message := &messaging.Message{
		Topic: TopicForPartner(req.PartnerID),
		Notification: &messaging.Notification{
			Title: "New study partner request",
			Body:  fmt.Sprintf("%s wants to study %s with you", req.RequestedBy, req.Subject),
		},
		Data: map[string]string{
			"partnerId":   req.PartnerID,
			"requestedBy": req.RequestedBy,
		},
	}

	id, err := n.sender.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send fcm message: %w", err)
	}
	n.logger.Debug("partner request notification sent",
		zap.String("partner_id", req.PartnerID),
		zap.String("message_id", id))
	return nil
}

// Nop is used when FCM is disabled.
type Nop struct{}

func (Nop) PartnerRequested(context.Context, *models.PartnerRequest) error { return nil }
