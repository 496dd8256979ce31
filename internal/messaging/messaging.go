package messaging

import (
	"context"

	"firebase.google.com/go/messaging"
	"github.com/drinkgo/drinkgo-backend/internal/firebase"
)

//PushSender Interface for FB messaging client
type PushSender interface {
	Send(ctx context.Context, msg *messaging.Message) error
}

//Client Real implementation of FB messaging client
type Client struct{}

//Send Sends the message
func (c Client) Send(ctx context.Context, msg *messaging.Message) error {
	_, err := firebase.FirebaseMessaging.Send(ctx, msg)
	return err
}

//MockClient NOOP implementation of FB messaging client
type MockClient struct {
	Sent []*messaging.Message
}

//Send Records the message
func (c *MockClient) Send(ctx context.Context, msg *messaging.Message) error {
	c.Sent = append(c.Sent, msg)
	return nil
}
