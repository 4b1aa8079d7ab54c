package uidom

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// PubSub is a publish/subscribe backend shared by all contexts of an app.
// Package uidomnats provides one on an embedded NATS server.
type PubSub interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (Subscription, error)
	Close() error
}

// Subscription is an active subscription.
type Subscription interface {
	Unsubscribe() error
}

// Publish encodes msg with msgpack and publishes it on subject.
func Publish[T any](c *Context, subject string, msg T) error {
	data, err := msgpack.Marshal(msg)
	if err != nil {
		return fmt.Errorf("uidom: encode %s message: %w", subject, err)
	}
	return c.Publish(subject, data)
}

// Subscribe decodes every message on subject as T. Messages that do not
// decode are logged and dropped.
func Subscribe[T any](c *Context, subject string, handler func(T)) (Subscription, error) {
	return c.Subscribe(subject, func(data []byte) {
		var msg T
		if err := msgpack.Unmarshal(data, &msg); err != nil {
			c.app.logWarn(c, "dropped %s message: %v", subject, err)
			return
		}
		handler(msg)
	})
}
