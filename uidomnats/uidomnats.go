// Package uidomnats runs an embedded NATS server with JetStream as the
// PubSub backend of a uidom app, so component updates published by one page
// reach every other open page.
package uidomnats

import (
	"context"
	"errors"
	"fmt"

	"github.com/delaneyj/toolbelt/embeddednats"
	"github.com/nats-io/nats.go"
	"github.com/ryanhamamura/uidom"
)

var _ uidom.PubSub = (*NATS)(nil)

// NATS implements uidom.PubSub on an embedded server.
type NATS struct {
	server *embeddednats.Server
	nc     *nats.Conn
	js     nats.JetStreamContext
}

// New starts the server with its store in dataDir and connects a client.
// The server shuts down when ctx is cancelled or on Close.
func New(ctx context.Context, dataDir string) (*NATS, error) {
	ns, err := embeddednats.New(ctx, embeddednats.WithDirectory(dataDir))
	if err != nil {
		return nil, fmt.Errorf("uidomnats: start server: %w", err)
	}
	ns.WaitForServer()

	nc, err := ns.Client()
	if err != nil {
		ns.Close()
		return nil, fmt.Errorf("uidomnats: connect client: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		ns.Close()
		return nil, fmt.Errorf("uidomnats: init jetstream: %w", err)
	}
	return &NATS{server: ns, nc: nc, js: js}, nil
}

// Publish is a core NATS publish. A stream covering subject, see
// EnsureStream, keeps a copy.
func (n *NATS) Publish(subject string, data []byte) error {
	return n.nc.Publish(subject, data)
}

// Subscribe delivers every message published from now on. Earlier messages
// are only available through Replay.
func (n *NATS) Subscribe(subject string, handler func(data []byte)) (uidom.Subscription, error) {
	sub, err := n.nc.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// EnsureStream creates the stream name over subjects, keeping at most
// maxMsgs messages per subject. An existing stream is updated.
func (n *NATS) EnsureStream(name string, maxMsgs int64, subjects ...string) error {
	cfg := &nats.StreamConfig{
		Name:              name,
		Subjects:          subjects,
		Storage:           nats.FileStorage,
		MaxMsgsPerSubject: maxMsgs,
	}
	_, err := n.js.StreamInfo(name)
	switch {
	case errors.Is(err, nats.ErrStreamNotFound):
		_, err = n.js.AddStream(cfg)
	case err == nil:
		_, err = n.js.UpdateStream(cfg)
	}
	if err != nil {
		return fmt.Errorf("uidomnats: stream %s: %w", name, err)
	}
	return nil
}

// Replay delivers the stored messages on subject, oldest first, and then
// keeps delivering new ones until the subscription ends. A late page uses it
// to catch up on the updates it missed.
func (n *NATS) Replay(subject string, handler func(data []byte)) (uidom.Subscription, error) {
	sub, err := n.js.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	}, nats.DeliverAll(), nats.AckNone())
	if err != nil {
		return nil, fmt.Errorf("uidomnats: replay %s: %w", subject, err)
	}
	return sub, nil
}

// Close drains the client and stops the server.
func (n *NATS) Close() error {
	n.nc.Close()
	return n.server.Close()
}

// Conn is the client connection, for request/reply and other core NATS use.
func (n *NATS) Conn() *nats.Conn {
	return n.nc
}

func (n *NATS) JetStream() nats.JetStreamContext {
	return n.js
}
