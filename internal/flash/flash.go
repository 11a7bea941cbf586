// Package flash implements transient notifications on top of Fiber's
// session middleware: a message survives exactly until the next page
// render pops it.
package flash

import (
	"encoding/gob"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionKey = "flash_messages"

// Message is a single pending notification.
type Message struct {
	Kind string // "success" or "error"
	Text string
}

func init() {
	// Session data is gob-encoded on save.
	gob.Register([]Message{})
}

// Success queues a success notification for the next render.
func Success(store *session.Store, c *fiber.Ctx, text string) error {
	return push(store, c, Message{Kind: "success", Text: text})
}

// Error queues an error notification for the next render.
func Error(store *session.Store, c *fiber.Ctx, text string) error {
	return push(store, c, Message{Kind: "error", Text: text})
}

// Pop returns all pending messages and clears them. A session that
// cannot be loaded just yields no messages.
func Pop(store *session.Store, c *fiber.Ctx) []Message {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}
	msgs, _ := sess.Get(sessionKey).([]Message)
	if len(msgs) > 0 {
		sess.Delete(sessionKey)
		_ = sess.Save()
	}
	return msgs
}

func push(store *session.Store, c *fiber.Ctx, msg Message) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	msgs, _ := sess.Get(sessionKey).([]Message)
	sess.Set(sessionKey, append(msgs, msg))
	return sess.Save()
}
