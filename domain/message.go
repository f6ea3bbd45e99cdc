// Package domain contains core concepts of the assistant.
// This file defines inbound messages and recorded utterances.
// No transport, backend, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatID identifies a conversation channel on the chat platform.
type ChatID int64

// UserID identifies a platform account.
type UserID int64

// ReplyContext carries the message an inbound message replies to,
// when that original message had text.
type ReplyContext struct {
	SenderName string
	Text       string
}

// IncomingMessage is one inbound chat event, already reduced to the
// fields the assistant cares about. ID is assigned at the transport
// boundary and only used for log correlation.
type IncomingMessage struct {
	ID         uuid.UUID
	Chat       ChatID
	Sender     UserID
	SenderName string
	MessageID  int // platform-side id, used to reply
	Text       string
	ReplyTo    *ReplyContext
	At         time.Time
}

// Utterance is one recorded text message attributed to a speaker.
// Immutable once recorded.
type Utterance struct {
	SpeakerName string
	Text        string
}

// Line renders the utterance the way prompts and summaries expect it.
func (u Utterance) Line() string {
	return u.SpeakerName + ": " + u.Text
}

// BotInfo identifies the assistant's own platform account, used to
// detect mentions and to keep its messages out of duel scoring.
type BotInfo struct {
	ID          UserID
	Username    string
	DisplayName string
}

// Mention returns the handle users type to address the assistant.
func (b BotInfo) Mention() string {
	return "@" + b.Username
}
