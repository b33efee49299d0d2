package domain

import (
	"strconv"
	"time"
)

// MediaKind is the content kind of a relayed or broadcast message
type MediaKind string

const (
	KindText      MediaKind = "text"
	KindPhoto     MediaKind = "photo"
	KindVideo     MediaKind = "video"
	KindAnimation MediaKind = "animation"
	KindAudio     MediaKind = "audio"
	KindVoice     MediaKind = "voice"
	KindDocument  MediaKind = "document"
	KindSticker   MediaKind = "sticker"
)

// Payload is a captured outbound message. Media fields hold platform file ids.
type Payload struct {
	Text      string `json:"text,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Video     string `json:"video,omitempty"`
	Animation string `json:"animation,omitempty"`
	Audio     string `json:"audio,omitempty"`
	Voice     string `json:"voice,omitempty"`
	Document  string `json:"document,omitempty"`
	Sticker   string `json:"sticker,omitempty"`
}

// Kind returns the primary content kind. Animation wins over document
// because animations are also delivered with a document attached.
func (p Payload) Kind() (MediaKind, bool) {
	switch {
	case p.Text != "":
		return KindText, true
	case p.Photo != "":
		return KindPhoto, true
	case p.Video != "":
		return KindVideo, true
	case p.Animation != "":
		return KindAnimation, true
	case p.Audio != "":
		return KindAudio, true
	case p.Voice != "":
		return KindVoice, true
	case p.Document != "":
		return KindDocument, true
	case p.Sticker != "":
		return KindSticker, true
	}
	return "", false
}

// IsCommand reports whether the payload is the given slash command
func (p Payload) IsCommand(cmd string) bool {
	return p.Text == cmd
}

// PendingBroadcast is a captured broadcast awaiting confirmation
type PendingBroadcast struct {
	AdminChatID int64
	Payload     Payload
	CreatedAt   time.Time
}

// BroadcastResult tallies a broadcast fan-out
type BroadcastResult struct {
	Sent   int
	Failed int
}

// Total returns the number of attempted deliveries
func (r BroadcastResult) Total() int {
	return r.Sent + r.Failed
}

func formatChatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
