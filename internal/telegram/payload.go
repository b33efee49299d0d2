package telegram

import (
	"wishlist/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// PayloadFromMessage captures the content of an incoming message.
// Telebot already keeps only the largest photo size.
func PayloadFromMessage(m *tele.Message) domain.Payload {
	if m == nil {
		return domain.Payload{}
	}

	p := domain.Payload{
		Text:    m.Text,
		Caption: m.Caption,
	}
	if m.Photo != nil {
		p.Photo = m.Photo.FileID
	}
	if m.Video != nil {
		p.Video = m.Video.FileID
	}
	if m.Animation != nil {
		p.Animation = m.Animation.FileID
	}
	if m.Audio != nil {
		p.Audio = m.Audio.FileID
	}
	if m.Voice != nil {
		p.Voice = m.Voice.FileID
	}
	if m.Document != nil {
		p.Document = m.Document.FileID
	}
	if m.Sticker != nil {
		p.Sticker = m.Sticker.FileID
	}
	return p
}

// Sendable builds the telebot value for the payload's primary kind.
// Text is sent without a parse mode so it arrives verbatim.
func Sendable(p domain.Payload) (interface{}, bool) {
	kind, ok := p.Kind()
	if !ok {
		return nil, false
	}

	switch kind {
	case domain.KindText:
		return p.Text, true
	case domain.KindPhoto:
		return &tele.Photo{File: tele.File{FileID: p.Photo}, Caption: p.Caption}, true
	case domain.KindVideo:
		return &tele.Video{File: tele.File{FileID: p.Video}, Caption: p.Caption}, true
	case domain.KindAnimation:
		return &tele.Animation{File: tele.File{FileID: p.Animation}, Caption: p.Caption}, true
	case domain.KindAudio:
		return &tele.Audio{File: tele.File{FileID: p.Audio}, Caption: p.Caption}, true
	case domain.KindVoice:
		return &tele.Voice{File: tele.File{FileID: p.Voice}, Caption: p.Caption}, true
	case domain.KindDocument:
		return &tele.Document{File: tele.File{FileID: p.Document}, Caption: p.Caption}, true
	case domain.KindSticker:
		return &tele.Sticker{File: tele.File{FileID: p.Sticker}}, true
	}
	return nil, false
}
