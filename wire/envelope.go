// Package wire encodes story replies and reactions into the direct-message
// channel. A story reply travels as an ordinary text message whose body is a
// sentinel-delimited JSON envelope; message-list consumers call Detect to
// tell story replies apart from plain text.
package wire

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ashmitb/unistory/domain"
)

// The markers are literal substrings no ordinary user text is expected to
// contain. Both must be present, in order, for a message to decode.
const (
	openMarker  = "[[story-reply]]"
	closeMarker = "[[/story-reply]]"
)

// Envelope is the JSON payload carried between the markers.
type Envelope struct {
	StoryID       string `json:"story_id"`
	StoryType     string `json:"story_type"`
	StoryMediaURL string `json:"story_media_url"`
	StoryBG       string `json:"story_background"`
	StoryContent  string `json:"story_content"`
	IsReaction    bool   `json:"is_reaction"`
	Message       string `json:"message"`
}

// Reply frames a typed reply to the given item.
func Reply(item domain.Item, message string) (string, error) {
	return encode(item, message, false)
}

// Reaction frames a single-emoji reaction to the given item.
func Reaction(item domain.Item, emoji string) (string, error) {
	return encode(item, emoji, true)
}

func encode(item domain.Item, message string, reaction bool) (string, error) {
	env := Envelope{
		StoryID:       item.ID,
		StoryType:     string(item.Kind),
		StoryMediaURL: item.MediaURL,
		StoryBG:       item.Background,
		StoryContent:  item.TextContent,
		IsReaction:    reaction,
		Message:       message,
	}
	body, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encoding story envelope: %w", err)
	}
	return openMarker + string(body) + closeMarker, nil
}

// Detect reports whether a message body carries a story envelope.
func Detect(body string) bool {
	start := strings.Index(body, openMarker)
	if start < 0 {
		return false
	}
	return strings.Index(body[start:], closeMarker) > 0
}

// Decode extracts the envelope from a message body. The second return is
// false when the body is ordinary text or the framing is malformed; callers
// should then render the body verbatim.
func Decode(body string) (Envelope, bool) {
	start := strings.Index(body, openMarker)
	if start < 0 {
		return Envelope{}, false
	}
	rest := body[start+len(openMarker):]
	end := strings.Index(rest, closeMarker)
	if end < 0 {
		return Envelope{}, false
	}
	var env Envelope
	if err := json.Unmarshal([]byte(rest[:end]), &env); err != nil {
		return Envelope{}, false
	}
	return env, true
}
