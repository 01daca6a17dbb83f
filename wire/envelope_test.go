package wire

import (
	"strings"
	"testing"

	"github.com/ashmitb/unistory/domain"
)

func sampleItem() domain.Item {
	return domain.Item{
		ID:          "story-42",
		OwnerID:     "acct-owner",
		Kind:        domain.KindImage,
		MediaURL:    "https://cdn.unilife.example/media/42.jpg",
		Background:  "gradient:sunset",
		TextContent: "",
	}
}

func TestReplyCarriesBothMarkersAndReplyText(t *testing.T) {
	body, err := Reply(sampleItem(), "nice shot!")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if !strings.HasPrefix(body, openMarker) {
		t.Fatalf("missing opening marker: %q", body)
	}
	if !strings.HasSuffix(body, closeMarker) {
		t.Fatalf("missing closing marker: %q", body)
	}

	env, ok := Decode(body)
	if !ok {
		t.Fatalf("Decode failed on own output: %q", body)
	}
	if env.IsReaction {
		t.Fatalf("reply decoded with is_reaction=true")
	}
	if env.Message != "nice shot!" {
		t.Fatalf("message = %q, want %q", env.Message, "nice shot!")
	}
	if env.StoryID != "story-42" || env.StoryType != "image" {
		t.Fatalf("story fields lost: %+v", env)
	}
}

func TestReactionSetsFlagWithoutDraftText(t *testing.T) {
	body, err := Reaction(sampleItem(), "🔥")
	if err != nil {
		t.Fatalf("Reaction: %v", err)
	}
	env, ok := Decode(body)
	if !ok {
		t.Fatalf("Decode failed: %q", body)
	}
	if !env.IsReaction {
		t.Fatalf("reaction decoded with is_reaction=false")
	}
	if env.Message != "🔥" {
		t.Fatalf("message = %q, want the emoji", env.Message)
	}
}

func TestDetectIgnoresOrdinaryText(t *testing.T) {
	for _, body := range []string{
		"hey, are you coming to the study group?",
		"half-open [[story-reply]] with no close",
		"[[/story-reply]] close before open [[story-reply]]",
		"",
	} {
		if Detect(body) {
			t.Fatalf("Detect(%q) = true, want false", body)
		}
	}
}

func TestDecodeSurvivesSurroundingText(t *testing.T) {
	// Some clients prepend notification text around forwarded messages.
	inner, _ := Reply(sampleItem(), "see you there")
	body := "fwd: " + inner + "\n(sent from mobile)"
	env, ok := Decode(body)
	if !ok {
		t.Fatalf("Decode failed with surrounding text")
	}
	if env.Message != "see you there" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	body := openMarker + "{not json" + closeMarker
	if _, ok := Decode(body); ok {
		t.Fatalf("Decode accepted malformed JSON")
	}
	if !Detect(body) {
		// Detection is frame-level only; consumers fall back to verbatim
		// rendering when Decode fails.
		t.Fatalf("Detect should still see the frame")
	}
}

func TestTextCardEnvelopeCarriesContentAndBackground(t *testing.T) {
	item := domain.Item{
		ID:          "story-7",
		Kind:        domain.KindText,
		TextContent: "exam week survival tips",
		Background:  "solid:navy",
	}
	body, err := Reply(item, "needed this")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	env, _ := Decode(body)
	if env.StoryContent != "exam week survival tips" {
		t.Fatalf("story_content = %q", env.StoryContent)
	}
	if env.StoryBG != "solid:navy" {
		t.Fatalf("story_background = %q", env.StoryBG)
	}
}
