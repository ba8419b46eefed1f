package protocol

import "testing"

// TestChatMarshalParseIsIdentity covers spec.md §8's round-trip law:
// toJson -> parse -> toJson is the identity on canonical forms.
func TestChatMarshalParseIsIdentity(t *testing.T) {
	c := Chat{
		Text:  "hello",
		Color: "red",
		Bold:  true,
		Extra: []Chat{Plain("world")},
	}

	first, err := MarshalChat(c)
	if err != nil {
		t.Fatalf("first marshal: %v", err)
	}

	parsed, err := ParseChat(first)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	second, err := MarshalChat(parsed)
	if err != nil {
		t.Fatalf("second marshal: %v", err)
	}

	if string(first) != string(second) {
		t.Fatalf("marshal -> parse -> marshal not idempotent:\n%s\n%s", first, second)
	}
}

// TestChatMarshalEscapesControlCharacters covers spec.md §6's escaping
// requirement for quote, backslash, and the common whitespace controls.
func TestChatMarshalEscapesControlCharacters(t *testing.T) {
	c := Plain("say \"hi\"\\n\tnext\nline")
	data, err := MarshalChat(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	parsed, err := ParseChat(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Text != c.Text {
		t.Fatalf("round trip changed text: got %q, want %q", parsed.Text, c.Text)
	}
}
