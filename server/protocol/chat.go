package protocol

import "encoding/json"

// Chat is a chat component, per spec.md §6: a JSON text object with
// optional styling flags and nested extras.
type Chat struct {
	Text          string  `json:"text"`
	Color         string  `json:"color,omitempty"`
	Bold          bool    `json:"bold,omitempty"`
	Italic        bool    `json:"italic,omitempty"`
	Underlined    bool    `json:"underlined,omitempty"`
	Strikethrough bool    `json:"strikethrough,omitempty"`
	Obfuscated    bool    `json:"obfuscated,omitempty"`
	Extra         []Chat  `json:"extra,omitempty"`
}

// Plain returns a Chat with no styling.
func Plain(text string) Chat { return Chat{Text: text} }

// MarshalChat serializes c to its wire JSON form. encoding/json already
// escapes `"`, `\`, newline, carriage return and tab, satisfying spec.md
// §6's escaping requirement.
func MarshalChat(c Chat) ([]byte, error) { return json.Marshal(c) }

// ParseChat deserializes a chat component from its wire JSON form, the
// inverse of MarshalChat.
func ParseChat(data []byte) (Chat, error) {
	var c Chat
	err := json.Unmarshal(data, &c)
	return c, err
}
