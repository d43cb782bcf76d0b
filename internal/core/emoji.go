package core

import (
	"strings"
	"unicode"
)

// EmojiShortcode returns name when the trimmed content is exactly ":name:".
// The name must be non-empty and contain neither colons nor whitespace.
func EmojiShortcode(content string) (string, bool) {
	content = strings.TrimSpace(content)
	if len(content) < 3 || content[0] != ':' || content[len(content)-1] != ':' {
		return "", false
	}
	name := content[1 : len(content)-1]
	if strings.ContainsFunc(name, func(r rune) bool { return r == ':' || unicode.IsSpace(r) }) {
		return "", false
	}
	return name, true
}

// FindEmoji returns the emoji with exactly this name.
func FindEmoji(emojis []Emoji, name string) (Emoji, bool) {
	for _, e := range emojis {
		if e.Name == name {
			return e, true
		}
	}
	return Emoji{}, false
}
