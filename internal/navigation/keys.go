package navigation

import "strings"

// ParseKey splits a key name as Bubble Tea prints it ("j", "up", "esc",
// "ctrl+c") into the raw input and modifier flags the decoder expects
func ParseKey(key string) (string, Modifiers) {
	var mods Modifiers
	switch key {
	case "up":
		mods.Up = true
		return "", mods
	case "down":
		mods.Down = true
		return "", mods
	case "left":
		mods.Left = true
		return "", mods
	case "right":
		mods.Right = true
		return "", mods
	case "esc":
		mods.Escape = true
		return "", mods
	}

	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && rest != "" {
		mods.Ctrl = true
		return rest, mods
	}
	return key, mods
}

// DecodeKey is Decode applied to a key name
func DecodeKey(key string) Intent {
	return Decode(ParseKey(key))
}
