package model

// ThemeName identifies a card face theme
type ThemeName string

const (
	ThemeEmoji       ThemeName = "emoji"
	ThemeProgramming ThemeName = "programming"
	ThemeAnimals     ThemeName = "animals"
	ThemeFlags       ThemeName = "flags"
	ThemeCustom      ThemeName = "custom" // player-supplied image URLs
)

// ThemePacks holds the built-in text token lists. Each pack carries enough
// tokens for the hardest difficulty; a deck takes the first N.
var ThemePacks = map[ThemeName][]string{
	ThemeEmoji: {
		"\U0001F604", "\U0001F929", "\U0001F60E", "\U0001F973",
		"\U0001F60A", "\U0001F60D", "\U0001F914", "\U0001F60F",
		"\U0001F970", "\U0001F9E0", "\U0001F60B", "\U0001F47D",
	},
	ThemeProgramming: {
		"</>", "TS", "JS", "API", "SQL", "CLI",
		"GIT", "BUG", "UX", "UI", "CSS", "NPM",
	},
	ThemeAnimals: {
		"\U0001F436", "\U0001F431", "\U0001F42F", "\U0001F98A",
		"\U0001F43C", "\U0001F984", "\U0001F98B", "\U0001F438",
		"\U0001F437", "\U0001F981", "\U0001F428", "\U0001F43B",
	},
	ThemeFlags: {
		"\U0001F1FA\U0001F1F8", "\U0001F1EB\U0001F1F7", "\U0001F1EF\U0001F1F5",
		"\U0001F1E7\U0001F1F7", "\U0001F1E9\U0001F1EA", "\U0001F1E8\U0001F1E6",
		"\U0001F1EC\U0001F1E7", "\U0001F1EE\U0001F1F3", "\U0001F1E6\U0001F1FA",
		"\U0001F1F8\U0001F1EA", "\U0001F1F2\U0001F1FD", "\U0001F1F0\U0001F1F7",
	},
}
