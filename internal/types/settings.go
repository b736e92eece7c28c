package types

// EditorSettings holds the editor preferences persisted in settings.json.
type EditorSettings struct {
	Theme          string  `json:"theme"`
	FontSize       int     `json:"font_size"`
	LineHeight     float64 `json:"line_height"`
	EditorWidth    int     `json:"editor_width"`
	FontFamily     string  `json:"font_family"`
	ReviewMode     string  `json:"review_mode"`
	Aggressiveness string  `json:"aggressiveness"`
	WritingContext string  `json:"writing_context"`
	SoundEnabled   bool    `json:"sound_enabled"`
}

// DefaultSettings returns the settings used before the user has saved any.
func DefaultSettings() EditorSettings {
	return EditorSettings{
		Theme:          "system",
		FontSize:       16,
		LineHeight:     1.6,
		EditorWidth:    720,
		FontFamily:     "mono",
		ReviewMode:     "manual",
		Aggressiveness: "balanced",
		SoundEnabled:   true,
	}
}
