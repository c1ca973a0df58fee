package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	name string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithName overrides the family name read from the font's name table.
// Useful for fonts with empty or misleading name records.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction Direction
	language  string
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithDirection sets the text direction for the face.
// DirectionRTL turns on bidi reordering and right-to-left shaping.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithLanguage sets the language tag for the face (e.g., "en", "ar", "fa").
// The tag selects language-specific shaping rules.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}
