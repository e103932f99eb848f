package models

// FallbackColour fills points and swatches whose category has no colour of its own.
const FallbackColour = "#999999"

// ColourMap assigns a 3 byte hex colour with the # prefix to each category value.
type ColourMap map[string]string

func (m ColourMap) Colour(category string) string {
	if c, ok := m[category]; ok && c != "" {
		return c
	}
	return FallbackColour
}
