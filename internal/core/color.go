package core

// Color is a presentation tag for a screen cell. The platform layer maps
// tags to terminal colors; game logic only assigns tags.
type Color uint8

// Predefined colors for reef elements.
const (
	ColorDefault Color = iota
	ColorRed           // Crabs, game over title
	ColorGreen         // Advance messages
	ColorYellow        // Speed power-ups, menu cursor
	ColorBlue          // Ocean text
	ColorMagenta       // Jellyfish
	ColorCyan          // Shield power-ups, bubbles
	ColorWhite
	ColorGray   // Sharks
	ColorOrange // The player fish
	ColorCoral  // Pearls, subtitles
)
