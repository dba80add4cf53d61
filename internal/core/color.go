package core

import "image/color"

// Predefined colors for game elements.
// Kept opaque so a Surface can be handed to a GPU upload without
// premultiplication surprises.
var (
	ColorBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorBlue   = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	ColorYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
