package parameter

import "time"

// Speed label thresholds, compared against the current tick interval
const (
	SpeedSlowMin   = 180 * time.Millisecond
	SpeedNormalMin = 140 * time.Millisecond
	SpeedFastMin   = 100 * time.Millisecond
)

// Performance rating score thresholds
const (
	RatingTopScore      = 50
	RatingAdvancedScore = 30
	RatingSkilledScore  = 20
	RatingCompetentMin  = 10
)

// Terminal layout
const (
	// HUDHeight is the number of rows reserved above the board
	HUDHeight = 2

	// FrameUpdateInterval is the rendering interval of the terminal front end (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond
)
