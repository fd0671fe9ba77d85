package session

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Rating is a performance band shown on the end screen
type Rating struct {
	Label string
	Color core.RGB
}

// ratingBands are checked top down; the first band whose MinScore is reached wins
var ratingBands = []struct {
	MinScore int
	Rating
}{
	{parameter.RatingTopScore, Rating{"Neural Master", core.RGBRatingPink}},
	{parameter.RatingAdvancedScore, Rating{"Advanced Operator", core.RGBRatingPink}},
	{parameter.RatingSkilledScore, Rating{"Skilled Technician", core.RGBRatingPink}},
	{parameter.RatingCompetentMin, Rating{"Competent User", core.RGBRatingRose}},
}

var ratingNovice = Rating{"Novice Subject", core.RGBRatingPink}

// RatingFor returns the band for a final score
func RatingFor(score int) Rating {
	for _, b := range ratingBands {
		if score >= b.MinScore {
			return b.Rating
		}
	}
	return ratingNovice
}
