package pricing

import (
	"time"

	"travelcalc/internal/types"
)

// lowSeasonJanuaryLastDay is the last January day still counted as low season.
const lowSeasonJanuaryLastDay = 14

// ClassifySeason maps the first day of travel to its season.
// April-September is high; October-December and January 1-14 are low;
// the rest of January, February and March are shoulder.
func ClassifySeason(start types.Date) Season {
	switch m := start.Month; {
	case m >= time.April && m <= time.September:
		return SeasonHigh
	case m >= time.October && m <= time.December:
		return SeasonLow
	case m == time.January && start.Day <= lowSeasonJanuaryLastDay:
		return SeasonLow
	default:
		return SeasonShoulder
	}
}
