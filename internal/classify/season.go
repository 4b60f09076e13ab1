package classify

import (
	"time"

	"karigari/internal/models"
)

// Season maps a calendar date to the seasonal bucket used on sale records:
// Mar-May Spring, Jun-Aug Summer, Sep-Oct Monsoon, Nov Autumn, Dec-Feb
// Winter. Callers pass the processing time of the sale; a backfill passes the
// historical date explicitly.
func Season(t time.Time) models.Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return models.SeasonSpring
	case time.June, time.July, time.August:
		return models.SeasonSummer
	case time.September, time.October:
		return models.SeasonMonsoon
	case time.November:
		return models.SeasonAutumn
	default:
		return models.SeasonWinter
	}
}
