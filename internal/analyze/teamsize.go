package analyze

import (
	"regexp"
	"strconv"
)

var teamSizeNumbers = regexp.MustCompile(`\d+`)

// ParseTeamSize extracts a numeric team size from free text. A range such as
// "5-10" yields the midpoint (7.5); a single number such as "15" or
// "15 people" yields that value. Returns false when no number is present.
func ParseTeamSize(s string) (float64, bool) {
	matches := teamSizeNumbers.FindAllString(s, 2)
	switch len(matches) {
	case 0:
		return 0, false
	case 1:
		v, err := strconv.ParseFloat(matches[0], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		lo, err1 := strconv.ParseFloat(matches[0], 64)
		hi, err2 := strconv.ParseFloat(matches[1], 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return (lo + hi) / 2, true
	}
}
