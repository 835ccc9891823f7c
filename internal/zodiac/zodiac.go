// Package zodiac maps calendar dates to zodiac signs.
package zodiac

import (
	"time"

	"github.com/sbilibin2017/personal-horoscope/internal/models"
)

// boundary is an inclusive month/day range that belongs to a single sign.
// A range may wrap the year end (Capricorn).
type boundary struct {
	sign       models.ZodiacSign
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

// Pisces is the fallback and therefore has no explicit rule.
var boundaries = []boundary{
	{models.Aries, time.March, 21, time.April, 19},
	{models.Taurus, time.April, 20, time.May, 20},
	{models.Gemini, time.May, 21, time.June, 20},
	{models.Cancer, time.June, 21, time.July, 22},
	{models.Leo, time.July, 23, time.August, 22},
	{models.Virgo, time.August, 23, time.September, 22},
	{models.Libra, time.September, 23, time.October, 22},
	{models.Scorpio, time.October, 23, time.November, 21},
	{models.Sagittarius, time.November, 22, time.December, 21},
	{models.Capricorn, time.December, 22, time.January, 19},
	{models.Aquarius, time.January, 20, time.February, 18},
}

func (b boundary) contains(month time.Month, day int) bool {
	return (month == b.startMonth && day >= b.startDay) ||
		(month == b.endMonth && day <= b.endDay)
}

// Classify returns the zodiac sign for the given date.
// Only the UTC month and day are used, so the result does not depend on the caller's time zone.
func Classify(t time.Time) models.ZodiacSign {
	utc := t.UTC()
	month, day := utc.Month(), utc.Day()

	for _, b := range boundaries {
		if b.contains(month, day) {
			return b.sign
		}
	}
	return models.Pisces
}

// Signs returns all twelve signs in calendar order starting from Aries.
func Signs() []models.ZodiacSign {
	return []models.ZodiacSign{
		models.Aries, models.Taurus, models.Gemini, models.Cancer,
		models.Leo, models.Virgo, models.Libra, models.Scorpio,
		models.Sagittarius, models.Capricorn, models.Aquarius, models.Pisces,
	}
}

// IsValid reports whether s is one of the twelve signs.
func IsValid(s models.ZodiacSign) bool {
	for _, sign := range Signs() {
		if sign == s {
			return true
		}
	}
	return false
}
