// Package content holds the static daily horoscope texts per zodiac sign.
package content

import (
	"math/rand/v2"
	"strconv"

	"github.com/sbilibin2017/personal-horoscope/internal/models"
)

// RandomSource draws pseudo-random integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

var bundles = map[models.ZodiacSign]models.ContentBundle{
	models.Aries: {
		Content:       "A day full of energy and new beginnings. Take the initiative!",
		Mood:          "Energetic",
		Compatibility: 8,
		LuckyNumber:   "7",
		LuckyTime:     "Morning",
		LuckyColor:    "Red",
	},
	models.Taurus: {
		Content:       "A stable day for you. Focus on your financial goals.",
		Mood:          "Stable",
		Compatibility: 7,
		LuckyNumber:   "4",
		LuckyTime:     "Afternoon",
		LuckyColor:    "Green",
	},
	models.Gemini: {
		Content:       "Communication is key today. Reach out to friends and colleagues.",
		Mood:          "Talkative",
		Compatibility: 9,
		LuckyNumber:   "5",
		LuckyTime:     "Evening",
		LuckyColor:    "Yellow",
	},
	models.Cancer: {
		Content:       "A good day to focus on home and family matters.",
		Mood:          "Nurturing",
		Compatibility: 6,
		LuckyNumber:   "2",
		LuckyTime:     "Night",
		LuckyColor:    "Silver",
	},
	models.Leo: {
		Content:       "Your charisma is at its peak. Lead the way!",
		Mood:          "Confident",
		Compatibility: 9,
		LuckyNumber:   "1",
		LuckyTime:     "Noon",
		LuckyColor:    "Gold",
	},
	models.Virgo: {
		Content:       "Focus on organization and details today.",
		Mood:          "Analytical",
		Compatibility: 7,
		LuckyNumber:   "6",
		LuckyTime:     "Morning",
		LuckyColor:    "Brown",
	},
	models.Libra: {
		Content:       "A great day for relationships and finding balance.",
		Mood:          "Diplomatic",
		Compatibility: 8,
		LuckyNumber:   "9",
		LuckyTime:     "Afternoon",
		LuckyColor:    "Pink",
	},
	models.Scorpio: {
		Content:       "Your intuition is strong. Trust your instincts.",
		Mood:          "Intense",
		Compatibility: 8,
		LuckyNumber:   "8",
		LuckyTime:     "Evening",
		LuckyColor:    "Maroon",
	},
	models.Sagittarius: {
		Content:       "Adventure calls! Be open to new experiences.",
		Mood:          "Adventurous",
		Compatibility: 9,
		LuckyNumber:   "3",
		LuckyTime:     "Morning",
		LuckyColor:    "Purple",
	},
	models.Capricorn: {
		Content:       "Focus on your long-term goals. Your hard work will pay off.",
		Mood:          "Ambitious",
		Compatibility: 7,
		LuckyNumber:   "10",
		LuckyTime:     "Afternoon",
		LuckyColor:    "Black",
	},
	models.Aquarius: {
		Content:       "Innovative ideas are flowing. Share them with others.",
		Mood:          "Innovative",
		Compatibility: 7,
		LuckyNumber:   "11",
		LuckyTime:     "Evening",
		LuckyColor:    "Blue",
	},
	models.Pisces: {
		Content:       "A dreamy day. Trust your intuition and creativity.",
		Mood:          "Dreamy",
		Compatibility: 8,
		LuckyNumber:   "12",
		LuckyTime:     "Night",
		LuckyColor:    "Sea Green",
	},
}

// Table looks up content bundles by sign.
type Table struct {
	rnd RandomSource
}

// Option configures a Table.
type Option func(*Table)

// WithRandomSource overrides the source used for the fallback lucky number.
func WithRandomSource(rnd RandomSource) Option {
	return func(t *Table) {
		t.rnd = rnd
	}
}

// New creates a Table backed by the static bundles.
func New(opts ...Option) *Table {
	t := &Table{rnd: globalSource{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Lookup returns the bundle for sign, or a generic fallback with a random lucky number
// when the sign is not in the table.
func (t *Table) Lookup(sign models.ZodiacSign) models.ContentBundle {
	if b, ok := bundles[sign]; ok {
		return b
	}
	return models.ContentBundle{
		Content:       "Your daily horoscope is being prepared.",
		Mood:          "Neutral",
		Compatibility: 5,
		LuckyNumber:   strconv.Itoa(t.rnd.IntN(10)),
		LuckyTime:     "Afternoon",
		LuckyColor:    "Blue",
	}
}
