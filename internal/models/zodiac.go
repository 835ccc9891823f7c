package models

// ZodiacSign is one of the twelve western zodiac signs.
type ZodiacSign string

// Supported zodiac signs
const (
	Aries       ZodiacSign = "Aries"
	Taurus      ZodiacSign = "Taurus"
	Gemini      ZodiacSign = "Gemini"
	Cancer      ZodiacSign = "Cancer"
	Leo         ZodiacSign = "Leo"
	Virgo       ZodiacSign = "Virgo"
	Libra       ZodiacSign = "Libra"
	Scorpio     ZodiacSign = "Scorpio"
	Sagittarius ZodiacSign = "Sagittarius"
	Capricorn   ZodiacSign = "Capricorn"
	Aquarius    ZodiacSign = "Aquarius"
	Pisces      ZodiacSign = "Pisces"
)

// String returns the sign name.
func (z ZodiacSign) String() string {
	return string(z)
}
