package models

// HoroscopeEvent is published whenever a daily horoscope is generated for a user.
type HoroscopeEvent struct {
	EventID     string `json:"event_id"`     // EventID is a unique identifier for the event.
	Timestamp   int64  `json:"timestamp"`    // Timestamp is the Unix timestamp (in seconds) when the horoscope was created.
	HoroscopeID string `json:"horoscope_id"` // HoroscopeID identifies the created record.
	UserID      string `json:"user_id"`      // UserID is the owner of the record.
	Date        string `json:"date"`         // Date is the day the horoscope belongs to, YYYY-MM-DD.
	ZodiacSign  string `json:"zodiac_sign"`  // ZodiacSign is the sign the content was taken from.
	Operation   string `json:"operation"`    // Operation describes the event type, e.g. "created".
}
