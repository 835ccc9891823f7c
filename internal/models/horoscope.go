package models

import (
	"time"

	"github.com/google/uuid"
)

// DayStart returns UTC midnight of the calendar day t falls on in UTC.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// HoroscopeDB represents a per-user, per-day horoscope row.
// Date always holds the UTC midnight of the day it belongs to.
type HoroscopeDB struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Date          time.Time  `json:"date" db:"date"`
	ZodiacSign    ZodiacSign `json:"zodiac_sign" db:"zodiac_sign"`
	Content       string     `json:"content" db:"content"`
	Mood          *string    `json:"mood,omitempty" db:"mood"`
	Compatibility *int       `json:"compatibility,omitempty" db:"compatibility"`
	LuckyNumber   *string    `json:"lucky_number,omitempty" db:"lucky_number"`
	LuckyTime     *string    `json:"lucky_time,omitempty" db:"lucky_time"`
	LuckyColor    *string    `json:"lucky_color,omitempty" db:"lucky_color"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// HoroscopePatch holds the editable fields of a horoscope. Nil fields are left unchanged.
type HoroscopePatch struct {
	ZodiacSign    *ZodiacSign `json:"zodiac_sign,omitempty"`
	Content       *string     `json:"content,omitempty"`
	Mood          *string     `json:"mood,omitempty"`
	Compatibility *int        `json:"compatibility,omitempty"`
	LuckyNumber   *string     `json:"lucky_number,omitempty"`
	LuckyTime     *string     `json:"lucky_time,omitempty"`
	LuckyColor    *string     `json:"lucky_color,omitempty"`
}

// Apply copies the non-nil patch fields onto h.
func (p HoroscopePatch) Apply(h *HoroscopeDB) {
	if p.ZodiacSign != nil {
		h.ZodiacSign = *p.ZodiacSign
	}
	if p.Content != nil {
		h.Content = *p.Content
	}
	if p.Mood != nil {
		h.Mood = p.Mood
	}
	if p.Compatibility != nil {
		h.Compatibility = p.Compatibility
	}
	if p.LuckyNumber != nil {
		h.LuckyNumber = p.LuckyNumber
	}
	if p.LuckyTime != nil {
		h.LuckyTime = p.LuckyTime
	}
	if p.LuckyColor != nil {
		h.LuckyColor = p.LuckyColor
	}
}

// ContentBundle is the static text and metadata assigned to a sign's daily horoscope.
type ContentBundle struct {
	Content       string
	Mood          string
	Compatibility int
	LuckyNumber   string
	LuckyTime     string
	LuckyColor    string
}
