package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/logger"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"github.com/sbilibin2017/personal-horoscope/internal/validation"
	"github.com/sbilibin2017/personal-horoscope/internal/zodiac"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=horoscope.go -destination=horoscope_mock.go -package=services

// DefaultHistoryWindowDays is used when a history request does not name a positive window.
const DefaultHistoryWindowDays = 7

// HoroscopeReader defines read operations for horoscopes.
type HoroscopeReader interface {
	FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*models.HoroscopeDB, error)     // Returns the record of the day or nil
	FindHistory(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.HoroscopeDB, error) // Returns records dated on or after since, newest first
}

// HoroscopeWriter defines write operations for horoscopes.
type HoroscopeWriter interface {
	Create(ctx context.Context, h *models.HoroscopeDB) (*models.HoroscopeDB, error)                         // Fails with errs.ErrConflict if the day is taken
	UpdateByID(ctx context.Context, id uuid.UUID, patch models.HoroscopePatch) (*models.HoroscopeDB, error) // Fails with errs.ErrNotFound
	DeleteByID(ctx context.Context, id uuid.UUID) error                                                     // Fails with errs.ErrNotFound
}

// ContentProvider returns the daily content for a sign.
type ContentProvider interface {
	Lookup(sign models.ZodiacSign) models.ContentBundle
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// HoroscopeService resolves the single daily horoscope of a user and manages stored records.
type HoroscopeService struct {
	reader      HoroscopeReader
	writer      HoroscopeWriter
	content     ContentProvider
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// HoroscopeOpt configures a HoroscopeService.
type HoroscopeOpt func(*HoroscopeService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) HoroscopeOpt {
	return func(s *HoroscopeService) {
		s.now = now
	}
}

// NewHoroscopeService creates a new HoroscopeService. kafkaWriter may be nil.
func NewHoroscopeService(
	reader HoroscopeReader,
	writer HoroscopeWriter,
	content ContentProvider,
	kafkaWriter KafkaWriter,
	opts ...HoroscopeOpt,
) *HoroscopeService {
	s := &HoroscopeService{
		reader:      reader,
		writer:      writer,
		content:     content,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DayStart returns UTC midnight of the calendar day t falls on in UTC.
func DayStart(t time.Time) time.Time {
	return models.DayStart(t)
}

// GetDailyHoroscope returns the horoscope of userID for date (today when nil), creating it
// from the content of sign if the day has none yet. An existing record is returned as stored.
func (s *HoroscopeService) GetDailyHoroscope(ctx context.Context, userID uuid.UUID, sign models.ZodiacSign, date *time.Time) (*models.HoroscopeDB, error) {
	target := s.now()
	if date != nil {
		target = *date
	}
	day := DayStart(target)

	existing, err := s.reader.FindForDay(ctx, userID, day)
	if err != nil {
		logger.Log.Errorw("failed to find horoscope", "userID", userID, "date", day, "error", err)
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	bundle := s.content.Lookup(sign)
	h := &models.HoroscopeDB{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          day,
		ZodiacSign:    sign,
		Content:       bundle.Content,
		Mood:          &bundle.Mood,
		Compatibility: &bundle.Compatibility,
		LuckyNumber:   &bundle.LuckyNumber,
		LuckyTime:     &bundle.LuckyTime,
		LuckyColor:    &bundle.LuckyColor,
	}
	if err := validation.Validate(validation.HoroscopeSchema, validation.HoroscopeData(h)); err != nil {
		logger.Log.Errorw("generated horoscope is invalid", "userID", userID, "sign", sign, "error", err)
		return nil, err
	}

	created, err := s.writer.Create(ctx, h)
	if errors.Is(err, errs.ErrConflict) {
		// Another request stored the day first
		winner, findErr := s.reader.FindForDay(ctx, userID, day)
		if findErr != nil {
			logger.Log.Errorw("failed to re-read horoscope after conflict", "userID", userID, "date", day, "error", findErr)
			return nil, findErr
		}
		if winner == nil {
			logger.Log.Errorw("conflicting horoscope not found", "userID", userID, "date", day, "error", err)
			return nil, fmt.Errorf("%w: conflicting horoscope for %s vanished", errs.ErrStorage, day.Format(time.DateOnly))
		}
		return winner, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to create horoscope", "userID", userID, "date", day, "error", err)
		return nil, err
	}

	s.publishCreated(ctx, created)
	return created, nil
}

// GetHoroscopeHistory returns the records of the last windowDays days, newest first.
func (s *HoroscopeService) GetHoroscopeHistory(ctx context.Context, userID uuid.UUID, windowDays int) ([]models.HoroscopeDB, error) {
	if windowDays <= 0 {
		windowDays = DefaultHistoryWindowDays
	}
	since := DayStart(s.now()).AddDate(0, 0, -windowDays)

	history, err := s.reader.FindHistory(ctx, userID, since)
	if err != nil {
		logger.Log.Errorw("failed to get horoscope history", "userID", userID, "since", since, "error", err)
		return nil, err
	}
	return history, nil
}

// UpdateHoroscope validates patch and applies it to the record with the given id.
func (s *HoroscopeService) UpdateHoroscope(ctx context.Context, id uuid.UUID, patch models.HoroscopePatch) (*models.HoroscopeDB, error) {
	if err := validation.Validate(validation.HoroscopePatchSchema, validation.PatchData(patch)); err != nil {
		return nil, err
	}

	updated, err := s.writer.UpdateByID(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update horoscope", "id", id, "error", err)
		return nil, err
	}
	return updated, nil
}

// DeleteHoroscope removes the record with the given id.
func (s *HoroscopeService) DeleteHoroscope(ctx context.Context, id uuid.UUID) error {
	if err := s.writer.DeleteByID(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete horoscope", "id", id, "error", err)
		return err
	}
	return nil
}

// ClassifyZodiacSign returns the sign of a birth date.
func (s *HoroscopeService) ClassifyZodiacSign(t time.Time) models.ZodiacSign {
	return zodiac.Classify(t)
}

// publishCreated publishes a creation event to Kafka. Failures are only logged.
func (s *HoroscopeService) publishCreated(ctx context.Context, h *models.HoroscopeDB) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.HoroscopeEvent{
		EventID:     uuid.NewString(),
		Timestamp:   s.now().Unix(),
		HoroscopeID: h.ID.String(),
		UserID:      h.UserID.String(),
		Date:        h.Date.Format(time.DateOnly),
		ZodiacSign:  h.ZodiacSign.String(),
		Operation:   "created",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal horoscope event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish horoscope event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Horoscope event published to Kafka", "event_id", event.EventID, "horoscope_id", event.HoroscopeID)
	}
}
