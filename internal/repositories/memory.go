package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
)

type dayKey struct {
	userID uuid.UUID
	date   int64
}

func newDayKey(userID uuid.UUID, date time.Time) dayKey {
	return dayKey{userID: userID, date: models.DayStart(date).Unix()}
}

// MemoryHoroscopeRepository keeps horoscopes in process memory.
// It keeps at most one horoscope per user and UTC day, stored at midnight.
type MemoryHoroscopeRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]models.HoroscopeDB
	byDay map[dayKey]uuid.UUID
	now   func() time.Time
}

func NewMemoryHoroscopeRepository() *MemoryHoroscopeRepository {
	return &MemoryHoroscopeRepository{
		byID:  make(map[uuid.UUID]models.HoroscopeDB),
		byDay: make(map[dayKey]uuid.UUID),
		now:   time.Now,
	}
}

func (r *MemoryHoroscopeRepository) FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*models.HoroscopeDB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	end := day.Add(24 * time.Hour)
	for _, h := range r.byID {
		if h.UserID == userID && !h.Date.Before(day) && h.Date.Before(end) {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryHoroscopeRepository) FindHistory(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.HoroscopeDB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := []models.HoroscopeDB{}
	for _, h := range r.byID {
		if h.UserID == userID && !h.Date.Before(since) {
			history = append(history, h)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	return history, nil
}

func (r *MemoryHoroscopeRepository) Create(ctx context.Context, h *models.HoroscopeDB) (*models.HoroscopeDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newDayKey(h.UserID, h.Date)
	if _, exists := r.byDay[key]; exists {
		return nil, errs.ErrConflict
	}
	if _, exists := r.byID[h.ID]; exists {
		return nil, errs.ErrConflict
	}

	created := *h
	created.Date = models.DayStart(created.Date)
	created.CreatedAt = r.now().UTC()
	created.UpdatedAt = created.CreatedAt

	r.byID[created.ID] = created
	r.byDay[key] = created.ID
	return &created, nil
}

func (r *MemoryHoroscopeRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch models.HoroscopePatch) (*models.HoroscopeDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	patch.Apply(&h)
	h.UpdatedAt = r.now().UTC()
	r.byID[id] = h
	return &h, nil
}

func (r *MemoryHoroscopeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byID[id]
	if !ok {
		return errs.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byDay, newDayKey(h.UserID, h.Date))
	return nil
}

// Len returns the number of stored horoscopes.
func (r *MemoryHoroscopeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// MemoryUserRepository keeps users in process memory with unique emails.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.UserDB
	byEmail map[string]uuid.UUID
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[uuid.UUID]models.UserDB),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	user := r.byID[id]
	return &user, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := user.Email
	if _, exists := r.byEmail[email]; exists {
		return nil, errs.ErrConflict
	}

	saved := *user
	saved.CreatedAt = time.Now().UTC()
	saved.UpdatedAt = saved.CreatedAt
	r.byID[saved.UserID] = saved
	r.byEmail[email] = saved.UserID
	return &saved, nil
}
