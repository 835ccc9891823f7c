package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/logger"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	horoscopesCollection = "horoscopes"
	usersCollection      = "users"
)

// logCommand logs a collection operation with its filter, result and error.
func logCommand(collection, op string, filter any, result any, err error) {
	logger.Log.Infow("mongo",
		"op", collection+"."+op,
		"filter", filter,
		"result", result,
		"error", err,
	)
}

// mapMongoError translates driver errors into the errs taxonomy.
func mapMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return errs.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errs.ErrConflict
	default:
		return errs.Storage(err)
	}
}

type horoscopeDocument struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	Date          time.Time `bson:"date"`
	ZodiacSign    string    `bson:"zodiac_sign"`
	Content       string    `bson:"content"`
	Mood          *string   `bson:"mood,omitempty"`
	Compatibility *int      `bson:"compatibility,omitempty"`
	LuckyNumber   *string   `bson:"lucky_number,omitempty"`
	LuckyTime     *string   `bson:"lucky_time,omitempty"`
	LuckyColor    *string   `bson:"lucky_color,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func toHoroscopeDocument(h *models.HoroscopeDB) horoscopeDocument {
	return horoscopeDocument{
		ID:            h.ID.String(),
		UserID:        h.UserID.String(),
		Date:          models.DayStart(h.Date),
		ZodiacSign:    string(h.ZodiacSign),
		Content:       h.Content,
		Mood:          h.Mood,
		Compatibility: h.Compatibility,
		LuckyNumber:   h.LuckyNumber,
		LuckyTime:     h.LuckyTime,
		LuckyColor:    h.LuckyColor,
		CreatedAt:     h.CreatedAt.UTC(),
		UpdatedAt:     h.UpdatedAt.UTC(),
	}
}

func (d horoscopeDocument) toModel() (*models.HoroscopeDB, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return &models.HoroscopeDB{
		ID:            id,
		UserID:        userID,
		Date:          d.Date.UTC(),
		ZodiacSign:    models.ZodiacSign(d.ZodiacSign),
		Content:       d.Content,
		Mood:          d.Mood,
		Compatibility: d.Compatibility,
		LuckyNumber:   d.LuckyNumber,
		LuckyTime:     d.LuckyTime,
		LuckyColor:    d.LuckyColor,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}, nil
}

// MongoHoroscopeRepository stores horoscopes in a MongoDB collection.
type MongoHoroscopeRepository struct {
	col *mongo.Collection
}

func NewMongoHoroscopeRepository(db *mongo.Database) *MongoHoroscopeRepository {
	return &MongoHoroscopeRepository{col: db.Collection(horoscopesCollection)}
}

// EnsureIndexes creates the unique (user_id, date) index and the (zodiac_sign, date) lookup index.
func (r *MongoHoroscopeRepository) EnsureIndexes(ctx context.Context) error {
	names, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("user_date_unique"),
		},
		{
			Keys:    bson.D{{Key: "zodiac_sign", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("sign_date"),
		},
	})
	logCommand(horoscopesCollection, "createIndexes", nil, names, err)
	return mapMongoError(err)
}

func (r *MongoHoroscopeRepository) FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*models.HoroscopeDB, error) {
	filter := bson.M{
		"user_id": userID.String(),
		"date": bson.M{
			"$gte": day.UTC(),
			"$lt":  day.UTC().Add(24 * time.Hour),
		},
	}

	var doc horoscopeDocument
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	logCommand(horoscopesCollection, "findOne", filter, doc.ID, err)

	if err = mapMongoError(err); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toModel()
}

func (r *MongoHoroscopeRepository) FindHistory(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.HoroscopeDB, error) {
	filter := bson.M{
		"user_id": userID.String(),
		"date":    bson.M{"$gte": since.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		logCommand(horoscopesCollection, "find", filter, nil, err)
		return nil, errs.Storage(err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []horoscopeDocument
	err = cursor.All(ctx, &docs)
	logCommand(horoscopesCollection, "find", filter, len(docs), err)
	if err != nil {
		return nil, errs.Storage(err)
	}

	history := make([]models.HoroscopeDB, 0, len(docs))
	for _, doc := range docs {
		h, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		history = append(history, *h)
	}
	return history, nil
}

func (r *MongoHoroscopeRepository) Create(ctx context.Context, h *models.HoroscopeDB) (*models.HoroscopeDB, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := toHoroscopeDocument(h)
	doc.CreatedAt, doc.UpdatedAt = now, now

	_, err := r.col.InsertOne(ctx, doc)
	logCommand(horoscopesCollection, "insertOne", bson.M{"_id": doc.ID}, doc.Date, err)

	if err = mapMongoError(err); err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *MongoHoroscopeRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch models.HoroscopePatch) (*models.HoroscopeDB, error) {
	set := bson.M{"updated_at": time.Now().UTC().Truncate(time.Millisecond)}
	if patch.ZodiacSign != nil {
		set["zodiac_sign"] = string(*patch.ZodiacSign)
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Mood != nil {
		set["mood"] = *patch.Mood
	}
	if patch.Compatibility != nil {
		set["compatibility"] = *patch.Compatibility
	}
	if patch.LuckyNumber != nil {
		set["lucky_number"] = *patch.LuckyNumber
	}
	if patch.LuckyTime != nil {
		set["lucky_time"] = *patch.LuckyTime
	}
	if patch.LuckyColor != nil {
		set["lucky_color"] = *patch.LuckyColor
	}

	filter := bson.M{"_id": id.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc horoscopeDocument
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	logCommand(horoscopesCollection, "findOneAndUpdate", filter, set, err)

	if err = mapMongoError(err); err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *MongoHoroscopeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	filter := bson.M{"_id": id.String()}

	res, err := r.col.DeleteOne(ctx, filter)
	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}
	logCommand(horoscopesCollection, "deleteOne", filter, deleted, err)

	if err != nil {
		return errs.Storage(err)
	}
	if deleted == 0 {
		return errs.ErrNotFound
	}
	return nil
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Birthdate    time.Time `bson:"birthdate"`
	ZodiacSign   string    `bson:"zodiac_sign"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d userDocument) toModel() (*models.UserDB, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return &models.UserDB{
		UserID:       id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Birthdate:    d.Birthdate.UTC(),
		ZodiacSign:   models.ZodiacSign(d.ZodiacSign),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}, nil
}

// MongoUserRepository stores users in a MongoDB collection.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	name, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	logCommand(usersCollection, "createIndexes", nil, name, err)
	return mapMongoError(err)
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.findOne(ctx, bson.M{"email": email}, true)
}

func (r *MongoUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.findOne(ctx, bson.M{"_id": userID.String()}, false)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, nilIfMissing bool) (*models.UserDB, error) {
	var doc userDocument
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	logCommand(usersCollection, "findOne", filter, doc.ID, err)

	if err = mapMongoError(err); err != nil {
		if nilIfMissing && errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toModel()
}

func (r *MongoUserRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := userDocument{
		ID:           user.UserID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Birthdate:    user.Birthdate.UTC(),
		ZodiacSign:   string(user.ZodiacSign),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.col.InsertOne(ctx, doc)
	logCommand(usersCollection, "insertOne", bson.M{"_id": doc.ID, "email": doc.Email}, nil, err)

	if err = mapMongoError(err); err != nil {
		return nil, err
	}
	return doc.toModel()
}
