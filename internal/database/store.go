package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
)

// Collection names follow the original schema convention: lowercase
// model name, one collection per record type.
const (
	CollectionGenerations = "generationrecord"
	CollectionPresets     = "preset"
	CollectionUploads     = "uploadrecord"
)

// ErrUnavailable is returned by every operation when the store was
// created without a MongoDB connection.
var ErrUnavailable = errors.New("database: not configured")

const opTimeout = 5 * time.Second

// Store reads and writes the studio's record collections. Persistence is
// best-effort: callers decide whether a failed write matters.
type Store struct {
	db Database
}

// NewStore wraps an already connected database. A nil database yields a
// disabled store whose operations fail with ErrUnavailable.
func NewStore(db Database) *Store {
	return &Store{db: db}
}

// Connect dials MongoDB and returns a store over the named database. An
// empty URI returns a disabled store and no error; the caller is expected
// to run without persistence. Connection problems after a successful dial
// are handled per-operation, the driver reconnects on its own.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return NewStore(nil), nil
	}

	client, err := NewClient(uri)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return NewStore(client.Database(dbName)), nil
}

// Enabled reports whether a database connection was configured.
func (s *Store) Enabled() bool {
	return s.db != nil
}

// CollectionNames lists the database's collections for the health report.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.db.ListCollectionNames(ctx, bson.M{})
}

// SaveGeneration appends a track to the generation history.
func (s *Store) SaveGeneration(ctx context.Context, rec *models.GenerationRecord) error {
	if s.db == nil {
		return ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.Collection(CollectionGenerations).InsertOne(ctx, rec)
	return err
}

// SaveUpload records a stored reference upload and its analysis.
func (s *Store) SaveUpload(ctx context.Context, rec *models.UploadRecord) error {
	if s.db == nil {
		return ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.Collection(CollectionUploads).InsertOne(ctx, rec)
	return err
}

// CreatePreset stores a preset and returns its id.
func (s *Store) CreatePreset(ctx context.Context, preset *models.Preset) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	id, err := s.db.Collection(CollectionPresets).InsertOne(ctx, preset)
	if err != nil {
		return "", err
	}
	oid, ok := id.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", id)
	}
	return oid.Hex(), nil
}

// RecentGenerations returns history entries newest first. A limit of 0
// returns everything.
func (s *Store) RecentGenerations(ctx context.Context, limit int64) ([]models.GenerationRecord, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.db.Collection(CollectionGenerations).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.GenerationRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Presets returns every saved preset, newest first.
func (s *Store) Presets(ctx context.Context) ([]models.Preset, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.db.Collection(CollectionPresets).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var presets []models.Preset
	if err := cur.All(ctx, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}
