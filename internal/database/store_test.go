package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
)

type fakeDatabase struct {
	collections map[string]*fakeCollection
	names       []string
	listErr     error
}

func (f *fakeDatabase) Collection(name string) Collection {
	if f.collections == nil {
		f.collections = map[string]*fakeCollection{}
	}
	c, ok := f.collections[name]
	if !ok {
		c = &fakeCollection{}
		f.collections[name] = c
	}
	return c
}

func (f *fakeDatabase) ListCollectionNames(ctx context.Context, filter interface{}) ([]string, error) {
	return f.names, f.listErr
}

type fakeCollection struct {
	inserted  []interface{}
	insertErr error
	findErr   error
	findOpts  []*options.FindOptions
	cursor    fakeCursor
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, document)
	return primitive.NewObjectID(), nil
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	f.findOpts = opts
	if f.findErr != nil {
		return nil, f.findErr
	}
	return &f.cursor, nil
}

type fakeCursor struct {
	generations []models.GenerationRecord
	presets     []models.Preset
	closed      bool
}

func (f *fakeCursor) Close(ctx context.Context) error { f.closed = true; return nil }
func (f *fakeCursor) Next(ctx context.Context) bool   { return false }
func (f *fakeCursor) Decode(v interface{}) error      { return nil }

func (f *fakeCursor) All(ctx context.Context, result interface{}) error {
	switch out := result.(type) {
	case *[]models.GenerationRecord:
		*out = f.generations
	case *[]models.Preset:
		*out = f.presets
	}
	return nil
}

func TestDisabledStore(t *testing.T) {
	s := NewStore(nil)

	assert.False(t, s.Enabled())

	_, err := s.CollectionNames(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	err = s.SaveGeneration(context.Background(), &models.GenerationRecord{})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = s.SaveUpload(context.Background(), &models.UploadRecord{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.CreatePreset(context.Background(), &models.Preset{Title: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.RecentGenerations(context.Background(), 20)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Presets(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestConnectWithoutURI(t *testing.T) {
	s, err := Connect(context.Background(), "", "ai_music_studio")
	require.NoError(t, err)
	assert.False(t, s.Enabled())
}

func TestSaveGeneration(t *testing.T) {
	db := &fakeDatabase{}
	s := NewStore(db)

	rec := &models.GenerationRecord{
		Prompt:      "lofi beat",
		AudioFormat: "wav",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.SaveGeneration(context.Background(), rec))

	coll := db.collections[CollectionGenerations]
	require.NotNil(t, coll)
	require.Len(t, coll.inserted, 1)
	assert.Same(t, rec, coll.inserted[0])
}

func TestSaveUpload(t *testing.T) {
	db := &fakeDatabase{}
	s := NewStore(db)

	rec := &models.UploadRecord{Filename: "song.mp3", Kind: "reference"}
	require.NoError(t, s.SaveUpload(context.Background(), rec))

	require.Len(t, db.collections[CollectionUploads].inserted, 1)
}

func TestCreatePreset(t *testing.T) {
	db := &fakeDatabase{}
	s := NewStore(db)

	id, err := s.CreatePreset(context.Background(), &models.Preset{
		Title:    "Warm Tape",
		Settings: map[string]interface{}{"reverb": 0.4},
	})
	require.NoError(t, err)
	assert.Len(t, id, 24) // object id hex

	db.collections[CollectionPresets].insertErr = errors.New("boom")
	_, err = s.CreatePreset(context.Background(), &models.Preset{Title: "x"})
	assert.Error(t, err)
}

func TestRecentGenerations(t *testing.T) {
	db := &fakeDatabase{}
	coll := &fakeCollection{}
	coll.cursor.generations = []models.GenerationRecord{
		{Prompt: "second"},
		{Prompt: "first"},
	}
	db.collections = map[string]*fakeCollection{CollectionGenerations: coll}
	s := NewStore(db)

	records, err := s.RecentGenerations(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Prompt)

	require.Len(t, coll.findOpts, 1)
	require.NotNil(t, coll.findOpts[0].Limit)
	assert.EqualValues(t, 20, *coll.findOpts[0].Limit)
	assert.True(t, coll.cursor.closed)

	coll.findErr = errors.New("down")
	_, err = s.RecentGenerations(context.Background(), 20)
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	db := &fakeDatabase{}
	coll := &fakeCollection{}
	coll.cursor.presets = []models.Preset{{Title: "Warm Tape"}}
	db.collections = map[string]*fakeCollection{CollectionPresets: coll}
	s := NewStore(db)

	presets, err := s.Presets(context.Background())
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, "Warm Tape", presets[0].Title)

	// presets are listed without a limit
	require.Len(t, coll.findOpts, 1)
	assert.Nil(t, coll.findOpts[0].Limit)
}

func TestCollectionNames(t *testing.T) {
	db := &fakeDatabase{names: []string{"generationrecord", "preset"}}
	s := NewStore(db)

	names, err := s.CollectionNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"generationrecord", "preset"}, names)

	db.listErr = errors.New("no reachable servers")
	_, err = s.CollectionNames(context.Background())
	assert.Error(t, err)
}
