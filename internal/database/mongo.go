// Package database persists studio records in MongoDB. The driver is
// wrapped behind narrow interfaces so handlers and tests never touch
// *mongo.Client directly.
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client interface {
	Database(name string) Database
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
}

type Database interface {
	Collection(name string) Collection
	ListCollectionNames(ctx context.Context, filter interface{}) ([]string, error)
}

type Collection interface {
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error)
}

type Cursor interface {
	Close(ctx context.Context) error
	Next(ctx context.Context) bool
	Decode(v interface{}) error
	All(ctx context.Context, result interface{}) error
}

type mongoClient struct{ cl *mongo.Client }
type mongoDatabase struct{ db *mongo.Database }
type mongoCollection struct{ coll *mongo.Collection }
type mongoCursor struct{ mc *mongo.Cursor }

// NewClient builds an unconnected driver client for the given URI.
func NewClient(uri string) (Client, error) {
	c, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &mongoClient{cl: c}, nil
}

func (mc *mongoClient) Database(name string) Database {
	return &mongoDatabase{db: mc.cl.Database(name)}
}

func (mc *mongoClient) Connect(ctx context.Context) error {
	return mc.cl.Connect(ctx)
}

func (mc *mongoClient) Disconnect(ctx context.Context) error {
	return mc.cl.Disconnect(ctx)
}

func (mc *mongoClient) Ping(ctx context.Context) error {
	return mc.cl.Ping(ctx, readpref.Primary())
}

func (md *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{coll: md.db.Collection(name)}
}

func (md *mongoDatabase) ListCollectionNames(ctx context.Context, filter interface{}) ([]string, error) {
	return md.db.ListCollectionNames(ctx, filter)
}

func (mc *mongoCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := mc.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (mc *mongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	cur, err := mc.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{mc: cur}, nil
}

func (mr *mongoCursor) Close(ctx context.Context) error { return mr.mc.Close(ctx) }

func (mr *mongoCursor) Next(ctx context.Context) bool { return mr.mc.Next(ctx) }

func (mr *mongoCursor) Decode(v interface{}) error { return mr.mc.Decode(v) }

func (mr *mongoCursor) All(ctx context.Context, result interface{}) error {
	return mr.mc.All(ctx, result)
}
