package repos

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultMongoDB = "chiragbattery"

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects and pings the server; timeout bounds server selection.
func OpenMongo(ctx context.Context, uri, name string, timeout time.Duration) (*MongoStore, error) {
	if name == "" {
		name = defaultMongoDB
	}
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &MongoStore{client: client, db: client.Database(name)}, nil
}

func (s *MongoStore) Name() string { return s.db.Name() }

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore) Close() error { return s.client.Disconnect(context.Background()) }

func (s *MongoStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fail(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if err := filter.check(); err != nil {
		return nil, err
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter(filter), opts)
	if err != nil {
		return nil, fail(err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fail(err)
	}
	out := make([]Document, 0, len(raw))
	for _, m := range raw {
		delete(m, "_id")
		out = append(out, Document(m))
	}
	return out, nil
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fail(err)
	}
	return n, nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fail(err)
	}
	return names, nil
}

func mongoFilter(filter Filter) bson.D {
	conds := make(bson.A, 0, len(filter))
	for _, c := range filter {
		switch c.Op {
		case OpEq:
			conds = append(conds, bson.D{{Key: c.Field, Value: c.Value}})
		case OpContainsFold:
			conds = append(conds, bson.D{{Key: c.Field, Value: primitive.Regex{Pattern: regexp.QuoteMeta(c.Value), Options: "i"}}})
		}
	}
	switch len(conds) {
	case 0:
		return bson.D{}
	case 1:
		return conds[0].(bson.D)
	}
	return bson.D{{Key: "$and", Value: conds}}
}

func fail(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
