package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore implements Store on top of a MongoDB database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies connectivity
func NewMongoStore(ctx context.Context, url, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Insert stores a document and returns the generated ObjectID as hex
func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// FindOne decodes the first matching document into out
func (s *MongoStore) FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error {
	mongoFilter, err := s.translateFilter(filter)
	if err != nil {
		return err
	}

	var raw bson.M
	err = s.db.Collection(collection).FindOne(ctx, mongoFilter).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	if out == nil {
		return nil
	}
	return decodeDocument(normalizeDocument(raw), out)
}

// Find returns up to limit matching documents with identifiers projected to strings
func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	mongoFilter, err := s.translateFilter(filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]Document, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		docs = append(docs, normalizeDocument(raw))
	}

	return docs, cur.Err()
}

// Update applies set to the first matching document
func (s *MongoStore) Update(ctx context.Context, collection string, filter Filter, set Filter) (int64, error) {
	mongoFilter, err := s.translateFilter(filter)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, mongoFilter, bson.M{"$set": bson.M(set)})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Collections lists the collection names of the database
func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// Ping checks connectivity
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) {
	_ = s.client.Disconnect(ctx)
}

// translateFilter converts the engine-neutral filter to a mongo filter,
// mapping the "_id" key to a real ObjectID
func (s *MongoStore) translateFilter(filter Filter) (bson.M, error) {
	out := bson.M{}
	for k, v := range filter {
		if k == "_id" {
			idStr, ok := v.(string)
			if !ok {
				return nil, ErrInvalidID
			}
			oid, err := bson.ObjectIDFromHex(idStr)
			if err != nil {
				return nil, ErrInvalidID
			}
			out["_id"] = oid
			continue
		}
		out[k] = v
	}
	return out, nil
}

// normalizeDocument converts driver-specific value types to plain Go values
// so documents serialize the same regardless of the backing engine
func normalizeDocument(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC()
	case bson.M:
		return normalizeDocument(val)
	case bson.D:
		m := make(Document, len(val))
		for _, elem := range val {
			m[elem.Key] = normalizeValue(elem.Value)
		}
		return m
	case bson.A:
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = normalizeValue(item)
		}
		return items
	default:
		return v
	}
}

// decodeDocument re-encodes a normalized document into a typed struct
func decodeDocument(doc Document, out interface{}) error {
	raw, err := bson.Marshal(bson.M(doc))
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
