package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogd/blogd/internal/post"
)

// MongoRepo implements a MongoDB-backed repository for blog posts.
// Posts carry their own "id" string field (server-assigned UUIDs) rather
// than relying on Mongo ObjectIDs, so lookups go through a unique index.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, p *post.Post) error {
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	_, err := m.col.InsertOne(ctx, p)
	return err
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*post.Post, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*post.Post{}
	for cur.Next(ctx) {
		var p post.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial $set and returns the post as stored afterwards.
// The "id" and "created" fields are never part of the $set document.
func (m *MongoRepo) Update(ctx context.Context, id string, upd Update) (*post.Post, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Author != nil {
		set["author"] = *upd.Author
	}
	if len(set) == 0 {
		return m.FindByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p post.Post
	err := m.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}

// Drop removes the whole collection; used by test teardown for isolation.
func (m *MongoRepo) Drop(ctx context.Context) error {
	return m.col.Drop(ctx)
}
