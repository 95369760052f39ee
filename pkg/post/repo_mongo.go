package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPost struct {
	MongoID   primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *mongoPost) toPost() *Post {
	return &Post{
		ID:        d.MongoID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Author:    d.Author,
		CreatedAt: d.CreatedAt,
	}
}

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection(postsTable),
	}
}

func (r *MongoRepo) Create(ctx context.Context, p *Post) error {
	doc := mongoPost{
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	p.ID = oid.Hex()
	p.CreatedAt = doc.CreatedAt
	return nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id string) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc mongoPost
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	return doc.toPost(), nil
}

func (r *MongoRepo) List(ctx context.Context) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*Post
	for cursor.Next(ctx) {
		var doc mongoPost
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		posts = append(posts, doc.toPost())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.collection.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
