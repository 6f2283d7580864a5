package content

import (
	"context"

	"github.com/learning-notifier/learning-notifier/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, c *models.Content) (*models.Content, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return c, nil
}

func (r *MongoRepository) FindRecentUsed(ctx context.Context, limit int) ([]models.Content, error) {
	return r.findUsed(ctx, bson.M{"isUsed": true}, limit)
}

func (r *MongoRepository) FindUsedByTopicArea(ctx context.Context, topicArea string, limit int) ([]models.Content, error) {
	return r.findUsed(ctx, bson.M{"topicArea": topicArea, "isUsed": true}, limit)
}

func (r *MongoRepository) findUsed(ctx context.Context, filter bson.M, limit int) ([]models.Content, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "generatedAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Content
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) MarkUsed(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"isUsed": true}})
	return err
}
