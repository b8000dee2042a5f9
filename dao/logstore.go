package dao

import (
	"context"
	"time"

	"prontoshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activityCollection = "activity_logs"

// LogStore 行为日志，仅追加，按条件查询/删除
type LogStore struct {
	db *mongo.Database
}

func NewLogStore(db *mongo.Database) *LogStore {
	return &LogStore{db: db}
}

func (s *LogStore) collection() *mongo.Collection {
	return s.db.Collection(activityCollection)
}

func (s *LogStore) Append(ctx context.Context, entry *models.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.collection().InsertOne(ctx, entry)
	return err
}

// LogFilter userID/action 为零值时不参与过滤
type LogFilter struct {
	UserID int64
	Action string
}

func (f LogFilter) bson() bson.M {
	filter := bson.M{}
	if f.UserID > 0 {
		filter["user_id"] = f.UserID
	}
	if f.Action != "" {
		filter["action"] = f.Action
	}
	return filter
}

func (s *LogStore) Query(ctx context.Context, filter LogFilter, limit int64) ([]*models.ActivityLog, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := s.collection().Find(ctx, filter.bson(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := make([]*models.ActivityLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *LogStore) DeleteByFilter(ctx context.Context, filter LogFilter) (int64, error) {
	result, err := s.collection().DeleteMany(ctx, filter.bson())
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
