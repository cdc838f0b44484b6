package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jurat11/BiteWise-sub000/models"
)

// Mongo implements Store on top of a MongoDB database with users, meals,
// water, streaks and badges collections.
type Mongo struct {
	client  *mongo.Client
	users   *mongo.Collection
	meals   *mongo.Collection
	water   *mongo.Collection
	streaks *mongo.Collection
	badges  *mongo.Collection
}

// ConnectMongo dials MongoDB, pings it and returns the store handle.
func ConnectMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	return &Mongo{
		client:  client,
		users:   db.Collection("users"),
		meals:   db.Collection("meals"),
		water:   db.Collection("water"),
		streaks: db.Collection("streaks"),
		badges:  db.Collection("badges"),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

func (m *Mongo) PutUser(ctx context.Context, u *models.User) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.users.ReplaceOne(ctx, bson.M{"_id": u.ID}, u, opts); err != nil {
		return fmt.Errorf("put user %d: %w", u.ID, err)
	}
	return nil
}

func (m *Mongo) PatchUser(ctx context.Context, id int64, fields map[string]any) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	if _, err := m.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("patch user %d: %w", id, err)
	}
	return nil
}

func (m *Mongo) AllUsers(ctx context.Context) ([]models.User, error) {
	cur, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (m *Mongo) AppendMeal(ctx context.Context, rec *models.MealRecord) error {
	if _, err := m.meals.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("append meal for %d: %w", rec.UserID, err)
	}
	return nil
}

func (m *Mongo) AppendWater(ctx context.Context, ev *models.WaterEvent) error {
	if _, err := m.water.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("append water for %d: %w", ev.UserID, err)
	}
	return nil
}

func (m *Mongo) MealsBetween(ctx context.Context, userID int64, lo, hi time.Time) ([]models.MealRecord, error) {
	filter := bson.M{"user_id": userID, "at": bson.M{"$gte": lo, "$lt": hi}}
	cur, err := m.meals.Find(ctx, filter, options.Find().SetSort(bson.M{"at": 1}))
	if err != nil {
		return nil, fmt.Errorf("query meals for %d: %w", userID, err)
	}
	defer cur.Close(ctx)

	var recs []models.MealRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode meals for %d: %w", userID, err)
	}
	return recs, nil
}

func (m *Mongo) WaterBetween(ctx context.Context, userID int64, lo, hi time.Time) ([]models.WaterEvent, error) {
	filter := bson.M{"user_id": userID, "at": bson.M{"$gte": lo, "$lt": hi}}
	cur, err := m.water.Find(ctx, filter, options.Find().SetSort(bson.M{"at": 1}))
	if err != nil {
		return nil, fmt.Errorf("query water for %d: %w", userID, err)
	}
	defer cur.Close(ctx)

	var evs []models.WaterEvent
	if err := cur.All(ctx, &evs); err != nil {
		return nil, fmt.Errorf("decode water for %d: %w", userID, err)
	}
	return evs, nil
}

func (m *Mongo) CountAllMeals(ctx context.Context, userID int64) (int64, error) {
	n, err := m.meals.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count meals for %d: %w", userID, err)
	}
	return n, nil
}

func (m *Mongo) SumAllWater(ctx context.Context, userID int64) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount_ml"}}}},
	}
	cur, err := m.water.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum water for %d: %w", userID, err)
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("decode water sum for %d: %w", userID, err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

func (m *Mongo) GetStreak(ctx context.Context, userID int64, kind string) (*models.Streak, error) {
	var s models.Streak
	err := m.streaks.FindOne(ctx, bson.M{"user_id": userID, "kind": kind}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s streak for %d: %w", kind, userID, err)
	}
	return &s, nil
}

func (m *Mongo) PutStreak(ctx context.Context, s *models.Streak) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"user_id": s.UserID, "kind": s.Kind}
	if _, err := m.streaks.ReplaceOne(ctx, filter, s, opts); err != nil {
		return fmt.Errorf("put %s streak for %d: %w", s.Kind, s.UserID, err)
	}
	return nil
}

func (m *Mongo) GetBadges(ctx context.Context, userID int64) (map[string]bool, error) {
	var doc struct {
		Earned map[string]bool `bson:"earned"`
	}
	err := m.badges.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get badges for %d: %w", userID, err)
	}
	if doc.Earned == nil {
		doc.Earned = map[string]bool{}
	}
	return doc.Earned, nil
}

func (m *Mongo) PutBadges(ctx context.Context, userID int64, badges map[string]bool) error {
	opts := options.Replace().SetUpsert(true)
	doc := bson.M{"_id": userID, "earned": badges}
	if _, err := m.badges.ReplaceOne(ctx, bson.M{"_id": userID}, doc, opts); err != nil {
		return fmt.Errorf("put badges for %d: %w", userID, err)
	}
	return nil
}
