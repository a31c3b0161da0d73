package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shivamroadways/models"
)

const mongoDatabase = "shivamroadways"

type MongoBookingRepo struct {
	DB *mongo.Client
}

func NewMongoBookingRepo(db *mongo.Client) *MongoBookingRepo {
	return &MongoBookingRepo{DB: db}
}

// nextSequence hands out monotonic IDs from a counters collection so the
// mongo documents keep the same int64 key shape as the postgres rows.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *MongoBookingRepo) SaveBooking(b *models.Booking) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now().UTC()
	}
	if b.Kind == "" {
		b.Kind = models.KindBooking
	}
	if b.Status == "" {
		b.Status = "draft"
	}

	if b.ID == 0 {
		id, err := nextSequence(ctx, db, "booking")
		if err != nil {
			return err
		}
		b.ID = id
	} else {
		now := time.Now().UTC()
		b.UpdatedAt = &now
	}
	if b.BookingNo == "" {
		b.BookingNo = fmt.Sprintf("BK-%d", b.ID)
	}

	for i := range b.Items {
		b.Items[i].BookingID = b.ID
	}

	_, err := db.Collection("booking").ReplaceOne(ctx,
		bson.M{"_id": b.ID},
		b,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoBookingRepo) GetBookings(filters map[string]interface{}, single bool) ([]*models.Booking, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var b models.Booking
		err := db.Collection("booking").FindOne(ctx, bsonFilter).Decode(&b)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return []*models.Booking{}, nil
			}
			return nil, err
		}
		return []*models.Booking{&b}, nil
	}

	cur, err := db.Collection("booking").Find(ctx, bsonFilter,
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Booking
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cur.Err()
}

func (r *MongoBookingRepo) UpdateSlipCreated(bookingID int64, slipPath string, t time.Time) error {
	ctx := context.Background()
	_, err := r.DB.Database(mongoDatabase).Collection("booking").UpdateOne(ctx,
		bson.M{"_id": bookingID},
		bson.M{"$set": bson.M{"slip_created_at": t, "slip_path": slipPath}},
	)
	return err
}

func (r *MongoBookingRepo) DeleteBooking(bookingID int64) error {
	ctx := context.Background()
	res, err := r.DB.Database(mongoDatabase).Collection("booking").DeleteOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
