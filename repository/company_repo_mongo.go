package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shivamroadways/models"
)

type MongoCompanyRepo struct {
	DB *mongo.Client
}

func NewMongoCompanyRepo(db *mongo.Client) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db}
}

func (r *MongoCompanyRepo) SaveProfile(profile *models.CompanyProfile) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	if profile.ID == 0 {
		id, err := nextSequence(ctx, db, "company_profile")
		if err != nil {
			return err
		}
		profile.ID = id
	}

	_, err := db.Collection("company_profile").ReplaceOne(ctx,
		bson.M{"_id": profile.ID},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}

// GetProfile returns the most recently saved profile.
func (r *MongoCompanyRepo) GetProfile() (*models.CompanyProfile, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	var profile models.CompanyProfile
	err := db.Collection("company_profile").FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.M{"_id": -1})).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
