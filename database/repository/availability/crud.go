// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edunex/models"
)

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, avail *models.DayAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if avail.ID == "" {
		avail.ID = uuid.New().String()
	}
	avail.UpdatedAt = time.Now()

	filter := bson.M{"instructorId": avail.InstructorID, "date": avail.Date}
	update := bson.M{
		"$set": bson.M{
			"timeRanges": avail.TimeRanges,
			"isBlocked":  avail.IsBlocked,
			"dayNote":    avail.DayNote,
			"updatedAt":  avail.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":           avail.ID,
			"instructorId": avail.InstructorID,
			"date":         avail.Date,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *mongoAvailabilityRepo) GetByInstructorAndDate(ctx context.Context, instructorID, date string) (*models.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"instructorId": instructorID, "date": date}
	var avail models.DayAvailability
	err := r.coll.FindOne(ctx, filter).Decode(&avail)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Absent availability is a valid state, not a failure.
			return nil, nil
		}
		return nil, err
	}
	return &avail, nil
}

func (r *mongoAvailabilityRepo) SetBlocked(ctx context.Context, instructorID, date string, blocked bool, dayNote string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"instructorId": instructorID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"isBlocked": blocked,
			"dayNote":   dayNote,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"id":           uuid.New().String(),
			"instructorId": instructorID,
			"date":         date,
			"timeRanges":   []models.TimeRange{},
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}
