// FILE: database/repository/session/indexes.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edunex/models"
)

// EnsureIndexes creates the necessary indexes on the sessions collection.
func (r *mongoSessionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on Session ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// At most one booked session per (instructorId, date, start).
		// Cancelled and completed sessions are excluded so the slot can be
		// rebooked after a cancellation.
		{
			Keys: bson.D{{Key: "instructorId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_booked_slot").
				SetPartialFilterExpression(bson.M{"status": models.SessionStatusBooked}),
		},
		// Primary query pattern: booked sessions for an instructor's day
		{
			Keys:    bson.D{{Key: "instructorId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("instructor_date_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("student_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}
