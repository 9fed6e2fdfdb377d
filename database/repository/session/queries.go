// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edunex/models"
)

func (r *mongoSessionRepo) GetBookedByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"instructorId": instructorID,
		"date":         date,
		"status":       models.SessionStatusBooked,
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

func (r *mongoSessionRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Session, error) {
	return r.listBy(ctx, bson.M{"studentId": studentID})
}

func (r *mongoSessionRepo) ListByInstructor(ctx context.Context, instructorID string) ([]models.Session, error) {
	return r.listBy(ctx, bson.M{"instructorId": instructorID})
}

func (r *mongoSessionRepo) listBy(ctx context.Context, filter bson.M) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// FindElapsedBooked returns booked sessions whose end time has passed, i.e.
// any booked session on a past date, or one on today's date ending at or
// before nowMinutes.
func (r *mongoSessionRepo) FindElapsedBooked(ctx context.Context, today string, nowMinutes int) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.SessionStatusBooked,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": today}},
			bson.M{
				"date": today,
				"$expr": bson.M{
					"$lte": bson.A{
						bson.M{"$add": bson.A{"$start", "$durationMinutes"}},
						nowMinutes,
					},
				},
			},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch elapsed sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding elapsed sessions: %w", err)
	}
	return sessions, nil
}
