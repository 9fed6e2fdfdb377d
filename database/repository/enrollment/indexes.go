// FILE: database/repository/enrollment/indexes.go
package enrollmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the enrollments collection.
func (r *mongoEnrollmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One enrollment per student per course
		{
			Keys:    bson.D{{Key: "courseId", Value: 1}, {Key: "studentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_course_student"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create enrollment indexes: %w", err)
	}
	return nil
}
