package courseRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhub/database"
	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCourseRepo implements CourseRepository using MongoDB.
type MongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo creates a new instance of CourseRepository using MongoDB.
func NewMongoCourseRepo() CourseRepository {
	repo := &MongoCourseRepo{coll: database.Collection("courses")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCourseRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutorId", Value: 1}}},
		{Keys: bson.D{{Key: "subject", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new course document.
func (r *MongoCourseRepo) Create(course *models.Course) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by its unique ID.
func (r *MongoCourseRepo) GetByID(id string) (*models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, fmt.Errorf("failed to fetch course with id %s: %w", id, err)
	}
	return &course, nil
}

// UpdateSetDocument applies a $set update to one course document.
func (r *MongoCourseRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update course with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("course with id %s not found", id)
	}
	return nil
}

// ListByTutor retrieves every listing a tutor owns, newest first.
func (r *MongoCourseRepo) ListByTutor(tutorID string) ([]models.Course, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tutorId": tutorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve courses for tutor %s: %w", tutorID, err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

// Search retrieves active listings matching the filter, newest first.
func (r *MongoCourseRepo) Search(filter models.CourseFilter) ([]models.Course, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"status": models.CourseActive}
	if filter.Subject != "" {
		query["subject"] = filter.Subject
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}
	if filter.TutorID != "" {
		query["tutorId"] = filter.TutorID
	}
	if filter.MaxRate > 0 {
		query["hourlyRate"] = bson.M{"$lte": filter.MaxRate}
	}
	if filter.Text != "" {
		query["$text"] = bson.M{"$search": filter.Text}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

// CountByStatus counts listings in the given state.
func (r *MongoCourseRepo) CountByStatus(status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return n, nil
}
