package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"portfolio/database"
	"portfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts the booking. The unique (date, time) index makes the
// conflict check and the write one atomic operation; a duplicate-key error
// means another request won the slot.
func (r *MongoBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// BookedTimes returns the start times of confirmed bookings on the given date.
func (r *MongoBookingRepo) BookedTimes(ctx context.Context, date string) ([]string, error) {
	filter := bson.M{"date": date, "status": models.BookingStatusConfirmed}
	opts := options.Find().SetProjection(bson.M{"time": 1}).SetSort(bson.D{{Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var times []string
	for cursor.Next(ctx) {
		var doc struct {
			Time string `bson:"time"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		times = append(times, doc.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading bookings: %w", err)
	}
	return times, nil
}

// SetCalendarFields records calendar sync results on an existing booking.
func (r *MongoBookingRepo) SetCalendarFields(ctx context.Context, id, eventID, meetingLink string) error {
	update := bson.M{"$set": bson.M{
		"external_event_id": eventID,
		"meeting_link":      meetingLink,
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update booking %s with calendar fields: %w", id, err)
	}
	return nil
}

// ensureIndexes creates the indexes the reservation path relies on. The
// partial unique index on (date, time) for confirmed bookings is the
// uniqueness invariant enforced at the store.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
