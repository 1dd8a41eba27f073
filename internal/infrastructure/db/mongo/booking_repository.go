package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/transpoease/booking-system/internal/core/domain"
	"github.com/transpoease/booking-system/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// mongoBooking is the persisted document shape. The domain aggregate uses a
// string id; the document uses a native ObjectID.
type mongoBooking struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	TrackingNumber      string             `bson:"tracking_number"`
	CustomerID          string             `bson:"customer_id"`
	PickupAddress       domain.Address     `bson:"pickup_address"`
	DeliveryAddress     domain.Address     `bson:"delivery_address"`
	PackageType         string             `bson:"package_type"`
	WeightKg            float64            `bson:"weight_kg"`
	PackageDescription  string             `bson:"package_description"`
	SpecialInstructions string             `bson:"special_instructions,omitempty"`
	Price               float64            `bson:"price"`
	Status              string             `bson:"status"`
	EstimatedDelivery   time.Time          `bson:"estimated_delivery_date"`
	ActualDelivery      *time.Time         `bson:"actual_delivery_date,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func toDoc(b *domain.Booking) mongoBooking {
	return mongoBooking{
		TrackingNumber:      b.TrackingNumber,
		CustomerID:          b.CustomerID,
		PickupAddress:       b.PickupAddress,
		DeliveryAddress:     b.DeliveryAddress,
		PackageType:         string(b.PackageType),
		WeightKg:            b.WeightKg,
		PackageDescription:  b.PackageDescription,
		SpecialInstructions: b.SpecialInstructions,
		Price:               b.Price,
		Status:              string(b.Status),
		EstimatedDelivery:   b.EstimatedDelivery,
		ActualDelivery:      b.ActualDelivery,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func toDomain(m mongoBooking) *domain.Booking {
	return &domain.Booking{
		ID:                  m.ID.Hex(),
		TrackingNumber:      m.TrackingNumber,
		CustomerID:          m.CustomerID,
		PickupAddress:       m.PickupAddress,
		DeliveryAddress:     m.DeliveryAddress,
		PackageType:         domain.PackageType(m.PackageType),
		WeightKg:            m.WeightKg,
		PackageDescription:  m.PackageDescription,
		SpecialInstructions: m.SpecialInstructions,
		Price:               m.Price,
		Status:              domain.BookingStatus(m.Status),
		EstimatedDelivery:   m.EstimatedDelivery,
		ActualDelivery:      m.ActualDelivery,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// Create inserts a booking document and fills in the generated id. A unique
// index violation on tracking_number maps to ErrDuplicateTrackingNumber so
// the caller can retry with a fresh number.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDoc(b))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTrackingNumber
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoBooking
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return toDomain(m), nil
}

func (r *BookingRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoBooking
	if err := r.col.FindOne(ctx, bson.M{"tracking_number": trackingNumber}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return toDomain(m), nil
}

// ListByCustomer returns all of a customer's bookings, newest first.
func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Booking
	for cur.Next(ctx) {
		var m mongoBooking
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		out = append(out, toDomain(m))
	}
	return out, cur.Err()
}

// List returns a page of bookings matching filter and the total count,
// newest first.
// List returns one page of bookings plus the matching total. The count
// and the page are two separate reads, so the total can drift from the
// page contents when bookings are inserted concurrently.
func (r *BookingRepository) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PackageType != "" {
		query["package_type"] = filter.PackageType
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Booking
	for cur.Next(ctx) {
		var m mongoBooking
		if err := cur.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode booking: %w", err)
		}
		out = append(out, toDomain(m))
	}
	return out, total, cur.Err()
}

// UpdateStatus sets the new status and updated_at, stamping the actual
// delivery date when provided, and returns the updated booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, actualDelivery *time.Time, updatedAt time.Time) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     string(status),
		"updated_at": updatedAt,
	}
	if actualDelivery != nil {
		set["actual_delivery_date"] = *actualDelivery
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m mongoBooking
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return toDomain(m), nil
}

// EnsureIndexes creates the indexes the repository relies on. The unique
// tracking_number index is what turns a generator collision into
// ErrDuplicateTrackingNumber at insert time.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tracking_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
