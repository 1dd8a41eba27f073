package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/transpoease/booking-system/internal/core/domain"
)

const (
	collectionVehicles  = "vehicles"
	collectionRoutes    = "routes"
	collectionSchedules = "schedules"
)

// VehicleRepository persists fleet vehicles.
type VehicleRepository struct {
	col *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{col: db.Collection(collectionVehicles)}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"vehicle_number": v.VehicleNumber,
		"type":           v.Type,
		"capacity":       v.Capacity,
		"status":         string(v.Status),
		"created_at":     v.CreatedAt,
	}
	if v.LastMaintenance != nil {
		doc["last_maintenance"] = *v.LastMaintenance
	}
	if v.NextMaintenance != nil {
		doc["next_maintenance"] = *v.NextMaintenance
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrVehicleExists
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		v.ID = oid.Hex()
	}
	return nil
}

type mongoVehicle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	VehicleNumber   string             `bson:"vehicle_number"`
	Type            string             `bson:"type"`
	Capacity        int                `bson:"capacity"`
	Status          string             `bson:"status"`
	LastMaintenance *time.Time         `bson:"last_maintenance,omitempty"`
	NextMaintenance *time.Time         `bson:"next_maintenance,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Vehicle
	for cur.Next(ctx) {
		var m mongoVehicle
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode vehicle: %w", err)
		}
		out = append(out, &domain.Vehicle{
			ID:              m.ID.Hex(),
			VehicleNumber:   m.VehicleNumber,
			Type:            m.Type,
			Capacity:        m.Capacity,
			Status:          domain.VehicleStatus(m.Status),
			LastMaintenance: m.LastMaintenance,
			NextMaintenance: m.NextMaintenance,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out, cur.Err()
}

// EnsureIndexes creates the unique vehicle_number index.
func (r *VehicleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "vehicle_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// RouteRepository persists delivery routes.
type RouteRepository struct {
	col *mongo.Collection
}

func NewRouteRepository(db *mongo.Database) *RouteRepository {
	return &RouteRepository{col: db.Collection(collectionRoutes)}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"name":               route.Name,
		"start_location":     route.StartLocation,
		"end_location":       route.EndLocation,
		"distance_km":        route.DistanceKm,
		"estimated_time_min": route.EstimatedTimeMin,
		"stops":              route.Stops,
		"active":             route.Active,
		"created_at":         route.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRouteExists
		}
		return fmt.Errorf("insert route: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		route.ID = oid.Hex()
	}
	return nil
}

type mongoRoute struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	StartLocation    string             `bson:"start_location"`
	EndLocation      string             `bson:"end_location"`
	DistanceKm       float64            `bson:"distance_km"`
	EstimatedTimeMin int                `bson:"estimated_time_min"`
	Stops            []domain.RouteStop `bson:"stops,omitempty"`
	Active           bool               `bson:"active"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func (r *RouteRepository) List(ctx context.Context) ([]*domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Route
	for cur.Next(ctx) {
		var m mongoRoute
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode route: %w", err)
		}
		out = append(out, &domain.Route{
			ID:               m.ID.Hex(),
			Name:             m.Name,
			StartLocation:    m.StartLocation,
			EndLocation:      m.EndLocation,
			DistanceKm:       m.DistanceKm,
			EstimatedTimeMin: m.EstimatedTimeMin,
			Stops:            m.Stops,
			Active:           m.Active,
			CreatedAt:        m.CreatedAt,
		})
	}
	return out, cur.Err()
}

// EnsureIndexes creates the unique route name index.
func (r *RouteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// ScheduleRepository persists scheduled runs.
type ScheduleRepository struct {
	col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{col: db.Collection(collectionSchedules)}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"route_id":       s.RouteID,
		"vehicle_id":     s.VehicleID,
		"driver_name":    s.DriverName,
		"departure_time": s.DepartureTime,
		"arrival_time":   s.ArrivalTime,
		"status":         string(s.Status),
		"notes":          s.Notes,
		"created_at":     s.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

type mongoSchedule struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RouteID       string             `bson:"route_id"`
	VehicleID     string             `bson:"vehicle_id"`
	DriverName    string             `bson:"driver_name"`
	DepartureTime time.Time          `bson:"departure_time"`
	ArrivalTime   time.Time          `bson:"arrival_time"`
	Status        string             `bson:"status"`
	Notes         string             `bson:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *ScheduleRepository) List(ctx context.Context) ([]*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "departure_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Schedule
	for cur.Next(ctx) {
		var m mongoSchedule
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode schedule: %w", err)
		}
		out = append(out, &domain.Schedule{
			ID:            m.ID.Hex(),
			RouteID:       m.RouteID,
			VehicleID:     m.VehicleID,
			DriverName:    m.DriverName,
			DepartureTime: m.DepartureTime,
			ArrivalTime:   m.ArrivalTime,
			Status:        domain.ScheduleStatus(m.Status),
			Notes:         m.Notes,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, cur.Err()
}
