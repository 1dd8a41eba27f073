package domain

import (
	"errors"
	"time"
)

var ErrVehicleExists = errors.New("vehicle already exists")
var ErrRouteExists = errors.New("route already exists")

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "available"
	VehicleInUse        VehicleStatus = "in_use"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out_of_service"
)

// Vehicle is a delivery vehicle managed from the admin dashboard.
type Vehicle struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	VehicleNumber   string        `json:"vehicle_number" bson:"vehicle_number"`
	Type            string        `json:"type" bson:"type"`
	Capacity        int           `json:"capacity" bson:"capacity"`
	Status          VehicleStatus `json:"status" bson:"status"`
	LastMaintenance *time.Time    `json:"last_maintenance,omitempty" bson:"last_maintenance,omitempty"`
	NextMaintenance *time.Time    `json:"next_maintenance,omitempty" bson:"next_maintenance,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}

// RouteStop is an intermediate stop on a delivery route.
type RouteStop struct {
	Name          string `json:"name" bson:"name"`
	ArrivalTime   string `json:"arrival_time" bson:"arrival_time"`
	DepartureTime string `json:"departure_time" bson:"departure_time"`
}

// Route is a named delivery corridor between two locations.
type Route struct {
	ID               string      `json:"id" bson:"_id,omitempty"`
	Name             string      `json:"name" bson:"name"`
	StartLocation    string      `json:"start_location" bson:"start_location"`
	EndLocation      string      `json:"end_location" bson:"end_location"`
	DistanceKm       float64     `json:"distance_km" bson:"distance_km"`
	EstimatedTimeMin int         `json:"estimated_time_min" bson:"estimated_time_min"`
	Stops            []RouteStop `json:"stops,omitempty" bson:"stops,omitempty"`
	Active           bool        `json:"active" bson:"active"`
	CreatedAt        time.Time   `json:"created_at" bson:"created_at"`
}

// ScheduleStatus is the execution state of a scheduled run.
type ScheduleStatus string

const (
	ScheduleScheduled  ScheduleStatus = "scheduled"
	ScheduleInProgress ScheduleStatus = "in_progress"
	ScheduleCompleted  ScheduleStatus = "completed"
	ScheduleCancelled  ScheduleStatus = "cancelled"
)

// Schedule assigns a vehicle and driver to a route for a departure window.
type Schedule struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	RouteID       string         `json:"route_id" bson:"route_id"`
	VehicleID     string         `json:"vehicle_id" bson:"vehicle_id"`
	DriverName    string         `json:"driver_name" bson:"driver_name"`
	DepartureTime time.Time      `json:"departure_time" bson:"departure_time"`
	ArrivalTime   time.Time      `json:"arrival_time" bson:"arrival_time"`
	Status        ScheduleStatus `json:"status" bson:"status"`
	Notes         string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
}
