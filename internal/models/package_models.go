package models

import "time"

// Package is a membership plan offered by a gym. The lifecycle engine
// treats packages as an external catalog: reactivation records a
// package id without validating it here.
type Package struct {
	ID           string    `json:"id" db:"id"`
	GymID        string    `json:"gym_id" db:"gym_id"`
	Name         string    `json:"name" db:"name"`
	DurationDays int       `json:"duration_days" db:"duration_days"`
	Price        float64   `json:"price" db:"price"`
	Description  *string   `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Trainer is a staff record; the dashboard only lists them.
type Trainer struct {
	ID             string    `json:"id" db:"id"`
	GymID          string    `json:"gym_id" db:"gym_id"`
	FullName       string    `json:"full_name" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Specialization *string   `json:"specialization,omitempty" db:"specialization"`
	Rating         int       `json:"rating" db:"rating"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
