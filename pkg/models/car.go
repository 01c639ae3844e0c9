package models

import "time"

const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

type Car struct {
	ID          string    `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Price       float64   `json:"price"`
	Mileage     float64   `json:"mileage"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"created_at"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}
