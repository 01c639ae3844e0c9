package models

import "time"

type Inquiry struct {
	ID        string    `json:"id"`
	CarID     *string   `json:"car_id"`
	CarName   string    `json:"car_name"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`

	// CarLabel is filled for the admin list: the referenced car's make,
	// "General Inquiry" when no car is referenced, or "Car not found"
	// when the reference dangles after a listing delete.
	CarLabel string `json:"car_label,omitempty"`
}
