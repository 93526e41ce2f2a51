// Package dto описывает wire-формат REST API.
package dto

import "time"

type Location struct {
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
	Address string  `json:"address"`
}

type Package struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	DeliverID    *string   `json:"deliver_id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Weight       float64   `json:"weight"`
	Volume       string    `json:"volume"`
	Source       Location  `json:"source"`
	Destination  Location  `json:"destination"`
	Status       string    `json:"status"`
	ImagesIDs    []string  `json:"images_ids"`
	PreviewsURLs []string  `json:"previews_urls"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PackageCreate struct {
	SenderID    string   `json:"sender_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Weight      float64  `json:"weight"`
	Volume      string   `json:"volume"`
	Source      Location `json:"source"`
	Destination Location `json:"destination"`
}

type PackageUpdate struct {
	DeliverID   *string   `json:"deliver_id,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	Volume      *string   `json:"volume,omitempty"`
	Source      *Location `json:"source,omitempty"`
	Destination *Location `json:"destination,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

type PackageList struct {
	Packages []Package `json:"packages"`
}

type DeliveryClaimRequest struct {
	PackageID        string   `json:"package_id"`
	CourierID        string   `json:"courier_id"`
	Source           Location `json:"source"`
	Destination      Location `json:"destination"`
	SeatAvailability []bool   `json:"seat_availability,omitempty"`
	TravelMethods    string   `json:"travel_methods,omitempty"`
	TravelTime       string   `json:"travel_time,omitempty"`
}

type DeliveryClaimResponse struct {
	DeliveryID    string    `json:"delivery_id"`
	PackageID     string    `json:"package_id"`
	CourierID     string    `json:"courier_id"`
	PackageStatus string    `json:"package_status"`
	ClaimedAt     time.Time `json:"claimed_at"`
}

type DeliveryReleaseRequest struct {
	PackageID string `json:"package_id"`
}

type DeliveryReleaseResponse struct {
	PackageID     string `json:"package_id"`
	CourierID     string `json:"courier_id"`
	PackageStatus string `json:"package_status"`
}

type ProfileCreate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type ProfileCreateResponse struct {
	ID string `json:"id"`
}

type Profile struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Phone             string  `json:"phone"`
	PicturePreviewURL *string `json:"picture_preview_url,omitempty"`
}

type ProfileUpdate struct {
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
