package entities

import "time"

type Profile struct {
	ID                string
	Email             string
	Username          string
	FirstName         string
	LastName          string
	Phone             string
	PictureID         *string
	PicturePreviewURL *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ProfileModify struct {
	ID        *string
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Phone     *string
}
