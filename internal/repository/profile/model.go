package profile

import "time"

const Collection = "profiles"

type ProfileDB struct {
	ID                string    `bson:"_id"`
	Email             string    `bson:"email"`
	Username          string    `bson:"username"`
	FirstName         string    `bson:"first_name"`
	LastName          string    `bson:"last_name"`
	Phone             string    `bson:"phone"`
	PictureID         *string   `bson:"picture_id"`
	PicturePreviewURL *string   `bson:"picture_preview_url"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}
