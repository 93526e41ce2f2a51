package packages

import "time"

const Collection = "packages"

type PackageDB struct {
	ID             string    `bson:"_id"`
	SenderID       string    `bson:"sender_id"`
	DeliverID      *string   `bson:"deliver_id"`
	Title          string    `bson:"title"`
	Description    string    `bson:"description"`
	Weight         float64   `bson:"weight"`
	Volume         string    `bson:"volume"`
	SrcLat         float64   `bson:"src_lat"`
	SrcLong        float64   `bson:"src_long"`
	SrcFullAddress string    `bson:"src_full_address"`
	DestLat        float64   `bson:"dest_lat"`
	DestLong       float64   `bson:"dest_long"`
	DestFullAddr   string    `bson:"dest_full_address"`
	Status         string    `bson:"status"`
	ImagesIDs      []string  `bson:"images_ids"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}
