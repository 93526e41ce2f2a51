package delivery

import "time"

const Collection = "deliveries"

type DeliveryDB struct {
	ID               string    `bson:"_id"`
	PackageID        string    `bson:"package_id"`
	CourierID        string    `bson:"courier_id"`
	SrcLat           float64   `bson:"src_lat"`
	SrcLong          float64   `bson:"src_long"`
	SrcFullAddress   string    `bson:"src_full_address"`
	DstLat           float64   `bson:"dst_lat"`
	DstLong          float64   `bson:"dst_long"`
	DstFullAddress   string    `bson:"dst_full_address"`
	SeatAvailability []bool    `bson:"seat_availability"`
	TravelMethods    string    `bson:"travel_methods"`
	TravelTime       string    `bson:"travel_time"`
	CreatedAt        time.Time `bson:"created_at"`
}
