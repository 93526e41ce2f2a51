package delivery

import (
	"go.mongodb.org/mongo-driver/bson"

	"cargo-relay/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:        d.ID,
		PackageID: d.PackageID,
		CourierID: d.CourierID,
		Source: entities.Location{
			Lat:     d.SrcLat,
			Long:    d.SrcLong,
			Address: d.SrcFullAddress,
		},
		Destination: entities.Location{
			Lat:     d.DstLat,
			Long:    d.DstLong,
			Address: d.DstFullAddress,
		},
		SeatAvailability: d.SeatAvailability,
		TravelMethods:    d.TravelMethods,
		TravelTime:       d.TravelTime,
		CreatedAt:        d.CreatedAt,
	}
}

func SetFromDomainModify(deliveryModify *entities.DeliveryModify) bson.M {
	set := bson.M{}
	if deliveryModify == nil {
		return set
	}

	if deliveryModify.PackageID != nil {
		set["package_id"] = *deliveryModify.PackageID
	}
	if deliveryModify.CourierID != nil {
		set["courier_id"] = *deliveryModify.CourierID
	}
	if deliveryModify.Source != nil {
		set["src_lat"] = deliveryModify.Source.Lat
		set["src_long"] = deliveryModify.Source.Long
		set["src_full_address"] = deliveryModify.Source.Address
	}
	if deliveryModify.Destination != nil {
		set["dst_lat"] = deliveryModify.Destination.Lat
		set["dst_long"] = deliveryModify.Destination.Long
		set["dst_full_address"] = deliveryModify.Destination.Address
	}
	if deliveryModify.SeatAvailability != nil {
		set["seat_availability"] = *deliveryModify.SeatAvailability
	}
	if deliveryModify.TravelMethods != nil {
		set["travel_methods"] = *deliveryModify.TravelMethods
	}
	if deliveryModify.TravelTime != nil {
		set["travel_time"] = *deliveryModify.TravelTime
	}

	return set
}
