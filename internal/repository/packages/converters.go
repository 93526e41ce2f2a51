package packages

import (
	"go.mongodb.org/mongo-driver/bson"

	"cargo-relay/internal/entities"
)

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:          p.ID,
		SenderID:    p.SenderID,
		DeliverID:   p.DeliverID,
		Title:       p.Title,
		Description: p.Description,
		Weight:      p.Weight,
		Volume:      entities.VolumeType(p.Volume),
		Source: entities.Location{
			Lat:     p.SrcLat,
			Long:    p.SrcLong,
			Address: p.SrcFullAddress,
		},
		Destination: entities.Location{
			Lat:     p.DestLat,
			Long:    p.DestLong,
			Address: p.DestFullAddr,
		},
		Status:    entities.PackageStatusType(p.Status),
		ImagesIDs: p.ImagesIDs,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToDomainList(packagesDB []PackageDB) []entities.Package {
	if len(packagesDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(packagesDB))
	for i, packageDB := range packagesDB {
		result[i] = *ToDomain(&packageDB)
	}
	return result
}

// SetFromDomainModify собирает частичный $set из опциональных полей,
// аналог цепочки builder.Set в SQL-репозиториях.
func SetFromDomainModify(packageModify *entities.PackageModify) bson.M {
	set := bson.M{}
	if packageModify == nil {
		return set
	}

	if packageModify.SenderID != nil {
		set["sender_id"] = *packageModify.SenderID
	}
	if packageModify.DeliverID != nil {
		set["deliver_id"] = *packageModify.DeliverID
	}
	if packageModify.Title != nil {
		set["title"] = *packageModify.Title
	}
	if packageModify.Description != nil {
		set["description"] = *packageModify.Description
	}
	if packageModify.Weight != nil {
		set["weight"] = *packageModify.Weight
	}
	if packageModify.Volume != nil {
		set["volume"] = packageModify.Volume.String()
	}
	if packageModify.Source != nil {
		set["src_lat"] = packageModify.Source.Lat
		set["src_long"] = packageModify.Source.Long
		set["src_full_address"] = packageModify.Source.Address
	}
	if packageModify.Destination != nil {
		set["dest_lat"] = packageModify.Destination.Lat
		set["dest_long"] = packageModify.Destination.Long
		set["dest_full_address"] = packageModify.Destination.Address
	}
	if packageModify.Status != nil {
		set["status"] = packageModify.Status.String()
	}
	if packageModify.ImagesIDs != nil {
		set["images_ids"] = *packageModify.ImagesIDs
	}

	return set
}
