package dto

import (
	"cargo-relay/internal/entities"
)

func FromPackage(packageEntity *entities.Package) Package {
	return Package{
		ID:          packageEntity.ID,
		SenderID:    packageEntity.SenderID,
		DeliverID:   packageEntity.DeliverID,
		Title:       packageEntity.Title,
		Description: packageEntity.Description,
		Weight:      packageEntity.Weight,
		Volume:      packageEntity.Volume.String(),
		Source: Location{
			Lat:     packageEntity.Source.Lat,
			Long:    packageEntity.Source.Long,
			Address: packageEntity.Source.Address,
		},
		Destination: Location{
			Lat:     packageEntity.Destination.Lat,
			Long:    packageEntity.Destination.Long,
			Address: packageEntity.Destination.Address,
		},
		Status:       packageEntity.Status.String(),
		ImagesIDs:    packageEntity.ImagesIDs,
		PreviewsURLs: packageEntity.PreviewsURLs,
		CreatedAt:    packageEntity.CreatedAt,
		UpdatedAt:    packageEntity.UpdatedAt,
	}
}

func FromPackageList(packageEntities []entities.Package) []Package {
	result := make([]Package, 0, len(packageEntities))
	for i := range packageEntities {
		result = append(result, FromPackage(&packageEntities[i]))
	}
	return result
}

func FromProfile(profileEntity *entities.Profile) Profile {
	return Profile{
		ID:                profileEntity.ID,
		Email:             profileEntity.Email,
		Username:          profileEntity.Username,
		FirstName:         profileEntity.FirstName,
		LastName:          profileEntity.LastName,
		Phone:             profileEntity.Phone,
		PicturePreviewURL: profileEntity.PicturePreviewURL,
	}
}

func (l Location) ToEntity() entities.Location {
	return entities.Location{
		Lat:     l.Lat,
		Long:    l.Long,
		Address: l.Address,
	}
}
