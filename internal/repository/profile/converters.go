package profile

import (
	"go.mongodb.org/mongo-driver/bson"

	"cargo-relay/internal/entities"
)

func ToDomain(p *ProfileDB) *entities.Profile {
	if p == nil {
		return nil
	}

	return &entities.Profile{
		ID:                p.ID,
		Email:             p.Email,
		Username:          p.Username,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Phone:             p.Phone,
		PictureID:         p.PictureID,
		PicturePreviewURL: p.PicturePreviewURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func SetFromDomainModify(profileModify *entities.ProfileModify) bson.M {
	set := bson.M{}
	if profileModify == nil {
		return set
	}

	if profileModify.Email != nil {
		set["email"] = *profileModify.Email
	}
	if profileModify.Username != nil {
		set["username"] = *profileModify.Username
	}
	if profileModify.FirstName != nil {
		set["first_name"] = *profileModify.FirstName
	}
	if profileModify.LastName != nil {
		set["last_name"] = *profileModify.LastName
	}
	if profileModify.Phone != nil {
		set["phone"] = *profileModify.Phone
	}

	return set
}
