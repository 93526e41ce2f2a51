package packages

import (
	"strings"
	"unicode/utf8"

	"cargo-relay/internal/entities"
)

func isValidPackageID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// лимиты длин - в символах, не в байтах: кириллический заголовок
// занимает два байта на букву
func isValidTitle(title string) bool {
	length := utf8.RuneCountInString(title)
	return length >= 1 && length <= entities.MaxTitleLength
}

func isValidDescription(description string) bool {
	length := utf8.RuneCountInString(description)
	return length >= 1 && length <= entities.MaxDescriptionLength
}

func isValidWeight(weight float64) bool {
	return weight > 0
}

func isValidVolume(volume entities.VolumeType) bool {
	switch volume {
	case entities.VolumeXS, entities.VolumeS, entities.VolumeM, entities.VolumeL,
		entities.VolumeXL, entities.VolumeXXL, entities.VolumeXXXL:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.PackageStatusType) bool {
	switch status {
	case entities.PackagePending, entities.PackageInTransit,
		entities.PackageDelivered, entities.PackageCancelled:
		return true
	default:
		return false
	}
}

func isValidLocation(location entities.Location) bool {
	if location.Lat < entities.MinLatitude || location.Lat > entities.MaxLatitude {
		return false
	}
	if location.Long < entities.MinLongitude || location.Long > entities.MaxLongitude {
		return false
	}
	length := utf8.RuneCountInString(location.Address)
	return length >= 1 && length <= entities.MaxAddressLength
}

func isValidImageCount(count int) bool {
	return count >= entities.MinPackageImages && count <= entities.MaxPackageImages
}
