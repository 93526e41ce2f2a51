package entities

import "time"

type Package struct {
	ID           string
	SenderID     string
	DeliverID    *string
	Title        string
	Description  string
	Weight       float64
	Volume       VolumeType
	Source       Location
	Destination  Location
	Status       PackageStatusType
	ImagesIDs    []string
	PreviewsURLs []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PackageStatusType string

// Wire-литералы исторические: "assigned" покрывает и claim, и транзит.
const (
	PackagePending   PackageStatusType = "created"
	PackageInTransit PackageStatusType = "assigned"
	PackageDelivered PackageStatusType = "delivered"
	PackageCancelled PackageStatusType = "cancelled"
)

const DefaultPackageStatus = PackagePending

func (s PackageStatusType) String() string {
	return string(s)
}

// CanTransition описывает разрешенные переходы статуса посылки:
// created -> assigned|cancelled, assigned -> delivered|created|cancelled.
// delivered и cancelled терминальные.
func (s PackageStatusType) CanTransition(to PackageStatusType) bool {
	switch s {
	case PackagePending:
		return to == PackageInTransit || to == PackageCancelled
	case PackageInTransit:
		return to == PackageDelivered || to == PackagePending || to == PackageCancelled
	default:
		return false
	}
}

type VolumeType string

const (
	VolumeXS   VolumeType = "XS"
	VolumeS    VolumeType = "S"
	VolumeM    VolumeType = "M"
	VolumeL    VolumeType = "L"
	VolumeXL   VolumeType = "XL"
	VolumeXXL  VolumeType = "XXL"
	VolumeXXXL VolumeType = "XXXL"
)

func (v VolumeType) String() string {
	return string(v)
}

const (
	MinPackageImages = 1
	MaxPackageImages = 5

	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

type PackageModify struct {
	ID          *string
	SenderID    *string
	DeliverID   *string
	Title       *string
	Description *string
	Weight      *float64
	Volume      *VolumeType
	Source      *Location
	Destination *Location
	Status      *PackageStatusType
	ImagesIDs   *[]string
}

// PackageFilter - конъюнкция equality-фильтров для выборки.
type PackageFilter struct {
	Status    *PackageStatusType
	SenderID  *string
	DeliverID *string
	Limit     int64
}
