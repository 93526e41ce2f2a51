package entities

import "time"

// Delivery - заявка курьера на конкретную посылку: точки его маршрута,
// свободные места и способ передвижения. Жизненным циклом посылки не владеет.
type Delivery struct {
	ID               string
	PackageID        string
	CourierID        string
	Source           Location
	Destination      Location
	SeatAvailability []bool
	TravelMethods    string
	TravelTime       string
	CreatedAt        time.Time
}

type DeliveryModify struct {
	ID               *string
	PackageID        *string
	CourierID        *string
	Source           *Location
	Destination      *Location
	SeatAvailability *[]bool
	TravelMethods    *string
	TravelTime       *string
}

// DeliveryClaim - результат успешного захвата посылки курьером.
type DeliveryClaim struct {
	DeliveryID    string
	PackageID     string
	CourierID     string
	PackageStatus PackageStatusType
	ClaimedAt     time.Time
}

// DeliveryRelease - результат снятия заявки: посылка возвращается в created.
type DeliveryRelease struct {
	PackageID     string
	CourierID     string
	PackageStatus PackageStatusType
}
