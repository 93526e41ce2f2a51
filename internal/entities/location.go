package entities

// Location - точка на карте с человекочитаемым адресом.
// Валидация диапазонов живет в сервисных validators.
type Location struct {
	Lat     float64
	Long    float64
	Address string
}

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	MaxAddressLength = 150
)
