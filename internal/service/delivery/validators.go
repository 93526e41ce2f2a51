package delivery

import (
	"strings"
	"unicode/utf8"

	"cargo-relay/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidLocation(location entities.Location) bool {
	if location.Lat < entities.MinLatitude || location.Lat > entities.MaxLatitude {
		return false
	}
	if location.Long < entities.MinLongitude || location.Long > entities.MaxLongitude {
		return false
	}
	// лимит адреса - в символах, не в байтах
	length := utf8.RuneCountInString(location.Address)
	return length >= 1 && length <= entities.MaxAddressLength
}
