package geocode

import (
	"fmt"
	"net/url"

	"food-truck-api/models"
)

// Static map defaults for the homepage view
const (
	mapSize   = "750,650"
	mapCenter = "41.520251,-90.540287"
	mapMarker = "via-md-b92ce3"
	mapZoom   = "12"
)

// StaticMapURL builds the homepage map image URL with one marker per truck
// that has coordinates. Trucks that were never geocoded contribute no marker.
func StaticMapURL(baseURL, key string, trucks []models.Truck) string {
	locations := ""
	for _, truck := range trucks {
		if !truck.HasCoordinates() {
			continue
		}
		locations += fmt.Sprintf("%s,%s||", truck.Latitude, truck.Longitude)
	}

	return fmt.Sprintf("%s?key=%s&locations=%s&size=%s&center=%s&defaultMarker=%s&zoom=%s",
		baseURL, url.QueryEscape(key), url.QueryEscape(locations),
		mapSize, mapCenter, mapMarker, mapZoom)
}
