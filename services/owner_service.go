package services

import (
	"math"
	"sort"

	"hostel-backend/config"
	"hostel-backend/models"
)

type OwnerService struct{}

// NearbyHostel is an owner row annotated with its distance from the query
// point, in meters.
type NearbyHostel struct {
	models.Owner
	DistanceM int `json:"distance_m"`
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371000.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0
	la1 := lat1 * math.Pi / 180.0
	la2 := lat2 * math.Pi / 180.0
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(la1)*math.Cos(la2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// Nearby returns hostels within radiusM meters of (lat, lng), nearest first.
func (s OwnerService) Nearby(lat, lng float64, radiusM int) ([]NearbyHostel, error) {
	if radiusM <= 0 {
		radiusM = 5000
	}

	var owners []models.Owner
	if err := config.DB.
		Where("latitude != 0 OR longitude != 0").
		Find(&owners).Error; err != nil {
		return nil, err
	}

	results := make([]NearbyHostel, 0, len(owners))
	for _, o := range owners {
		d := int(haversine(lat, lng, o.Latitude, o.Longitude))
		if d <= radiusM {
			results = append(results, NearbyHostel{Owner: o, DistanceM: d})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].DistanceM < results[j].DistanceM })
	return results, nil
}

func (s OwnerService) GetByID(id uint) (models.Owner, error) {
	var o models.Owner
	err := config.DB.First(&o, id).Error
	return o, err
}
