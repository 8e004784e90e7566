package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shenikar/crime_pulse/internal/models"
)

// SeverityWeight возвращает целочисленный вес записи для интенсивности
// отображения на тепловой карте. Функция тотальная: любой неизвестный
// или пустой уровень дает минимальный вес.
func SeverityWeight(severity string) int {
	switch severity {
	case models.SeverityCritical:
		return 4
	case models.SeverityHigh:
		return 3
	case models.SeverityMedium:
		return 2
	default:
		return 1
	}
}

// FeatureCollection проецирует отфильтрованные записи в GeoJSON-коллекцию,
// пригодную для источника данных картографического движка. Функция чистая
// и вызывается заново при каждом изменении отфильтрованного набора.
func FeatureCollection(crimes []models.CrimeRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, crime := range crimes {
		feature := geojson.NewFeature(orb.Point{crime.Longitude, crime.Latitude})
		feature.Properties = geojson.Properties{
			"id":          crime.FIRNumber,
			"crime_type":  crime.CrimeType,
			"severity":    crime.SeverityLevel,
			"date":        crime.IncidentDate,
			"title":       crime.Title,
			"description": crime.Description,
			"location":    crime.Location,
			"image_url":   crime.ImageURL,
			"source":      crime.Source,
			"news_url":    crime.NewsURL,
			"weight":      SeverityWeight(crime.SeverityLevel),
		}
		fc.Append(feature)
	}

	return fc
}
