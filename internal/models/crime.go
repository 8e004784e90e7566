package models

// CrimeRecord представляет одну запись о преступлении, полученную из удаленного API.
// Запись передается на карту без изменений; идентификатором служит номер FIR.
type CrimeRecord struct {
	FIRNumber     string  `json:"fir_number"`
	CrimeType     string  `json:"crime_type"`
	SeverityLevel string  `json:"severity_level"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Location      string  `json:"location"`
	IncidentDate  string  `json:"incident_date"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Source        string  `json:"source,omitempty"`
	NewsURL       string  `json:"news_url,omitempty"`
}

// Уровни серьезности, которые отдает удаленный API.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// StatsBucket — одна корзина агрегации вида {_id, count}.
type StatsBucket struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

// CrimeStats — агрегированная статистика по всей коллекции преступлений.
type CrimeStats struct {
	Success        bool          `json:"success"`
	CrimeTypes     []StatsBucket `json:"crime_types"`
	SeverityLevels []StatsBucket `json:"severity_levels"`
	TotalRecords   int           `json:"total_records"`
}

// CrimeUpdate — результат инкрементального запроса "новое с момента since".
// Timestamp задается сервером и используется как следующая граница выборки.
type CrimeUpdate struct {
	Success   bool          `json:"success"`
	Data      []CrimeRecord `json:"data"`
	Timestamp string        `json:"timestamp"`
}
