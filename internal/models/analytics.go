package models

// Аналитика считается целиком на стороне удаленного API и потребляется
// как готовые данные. Структуры повторяют формат ответов сервиса.

// Hotspot — кластер преступлений с оценкой риска.
type Hotspot struct {
	Location       string  `json:"location"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CrimeCount     int     `json:"crime_count"`
	CriticalCrimes int     `json:"critical_crimes"`
	HighCrimes     int     `json:"high_crimes"`
	RiskScore      float64 `json:"risk_score"`
	RadiusKm       float64 `json:"radius_km"`
}

// TimePatterns — пиковые час и день недели по всей коллекции.
type TimePatterns struct {
	PeakHour      int    `json:"peak_hour"`
	PeakHourCount int    `json:"peak_hour_count"`
	PeakDay       string `json:"peak_day"`
	PeakDayCount  int    `json:"peak_day_count"`
}

// CrimeTrends — динамика за период (increasing/decreasing).
type CrimeTrends struct {
	TotalCrimes   int     `json:"total_crimes"`
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"change_percent"`
}

// PatrolSuggestion — рекомендация по приоритету патрулирования.
type PatrolSuggestion struct {
	Priority   int     `json:"priority"`
	Location   string  `json:"location"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RiskScore  float64 `json:"risk_score"`
	CrimeCount int     `json:"crime_count"`
	Reason     string  `json:"reason"`
}

// Analytics — последний успешно полученный срез серверной аналитики.
type Analytics struct {
	Hotspots     []Hotspot          `json:"hotspots"`
	Patterns     *TimePatterns      `json:"patterns"`
	Trends       *CrimeTrends       `json:"trends"`
	PatrolRoutes []PatrolSuggestion `json:"patrol_routes"`
}
