package v1

// ToggleCrimeTypeRequest DTO для переключения одного типа преступлений
// @Description DTO для переключения одного типа преступлений
type ToggleCrimeTypeRequest struct {
	CrimeType string `json:"crime_type" validate:"required,min=1"`
}

// LoginRequest DTO для входа по email и паролю
// @Description DTO для входа по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest DTO для регистрации нового пользователя
// @Description DTO для регистрации нового пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CrimeResponse DTO одной записи о преступлении
// @Description DTO одной записи о преступлении
type CrimeResponse struct {
	ID            string  `json:"id"`
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

// CrimesResponse DTO списка записей с количеством
// @Description DTO списка записей с количеством
type CrimesResponse struct {
	Count int             `json:"count"`
	Data  []CrimeResponse `json:"data"`
}

// CrimeTypesResponse DTO известных типов и текущего выбора
// @Description DTO известных типов и текущего выбора
type CrimeTypesResponse struct {
	Available []string `json:"available"`
	Selected  []string `json:"selected"`
}

// UserResponse DTO профиля пользователя
// @Description DTO профиля пользователя
type UserResponse struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// AuthResponse DTO успешного входа или регистрации
// @Description DTO успешного входа или регистрации
type AuthResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// SessionResponse DTO состояния сессии
// @Description DTO состояния сессии
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// MapConfigResponse DTO конфигурации карты для фронтенда
// @Description DTO конфигурации карты для фронтенда
type MapConfigResponse struct {
	MapboxToken string `json:"mapbox_token"`
}
