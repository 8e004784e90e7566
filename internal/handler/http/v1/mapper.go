package v1

import "github.com/shenikar/crime_pulse/internal/models"

// ModelToCrimeResponse преобразует доменную модель в DTO для ответа
func ModelToCrimeResponse(model models.CrimeRecord) CrimeResponse {
	return CrimeResponse{
		ID:            model.FIRNumber,
		CrimeType:     model.CrimeType,
		SeverityLevel: model.SeverityLevel,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Location:      model.Location,
		IncidentDate:  model.IncidentDate,
		Title:         model.Title,
		Description:   model.Description,
		ImageURL:      model.ImageURL,
		Source:        model.Source,
		NewsURL:       model.NewsURL,
	}
}

// ModelsToCrimeResponses преобразует слайс моделей в слайс DTO
func ModelsToCrimeResponses(crimes []models.CrimeRecord) []CrimeResponse {
	responses := make([]CrimeResponse, len(crimes))
	for i, crime := range crimes {
		responses[i] = ModelToCrimeResponse(crime)
	}
	return responses
}

// ModelToUserResponse преобразует профиль пользователя в DTO
func ModelToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
