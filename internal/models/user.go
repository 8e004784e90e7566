package models

// User — профиль пользователя из сервиса аутентификации.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Session — авторизованная сессия: bearer-токен и профиль пользователя.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthResult — ответ удаленного API на login/register.
// При неуспехе Error содержит строку, показываемую пользователю.
type AuthResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}
