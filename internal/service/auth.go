package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/crime_pulse/internal/models"
)

// AuthError - ошибка аутентификации от удаленного API.
// Message - единственная категория ошибок, показываемая пользователю.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Login выполняет вход через удаленный API. При успехе сессия
// сохраняется в хранилище, а токен прикрепляется ко всем последующим
// запросам клиента.
func (s *dashboardService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting login")

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		log.WithError(err).Error("Login request failed")
		return nil, fmt.Errorf("service: login request failed: %w", err)
	}

	return s.establishSession(ctx, result, log)
}

// Register регистрирует пользователя через удаленный API и сразу
// открывает сессию
func (s *dashboardService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Attempting registration")

	result, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		log.WithError(err).Error("Registration request failed")
		return nil, fmt.Errorf("service: registration request failed: %w", err)
	}

	return s.establishSession(ctx, result, log)
}

func (s *dashboardService) establishSession(ctx context.Context, result *models.AuthResult, log *logrus.Entry) (*models.Session, error) {
	if !result.Success {
		message := result.Error
		if message == "" {
			message = "invalid credentials"
		}
		log.WithField("reason", message).Warn("Authentication rejected")
		return nil, &AuthError{Message: message}
	}

	sess := &models.Session{Token: result.Token, User: result.User}
	s.api.SetToken(sess.Token)

	// Ошибка записи сессии не отменяет вход: сессия живет до конца
	// процесса, просто не переживет перезапуск
	if err := s.sessions.Save(ctx, sess); err != nil {
		log.WithError(err).Warn("Failed to persist session")
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	log.Info("Session established")
	return sess, nil
}

// Logout очищает сохраненную сессию и убирает токен из клиента
func (s *dashboardService) Logout(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Logout",
	})
	log.Info("Logging out")

	if err := s.sessions.Clear(ctx); err != nil {
		log.WithError(err).Error("Failed to clear persisted session")
		return fmt.Errorf("service: could not clear session: %w", err)
	}

	s.api.ClearToken()

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// RestoreSession восстанавливает сессию из хранилища при старте
// приложения. Сетевых запросов не выполняется. Отсутствие сессии -
// не ошибка, возвращается nil.
func (s *dashboardService) RestoreSession(ctx context.Context) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "RestoreSession",
	})

	sess, err := s.sessions.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load persisted session")
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}
	if sess == nil {
		log.Info("No persisted session found")
		return nil, nil
	}

	s.api.SetToken(sess.Token)

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	log.WithField("email", sess.User.Email).Info("Session restored")
	return sess, nil
}

// CurrentSession возвращает активную сессию или nil
func (s *dashboardService) CurrentSession() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
