package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/crime_pulse/internal/models"
)

const (
	tokenKey = "session:token"
	userKey  = "session:user"
)

// Repository - контракт долговременного хранилища сессии.
// Сессия восстанавливается при старте приложения и очищается при logout.
type Repository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}

// RedisRepository - реализация Repository поверх Redis
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository создает хранилище сессии поверх клиента Redis
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Load возвращает сохраненную сессию или nil, если сессии нет
func (r *RedisRepository) Load(ctx context.Context) (*models.Session, error) {
	token, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: failed to load token: %w", err)
	}

	raw, err := r.client.Get(ctx, userKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Токен без профиля считаем отсутствием сессии
			return nil, nil
		}
		return nil, fmt.Errorf("session: failed to load user: %w", err)
	}

	user := &models.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal user: %w", err)
	}

	return &models.Session{Token: token, User: user}, nil
}

// Save сохраняет токен и профиль пользователя без срока жизни:
// сессия живет до явного logout
func (r *RedisRepository) Save(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("session: failed to marshal user: %w", err)
	}

	if err := r.client.Set(ctx, tokenKey, session.Token, 0).Err(); err != nil {
		return fmt.Errorf("session: failed to save token: %w", err)
	}
	if err := r.client.Set(ctx, userKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("session: failed to save user: %w", err)
	}
	return nil
}

// Clear удаляет токен и профиль из хранилища
func (r *RedisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, tokenKey, userKey).Err(); err != nil {
		return fmt.Errorf("session: failed to clear session: %w", err)
	}
	return nil
}
