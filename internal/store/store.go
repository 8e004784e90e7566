package store

import (
	"sync"
	"time"

	"github.com/shenikar/crime_pulse/internal/models"
)

// Store - упорядоченная коллекция записей о преступлениях (новые впереди)
// и watermark последней успешной инкрементальной выборки.
// К хранилищу обращаются горутина опроса и HTTP-хэндлеры, поэтому
// все операции защищены мьютексом. Мутации всегда создают новый слайс,
// частичное слияние на месте не допускается.
type Store struct {
	mu        sync.RWMutex
	crimes    []models.CrimeRecord
	watermark string
}

// New создает пустое хранилище. Watermark инициализируется временем старта
// сессии и дальше двигается только серверными отметками времени.
func New() *Store {
	return &Store{
		crimes:    make([]models.CrimeRecord, 0),
		watermark: time.Now().UTC().Format(time.RFC3339),
	}
}

// Replace целиком заменяет содержимое хранилища (начальная загрузка)
func (s *Store) Replace(crimes []models.CrimeRecord) {
	replaced := make([]models.CrimeRecord, len(crimes))
	copy(replaced, crimes)

	s.mu.Lock()
	s.crimes = replaced
	s.mu.Unlock()
}

// Prepend добавляет новые записи в начало коллекции, сохраняя порядок
// "самые свежие впереди". Дедупликации по идентификатору нет: считаем,
// что выборка "новое с момента since" не возвращает уже известные записи.
func (s *Store) Prepend(crimes []models.CrimeRecord) {
	if len(crimes) == 0 {
		return
	}

	s.mu.Lock()
	merged := make([]models.CrimeRecord, 0, len(crimes)+len(s.crimes))
	merged = append(merged, crimes...)
	merged = append(merged, s.crimes...)
	s.crimes = merged
	s.mu.Unlock()
}

// All возвращает копию текущей коллекции
func (s *Store) All() []models.CrimeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crimes := make([]models.CrimeRecord, len(s.crimes))
	copy(crimes, s.crimes)
	return crimes
}

// Len возвращает количество записей в хранилище
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.crimes)
}

// Watermark возвращает текущую границу инкрементальной выборки
func (s *Store) Watermark() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watermark
}

// SetWatermark продвигает границу выборки. Значение всегда берется из
// ответа сервера, а не из локальных часов, чтобы рассинхронизация часов
// не приводила к пропуску или повторной доставке записей.
func (s *Store) SetWatermark(ts string) {
	if ts == "" {
		return
	}
	s.mu.Lock()
	s.watermark = ts
	s.mu.Unlock()
}
