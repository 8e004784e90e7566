package filter

import (
	"sort"
	"strings"

	"github.com/shenikar/crime_pulse/internal/models"
)

// Categories возвращает отсортированный набор уникальных типов преступлений
// в нижнем регистре. Функция чистая: одинаковый вход дает одинаковый выход.
func Categories(crimes []models.CrimeRecord) []string {
	seen := make(map[string]struct{})
	for _, crime := range crimes {
		if crime.CrimeType == "" {
			continue
		}
		seen[strings.ToLower(crime.CrimeType)] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Selection - набор типов преступлений, выбранных пользователем.
// Флаг initialized отделяет состояние "выбор еще не создавался" от
// "пользователь явно снял все галочки": повторная инициализация после
// clear-all не должна происходить, даже если опрос принес новые типы.
type Selection struct {
	selected    map[string]struct{}
	initialized bool
}

// NewSelection создает пустой неинициализированный выбор
func NewSelection() *Selection {
	return &Selection{selected: make(map[string]struct{})}
}

// Bootstrap выполняет одноразовую инициализацию: при первом появлении
// непустого набора типов выбираются все. Возвращает true, если
// инициализация произошла. Последующие вызовы ничего не меняют.
func (s *Selection) Bootstrap(categories []string) bool {
	if s.initialized || len(categories) == 0 {
		return false
	}
	for _, category := range categories {
		s.selected[category] = struct{}{}
	}
	s.initialized = true
	return true
}

// Toggle добавляет или убирает один тип из выбора
func (s *Selection) Toggle(crimeType string) {
	key := strings.ToLower(crimeType)
	if _, ok := s.selected[key]; ok {
		delete(s.selected, key)
	} else {
		s.selected[key] = struct{}{}
	}
}

// SelectAll выбирает весь переданный набор типов
func (s *Selection) SelectAll(categories []string) {
	s.selected = make(map[string]struct{}, len(categories))
	for _, category := range categories {
		s.selected[category] = struct{}{}
	}
	s.initialized = true
}

// Clear снимает выбор со всех типов. Пустой выбор трактуется фильтром
// как "показывать все", см. Apply.
func (s *Selection) Clear() {
	s.selected = make(map[string]struct{})
	s.initialized = true
}

// Has сообщает, выбран ли тип
func (s *Selection) Has(crimeType string) bool {
	_, ok := s.selected[strings.ToLower(crimeType)]
	return ok
}

// Len возвращает количество выбранных типов
func (s *Selection) Len() int {
	return len(s.selected)
}

// Labels возвращает выбранные типы в лексикографическом порядке
func (s *Selection) Labels() []string {
	labels := make([]string, 0, len(s.selected))
	for label := range s.selected {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Apply возвращает записи, тип которых входит в выбор. Пустой выбор
// означает "показывать все записи", а не "не показывать ничего".
func Apply(crimes []models.CrimeRecord, selection *Selection) []models.CrimeRecord {
	if selection == nil || selection.Len() == 0 {
		return crimes
	}

	filtered := make([]models.CrimeRecord, 0, len(crimes))
	for _, crime := range crimes {
		if selection.Has(crime.CrimeType) {
			filtered = append(filtered, crime)
		}
	}
	return filtered
}
