package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/crime_pulse/internal/models"
)

func testCrimes() []models.CrimeRecord {
	return []models.CrimeRecord{
		{FIRNumber: "A", CrimeType: "Theft", SeverityLevel: "High"},
		{FIRNumber: "B", CrimeType: "Assault", SeverityLevel: "Critical"},
	}
}

func TestCategories_SortedAndIdempotent(t *testing.T) {
	crimes := []models.CrimeRecord{
		{FIRNumber: "1", CrimeType: "Theft"},
		{FIRNumber: "2", CrimeType: "ASSAULT"},
		{FIRNumber: "3", CrimeType: "theft"},
		{FIRNumber: "4", CrimeType: "Robbery"},
		{FIRNumber: "5", CrimeType: ""},
	}

	first := Categories(crimes)
	second := Categories(crimes)

	assert.Equal(t, []string{"assault", "robbery", "theft"}, first)
	// Повторный вызов на тех же данных дает тот же результат
	assert.Equal(t, first, second)
}

func TestCategories_Empty(t *testing.T) {
	assert.Empty(t, Categories(nil))
	assert.Empty(t, Categories([]models.CrimeRecord{}))
}

func TestBootstrap_SelectsEverythingOnce(t *testing.T) {
	selection := NewSelection()

	initialized := selection.Bootstrap([]string{"assault", "theft"})
	require.True(t, initialized)
	assert.Equal(t, []string{"assault", "theft"}, selection.Labels())

	// Повторная инициализация не происходит
	initialized = selection.Bootstrap([]string{"assault", "theft", "robbery"})
	assert.False(t, initialized)
	assert.Equal(t, []string{"assault", "theft"}, selection.Labels())
}

func TestBootstrap_EmptyCategoriesDoNothing(t *testing.T) {
	selection := NewSelection()

	assert.False(t, selection.Bootstrap(nil))
	assert.Equal(t, 0, selection.Len())

	// Выбор все еще не инициализирован, первый непустой набор сработает
	assert.True(t, selection.Bootstrap([]string{"theft"}))
}

func TestBootstrap_DoesNotFireAfterClear(t *testing.T) {
	selection := NewSelection()
	require.True(t, selection.Bootstrap([]string{"theft"}))

	selection.Clear()

	// clear-all - явное действие пользователя, новые данные не должны
	// заново выбирать все типы
	assert.False(t, selection.Bootstrap([]string{"theft", "robbery"}))
	assert.Equal(t, 0, selection.Len())
}

func TestToggle_IsSelfInverse(t *testing.T) {
	selection := NewSelection()
	selection.Bootstrap([]string{"assault", "theft"})

	selection.Toggle("theft")
	assert.False(t, selection.Has("theft"))
	assert.True(t, selection.Has("assault"))

	selection.Toggle("theft")
	assert.True(t, selection.Has("theft"))
	assert.Equal(t, []string{"assault", "theft"}, selection.Labels())
}

func TestToggle_CaseInsensitive(t *testing.T) {
	selection := NewSelection()

	selection.Toggle("Theft")
	assert.True(t, selection.Has("theft"))
	assert.True(t, selection.Has("THEFT"))

	selection.Toggle("THEFT")
	assert.False(t, selection.Has("theft"))
}

func TestApply_EmptySelectionShowsEverything(t *testing.T) {
	crimes := testCrimes()

	// Пустой выбор означает "показывать все", а не "ничего"
	assert.Equal(t, crimes, Apply(crimes, NewSelection()))
	assert.Equal(t, crimes, Apply(crimes, nil))
}

func TestApply_FiltersBySelection(t *testing.T) {
	crimes := testCrimes()
	selection := NewSelection()
	selection.Bootstrap([]string{"assault", "theft"})

	// Снимаем theft: остается только запись B
	selection.Toggle("theft")
	filtered := Apply(crimes, selection)
	require.Len(t, filtered, 1)
	assert.Equal(t, "B", filtered[0].FIRNumber)

	// Возвращаем theft: видны обе записи
	selection.Toggle("theft")
	assert.Equal(t, crimes, Apply(crimes, selection))
}

func TestApply_NewCategoryExcludedUntilSelected(t *testing.T) {
	crimes := testCrimes()
	selection := NewSelection()
	selection.Bootstrap(Categories(crimes))

	// Прилетела запись нового типа: тип известен, но не выбран
	withNew := append([]models.CrimeRecord{
		{FIRNumber: "C", CrimeType: "Robbery", SeverityLevel: "Low"},
	}, crimes...)

	filtered := Apply(withNew, selection)
	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].FIRNumber)
	assert.Equal(t, "B", filtered[1].FIRNumber)

	selection.Toggle("robbery")
	assert.Len(t, Apply(withNew, selection), 3)
}

func TestSelectAll(t *testing.T) {
	selection := NewSelection()
	selection.Bootstrap([]string{"theft"})
	selection.Toggle("theft")
	require.Equal(t, 0, selection.Len())

	selection.SelectAll([]string{"assault", "robbery", "theft"})
	assert.Equal(t, []string{"assault", "robbery", "theft"}, selection.Labels())
}
