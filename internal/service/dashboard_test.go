package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/crime_pulse/internal/config"
	"github.com/shenikar/crime_pulse/internal/models"
	"github.com/shenikar/crime_pulse/internal/service/mocks"
	sessionmocks "github.com/shenikar/crime_pulse/internal/session/mocks"
	"github.com/shenikar/crime_pulse/internal/store"
	"github.com/shenikar/crime_pulse/pkg/logger"
)

type dashboardFixture struct {
	api      *mocks.MockCrimeAPI
	archive  *mocks.MockCrimeArchive
	sessions *sessionmocks.MockRepository
	store    *store.Store
	service  Dashboard
}

func newTestDashboard(t *testing.T) *dashboardFixture {
	ctrl := gomock.NewController(t)

	f := &dashboardFixture{
		api:      mocks.NewMockCrimeAPI(ctrl),
		archive:  mocks.NewMockCrimeArchive(ctrl),
		sessions: sessionmocks.NewMockRepository(ctrl),
		store:    store.New(),
	}
	cfg := &config.Config{TrendsDays: 30, PatrolOfficers: 5}
	f.service = NewDashboardService(f.api, f.store, f.sessions, f.archive, logger.Silent(), cfg)
	return f
}

func (f *dashboardFixture) expectAnalytics() {
	f.api.EXPECT().FetchHotspots(gomock.Any()).Return([]models.Hotspot{}, nil)
	f.api.EXPECT().FetchPatterns(gomock.Any()).Return(&models.TimePatterns{}, nil)
	f.api.EXPECT().FetchTrends(gomock.Any(), 30).Return(&models.CrimeTrends{Trend: "stable"}, nil)
	f.api.EXPECT().FetchPatrolRoutes(gomock.Any(), 5).Return([]models.PatrolSuggestion{}, nil)
}

func TestInitialLoad_Success(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	crimes := []models.CrimeRecord{
		{FIRNumber: "1", CrimeType: "Theft"},
		{FIRNumber: "2", CrimeType: "Assault"},
	}
	f.api.EXPECT().FetchCrimes(gomock.Any()).Return(crimes, nil)
	f.api.EXPECT().FetchStats(gomock.Any()).Return(&models.CrimeStats{Success: true, TotalRecords: 2}, nil)
	f.expectAnalytics()
	f.archive.EXPECT().SaveBatch(gomock.Any(), crimes).Return(nil)

	assert.True(t, f.service.Loading())
	f.service.InitialLoad(ctx)
	assert.False(t, f.service.Loading())

	assert.Len(t, f.service.Crimes(), 2)
	require.NotNil(t, f.service.Stats())
	assert.Equal(t, 2, f.service.Stats().TotalRecords)
	assert.Equal(t, "stable", f.service.Analytics().Trends.Trend)

	// При первой загрузке все типы выбраны
	available, selected := f.service.CrimeTypes()
	assert.Equal(t, []string{"assault", "theft"}, available)
	assert.Equal(t, []string{"assault", "theft"}, selected)
}

func TestInitialLoad_APIDownFallsBackToArchive(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	archived := []models.CrimeRecord{{FIRNumber: "old", CrimeType: "Theft"}}
	f.api.EXPECT().FetchCrimes(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.api.EXPECT().FetchStats(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.api.EXPECT().FetchHotspots(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.api.EXPECT().FetchPatterns(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.api.EXPECT().FetchTrends(gomock.Any(), 30).Return(nil, errors.New("connection refused"))
	f.api.EXPECT().FetchPatrolRoutes(gomock.Any(), 5).Return(nil, errors.New("connection refused"))
	f.archive.EXPECT().LoadAll(gomock.Any()).Return(archived, nil)

	f.service.InitialLoad(ctx)

	// Отдаются устаревшие данные из архива, загрузка завершена
	assert.False(t, f.service.Loading())
	assert.Len(t, f.service.Crimes(), 1)
	assert.Nil(t, f.service.Stats())
}

func TestService_ServesEmptyStateBeforeInitialLoad(t *testing.T) {
	f := newTestDashboard(t)

	// Начальная загрузка идет в фоне, хэндлеры работают сразу
	assert.True(t, f.service.Loading())
	assert.Empty(t, f.service.Crimes())
	assert.Empty(t, f.service.MapFeatures().Features)
	assert.Nil(t, f.service.Stats())

	available, selected := f.service.CrimeTypes()
	assert.Empty(t, available)
	assert.Empty(t, selected)
}

func TestPollTick_MergesNewRecords(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	initial := []models.CrimeRecord{
		{FIRNumber: "A", CrimeType: "Theft"},
		{FIRNumber: "B", CrimeType: "Assault"},
	}
	f.api.EXPECT().FetchCrimes(gomock.Any()).Return(initial, nil)
	f.api.EXPECT().FetchStats(gomock.Any()).Return(&models.CrimeStats{Success: true}, nil)
	f.expectAnalytics()
	f.archive.EXPECT().SaveBatch(gomock.Any(), initial).Return(nil)
	f.service.InitialLoad(ctx)

	fresh := []models.CrimeRecord{{FIRNumber: "C", CrimeType: "Robbery"}}
	f.api.EXPECT().FetchNew(gomock.Any(), f.store.Watermark()).Return(&models.CrimeUpdate{
		Success:   true,
		Data:      fresh,
		Timestamp: "2024-05-01T10:01:00Z",
	}, nil)
	f.api.EXPECT().FetchStats(gomock.Any()).Return(&models.CrimeStats{Success: true, TotalRecords: 3}, nil)
	f.expectAnalytics()
	f.archive.EXPECT().SaveBatch(gomock.Any(), fresh).Return(nil)

	added, err := f.service.PollTick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// Новые записи встают в начало, watermark берется из ответа сервера
	all := f.store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].FIRNumber)
	assert.Equal(t, "2024-05-01T10:01:00Z", f.store.Watermark())

	// Новый тип виден в списке, но в выбор задним числом не попадает
	available, selected := f.service.CrimeTypes()
	assert.Contains(t, available, "robbery")
	assert.NotContains(t, selected, "robbery")
	for _, c := range f.service.Crimes() {
		assert.NotEqual(t, "Robbery", c.CrimeType)
	}
}

func TestPollTick_EmptyPayloadChangesNothing(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	before := f.store.Watermark()
	f.api.EXPECT().FetchNew(gomock.Any(), before).Return(&models.CrimeUpdate{
		Success:   true,
		Data:      nil,
		Timestamp: "2024-05-01T10:05:00Z",
	}, nil)

	added, err := f.service.PollTick(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, before, f.store.Watermark())
	assert.Zero(t, f.store.Len())
}

func TestPollTick_UnsuccessfulResponseChangesNothing(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	before := f.store.Watermark()
	f.api.EXPECT().FetchNew(gomock.Any(), before).Return(&models.CrimeUpdate{
		Success:   false,
		Data:      []models.CrimeRecord{{FIRNumber: "X"}},
		Timestamp: "2024-05-01T10:05:00Z",
	}, nil)

	added, err := f.service.PollTick(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, before, f.store.Watermark())
	assert.Zero(t, f.store.Len())
}

func TestPollTick_TransportError(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	before := f.store.Watermark()
	f.api.EXPECT().FetchNew(gomock.Any(), before).Return(nil, errors.New("connection refused"))

	added, err := f.service.PollTick(ctx)
	require.Error(t, err)
	assert.Zero(t, added)
	assert.Contains(t, err.Error(), "poll fetch failed")
	assert.Equal(t, before, f.store.Watermark())
}

func TestPollTick_StatsErrorDoesNotFailMerge(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	fresh := []models.CrimeRecord{{FIRNumber: "C", CrimeType: "Robbery"}}
	f.api.EXPECT().FetchNew(gomock.Any(), gomock.Any()).Return(&models.CrimeUpdate{
		Success:   true,
		Data:      fresh,
		Timestamp: "2024-05-01T10:01:00Z",
	}, nil)
	f.api.EXPECT().FetchStats(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.expectAnalytics()
	f.archive.EXPECT().SaveBatch(gomock.Any(), fresh).Return(nil)

	added, err := f.service.PollTick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, "2024-05-01T10:01:00Z", f.store.Watermark())
}

func TestClearCrimeTypes_ShowsEverything(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	crimes := []models.CrimeRecord{
		{FIRNumber: "1", CrimeType: "Theft"},
		{FIRNumber: "2", CrimeType: "Assault"},
	}
	f.api.EXPECT().FetchCrimes(gomock.Any()).Return(crimes, nil)
	f.api.EXPECT().FetchStats(gomock.Any()).Return(&models.CrimeStats{Success: true}, nil)
	f.expectAnalytics()
	f.archive.EXPECT().SaveBatch(gomock.Any(), crimes).Return(nil)
	f.service.InitialLoad(ctx)

	f.service.ToggleCrimeType("Theft")
	require.Len(t, f.service.Crimes(), 1)

	// Пустой выбор означает "показывать все", а не "ничего"
	f.service.ClearCrimeTypes()
	assert.Len(t, f.service.Crimes(), 2)
	assert.Len(t, f.service.MapFeatures().Features, 2)

	_, selected := f.service.CrimeTypes()
	assert.Empty(t, selected)

	f.service.SelectAllCrimeTypes()
	assert.Len(t, f.service.Crimes(), 2)
}

func TestToggleCrimeType_RoundTrip(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	crimes := []models.CrimeRecord{
		{FIRNumber: "1", CrimeType: "Theft"},
		{FIRNumber: "2", CrimeType: "Assault"},
	}
	f.api.EXPECT().FetchCrimes(gomock.Any()).Return(crimes, nil)
	f.api.EXPECT().FetchStats(gomock.Any()).Return(&models.CrimeStats{Success: true}, nil)
	f.expectAnalytics()
	f.archive.EXPECT().SaveBatch(gomock.Any(), crimes).Return(nil)
	f.service.InitialLoad(ctx)

	f.service.ToggleCrimeType("Theft")
	visible := f.service.Crimes()
	require.Len(t, visible, 1)
	assert.Equal(t, "Assault", visible[0].CrimeType)

	f.service.ToggleCrimeType("Theft")
	assert.Len(t, f.service.Crimes(), 2)
}
