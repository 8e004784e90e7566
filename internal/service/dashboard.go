package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/crime_pulse/internal/config"
	"github.com/shenikar/crime_pulse/internal/filter"
	"github.com/shenikar/crime_pulse/internal/mapview"
	"github.com/shenikar/crime_pulse/internal/models"
	"github.com/shenikar/crime_pulse/internal/session"
	"github.com/shenikar/crime_pulse/internal/store"
)

// CrimeAPI определяет контракт удаленного API с данными о преступлениях
type CrimeAPI interface {
	FetchCrimes(ctx context.Context) ([]models.CrimeRecord, error)
	FetchNew(ctx context.Context, since string) (*models.CrimeUpdate, error)
	FetchStats(ctx context.Context) (*models.CrimeStats, error)
	FetchHotspots(ctx context.Context) ([]models.Hotspot, error)
	FetchPatterns(ctx context.Context) (*models.TimePatterns, error)
	FetchTrends(ctx context.Context, days int) (*models.CrimeTrends, error)
	FetchPatrolRoutes(ctx context.Context, officers int) ([]models.PatrolSuggestion, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*models.AuthResult, error)
	SetToken(token string)
	ClearToken()
}

// CrimeArchive определяет контракт локального архива записей.
// Архив необязателен: сервис работает и без него.
type CrimeArchive interface {
	SaveBatch(ctx context.Context, crimes []models.CrimeRecord) error
	LoadAll(ctx context.Context) ([]models.CrimeRecord, error)
}

// Dashboard определяет контракт бизнес-логики панели наблюдения
type Dashboard interface {
	InitialLoad(ctx context.Context)
	PollTick(ctx context.Context) (int, error)
	Loading() bool

	Crimes() []models.CrimeRecord
	MapFeatures() *geojson.FeatureCollection
	CrimeTypes() (available []string, selected []string)
	ToggleCrimeType(crimeType string)
	SelectAllCrimeTypes()
	ClearCrimeTypes()
	Stats() *models.CrimeStats
	Analytics() models.Analytics

	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (*models.Session, error)
	CurrentSession() *models.Session
}

type dashboardService struct {
	api      CrimeAPI
	store    *store.Store
	sessions session.Repository
	archive  CrimeArchive
	logger   *logrus.Logger
	cfg      *config.Config

	mu        sync.Mutex
	selection *filter.Selection
	stats     *models.CrimeStats
	analytics models.Analytics
	current   *models.Session
	loading   bool
}

// NewDashboardService создает сервис панели. archive может быть nil,
// тогда деградация при недоступном API - пустое хранилище.
func NewDashboardService(api CrimeAPI, st *store.Store, sessions session.Repository, archive CrimeArchive, logger *logrus.Logger, cfg *config.Config) Dashboard {
	return &dashboardService{
		api:       api,
		store:     st,
		sessions:  sessions,
		archive:   archive,
		logger:    logger,
		cfg:       cfg,
		selection: filter.NewSelection(),
		loading:   true,
	}
}

// InitialLoad выполняет начальную загрузку: полная коллекция и статистика
// запрашиваются одновременно. Ошибки не всплывают наружу: при недоступном
// API хэндлеры продолжают отдавать пустые или архивные данные.
func (s *dashboardService) InitialLoad(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "InitialLoad",
	})
	log.Info("Loading initial crime data")

	// Флаг loading снимается в любом исходе
	defer s.setLoading(false)

	var (
		wg       sync.WaitGroup
		crimes   []models.CrimeRecord
		crimeErr error
		stats    *models.CrimeStats
		statsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		crimes, crimeErr = s.api.FetchCrimes(ctx)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = s.api.FetchStats(ctx)
	}()
	wg.Wait()

	if crimeErr != nil {
		log.WithError(crimeErr).Error("Failed to fetch initial crime data")
		s.restoreFromArchive(ctx)
	} else {
		s.store.Replace(crimes)
		s.bootstrapSelection()
		s.archiveCrimes(ctx, crimes)
		log.WithField("count", len(crimes)).Info("Initial crime data loaded")
	}

	if statsErr != nil {
		log.WithError(statsErr).Error("Failed to fetch stats")
	} else {
		s.setStats(stats)
	}

	if err := s.refreshAnalytics(ctx); err != nil {
		log.WithError(err).Error("Failed to fetch analytics")
	}
}

// PollTick выполняет один шаг инкрементального опроса. Возвращает число
// добавленных записей. Пустой или неуспешный ответ не меняет ни
// хранилище, ни watermark.
func (s *dashboardService) PollTick(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "PollTick",
	})

	since := s.store.Watermark()
	update, err := s.api.FetchNew(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("service: poll fetch failed: %w", err)
	}

	if !update.Success || len(update.Data) == 0 {
		return 0, nil
	}

	s.store.Prepend(update.Data)
	s.bootstrapSelection()
	s.archiveCrimes(ctx, update.Data)

	if stats, err := s.api.FetchStats(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh stats after poll")
	} else {
		s.setStats(stats)
	}

	if err := s.refreshAnalytics(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh analytics after poll")
	}

	// Границей следующей выборки становится серверная отметка времени,
	// локальные часы не участвуют
	s.store.SetWatermark(update.Timestamp)

	log.WithField("count", len(update.Data)).Info("Merged new crime records")
	return len(update.Data), nil
}

// refreshAnalytics запрашивает все четыре аналитических среза одновременно.
// При любой ошибке текущий срез остается нетронутым.
func (s *dashboardService) refreshAnalytics(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		hotspots []models.Hotspot
		patterns *models.TimePatterns
		trends   *models.CrimeTrends
		patrol   []models.PatrolSuggestion
		errs     [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		hotspots, errs[0] = s.api.FetchHotspots(ctx)
	}()
	go func() {
		defer wg.Done()
		patterns, errs[1] = s.api.FetchPatterns(ctx)
	}()
	go func() {
		defer wg.Done()
		trends, errs[2] = s.api.FetchTrends(ctx, s.cfg.TrendsDays)
	}()
	go func() {
		defer wg.Done()
		patrol, errs[3] = s.api.FetchPatrolRoutes(ctx, s.cfg.PatrolOfficers)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.analytics = models.Analytics{
		Hotspots:     hotspots,
		Patterns:     patterns,
		Trends:       trends,
		PatrolRoutes: patrol,
	}
	s.mu.Unlock()
	return nil
}

// restoreFromArchive наполняет хранилище последним архивным снимком
func (s *dashboardService) restoreFromArchive(ctx context.Context) {
	if s.archive == nil {
		return
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "restoreFromArchive",
	})

	crimes, err := s.archive.LoadAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load crime archive")
		return
	}
	if len(crimes) == 0 {
		return
	}

	s.store.Replace(crimes)
	s.bootstrapSelection()
	log.WithField("count", len(crimes)).Info("Restored stale crime data from archive")
}

// archiveCrimes выполняет сквозную запись в архив, ошибки только логируются
func (s *dashboardService) archiveCrimes(ctx context.Context, crimes []models.CrimeRecord) {
	if s.archive == nil || len(crimes) == 0 {
		return
	}
	if err := s.archive.SaveBatch(ctx, crimes); err != nil {
		s.logger.WithError(err).Warn("Failed to archive crime records")
	}
}

// bootstrapSelection выполняет одноразовую инициализацию выбора типов:
// при первом появлении данных выбираются все типы. Новые типы из
// последующих опросов в уже инициализированный выбор не добавляются.
func (s *dashboardService) bootstrapSelection() {
	categories := filter.Categories(s.store.All())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Bootstrap(categories)
}

// Loading сообщает, идет ли еще начальная загрузка
func (s *dashboardService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *dashboardService) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *dashboardService) setStats(stats *models.CrimeStats) {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// Crimes возвращает записи, проходящие текущий фильтр типов
func (s *dashboardService) Crimes() []models.CrimeRecord {
	crimes := s.store.All()

	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.Apply(crimes, s.selection)
}

// MapFeatures возвращает отфильтрованные записи в виде GeoJSON-коллекции
func (s *dashboardService) MapFeatures() *geojson.FeatureCollection {
	return mapview.FeatureCollection(s.Crimes())
}

// CrimeTypes возвращает известные типы преступлений и текущий выбор
func (s *dashboardService) CrimeTypes() ([]string, []string) {
	available := filter.Categories(s.store.All())

	s.mu.Lock()
	defer s.mu.Unlock()
	return available, s.selection.Labels()
}

// ToggleCrimeType добавляет или убирает один тип из выбора
func (s *dashboardService) ToggleCrimeType(crimeType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Toggle(crimeType)
}

// SelectAllCrimeTypes выбирает все известные на данный момент типы
func (s *dashboardService) SelectAllCrimeTypes() {
	available := filter.Categories(s.store.All())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.SelectAll(available)
}

// ClearCrimeTypes снимает выбор со всех типов
func (s *dashboardService) ClearCrimeTypes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// Stats возвращает последнюю успешно полученную статистику
func (s *dashboardService) Stats() *models.CrimeStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Analytics возвращает последний успешно полученный срез аналитики
func (s *dashboardService) Analytics() models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics
}
