package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/crime_pulse/internal/models"
)

// CrimeArchive - локальный архив записей о преступлениях в PostgreSQL.
// Архив не участвует в обычной работе: он наполняется сквозной записью
// после каждой успешной выборки и используется только для "теплого"
// старта, когда начальная загрузка из удаленного API не удалась.
type CrimeArchive struct {
	db *pgxpool.Pool
}

// NewCrimeArchive создает архив поверх пула соединений
func NewCrimeArchive(db *pgxpool.Pool) *CrimeArchive {
	return &CrimeArchive{db: db}
}

// SaveBatch сохраняет пачку записей. Конфликт по fir_number разрешается
// обновлением: повторная доставка одной и той же записи безопасна.
func (a *CrimeArchive) SaveBatch(ctx context.Context, crimes []models.CrimeRecord) error {
	if len(crimes) == 0 {
		return nil
	}

	query := `
		INSERT INTO crime_archive (
			fir_number, crime_type, severity_level, latitude, longitude,
			location, incident_date, title, description, image_url, source, news_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (fir_number) DO UPDATE SET
			crime_type = EXCLUDED.crime_type,
			severity_level = EXCLUDED.severity_level,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			location = EXCLUDED.location,
			incident_date = EXCLUDED.incident_date,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			source = EXCLUDED.source,
			news_url = EXCLUDED.news_url,
			fetched_at = NOW();
	`

	batch := &pgx.Batch{}
	for _, crime := range crimes {
		batch.Queue(query,
			crime.FIRNumber,
			crime.CrimeType,
			crime.SeverityLevel,
			crime.Latitude,
			crime.Longitude,
			crime.Location,
			crime.IncidentDate,
			crime.Title,
			crime.Description,
			crime.ImageURL,
			crime.Source,
			crime.NewsURL,
		)
	}

	results := a.db.SendBatch(ctx, batch)
	defer results.Close()

	for range crimes {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to archive crime batch: %w", err)
		}
	}
	return nil
}

// LoadAll возвращает все записи архива, самые свежие впереди
func (a *CrimeArchive) LoadAll(ctx context.Context) ([]models.CrimeRecord, error) {
	query := `
		SELECT
			fir_number, crime_type, severity_level, latitude, longitude,
			location, incident_date, title, description, image_url, source, news_url
		FROM crime_archive
		ORDER BY incident_date DESC, fetched_at DESC;
	`

	rows, err := a.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load crime archive: %w", err)
	}
	defer rows.Close()

	crimes := make([]models.CrimeRecord, 0)
	for rows.Next() {
		crime := models.CrimeRecord{}
		err := rows.Scan(
			&crime.FIRNumber,
			&crime.CrimeType,
			&crime.SeverityLevel,
			&crime.Latitude,
			&crime.Longitude,
			&crime.Location,
			&crime.IncidentDate,
			&crime.Title,
			&crime.Description,
			&crime.ImageURL,
			&crime.Source,
			&crime.NewsURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived crime row: %w", err)
		}
		crimes = append(crimes, crime)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error archive iteration: %w", err)
	}
	return crimes, nil
}
