package services

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/db"
	"github.com/sekolahku/siakad/internal/pkg/filestorage"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// PrestasiService records student achievements and maintains the running
// point balance.
type PrestasiService struct {
	db           *db.PostgresDB
	prestasiRepo *repositories.PrestasiRepository
	siswaRepo    *repositories.SiswaRepository
	storage      *filestorage.LocalStorage
}

// NewPrestasiService creates a new prestasi service instance
func NewPrestasiService(database *db.PostgresDB, prestasiRepo *repositories.PrestasiRepository, siswaRepo *repositories.SiswaRepository, storage *filestorage.LocalStorage) *PrestasiService {
	return &PrestasiService{
		db:           database,
		prestasiRepo: prestasiRepo,
		siswaRepo:    siswaRepo,
		storage:      storage,
	}
}

// Record creates an achievement record and credits the points to the
// student, both in one transaction. The catalog default applies unless the
// schema carries an override. An optional evidence file is stored first;
// its relative path goes into the record.
func (s *PrestasiService) Record(ctx context.Context, schema dto.PrestasiCreate, evidence io.Reader, evidenceName string) (*models.InputPrestasi, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	var evidencePath *string
	if evidence != nil {
		path, err := s.storage.Save(evidence, evidenceName, "prestasi")
		if err != nil {
			return nil, err
		}
		evidencePath = &path
	}

	record := &models.InputPrestasi{
		SiswaID:         schema.SiswaID,
		JenisPrestasiID: schema.JenisPrestasiID,
		AchievementDate: schema.AchievementDate,
		Description:     schema.Description,
		Evidence:        evidencePath,
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		jenis, err := s.prestasiRepo.WithTx(tx).GetJenisByID(ctx, schema.JenisPrestasiID)
		if err != nil {
			return err
		}
		record.PointsAwarded = jenis.Points
		if schema.Points != nil {
			record.PointsAwarded = *schema.Points
		}

		if err := s.prestasiRepo.WithTx(tx).CreateRecord(ctx, record); err != nil {
			return err
		}

		balance, err := s.siswaRepo.WithTx(tx).AdjustPoints(ctx, schema.SiswaID, record.PointsAwarded)
		if err != nil {
			return err
		}

		logger.Info().
			Int64("siswa_id", schema.SiswaID).
			Str("points_awarded", record.PointsAwarded.String()).
			Str("balance", balance.String()).
			Msg("Prestasi recorded")
		return nil
	})
	if err != nil {
		if evidencePath != nil {
			_ = s.storage.Delete(*evidencePath)
		}
		return nil, err
	}

	return record, nil
}

// Verify flips the verification flag on a recorded achievement.
func (s *PrestasiService) Verify(ctx context.Context, id int64, verified bool) error {
	return s.prestasiRepo.SetVerified(ctx, id, verified)
}

// GetRecordByID retrieves one recorded achievement
func (s *PrestasiService) GetRecordByID(ctx context.Context, id int64) (*models.InputPrestasi, error) {
	return s.prestasiRepo.GetRecordByID(ctx, id)
}

// GetRecordsBySiswaID retrieves the achievements of one student
func (s *PrestasiService) GetRecordsBySiswaID(ctx context.Context, siswaID int64) ([]*models.InputPrestasi, error) {
	return s.prestasiRepo.GetRecordsBySiswaID(ctx, siswaID)
}

// CreateJenis adds an achievement catalog entry
func (s *PrestasiService) CreateJenis(ctx context.Context, jenis *models.JenisPrestasi) error {
	return s.prestasiRepo.CreateJenis(ctx, jenis)
}

// GetAllJenis retrieves the achievement catalog
func (s *PrestasiService) GetAllJenis(ctx context.Context) ([]*models.JenisPrestasi, error) {
	return s.prestasiRepo.GetAllJenis(ctx)
}
