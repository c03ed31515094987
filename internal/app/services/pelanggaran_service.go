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

// PelanggaranService records student violations and deducts the catalog's
// points from the running balance.
type PelanggaranService struct {
	db              *db.PostgresDB
	pelanggaranRepo *repositories.PelanggaranRepository
	siswaRepo       *repositories.SiswaRepository
	storage         *filestorage.LocalStorage
}

// NewPelanggaranService creates a new pelanggaran service instance
func NewPelanggaranService(database *db.PostgresDB, pelanggaranRepo *repositories.PelanggaranRepository, siswaRepo *repositories.SiswaRepository, storage *filestorage.LocalStorage) *PelanggaranService {
	return &PelanggaranService{
		db:              database,
		pelanggaranRepo: pelanggaranRepo,
		siswaRepo:       siswaRepo,
		storage:         storage,
	}
}

// Record creates a violation record and deducts the catalog's default
// points from the student, both in one transaction. An optional evidence
// file is stored first; its relative path goes into the record.
func (s *PelanggaranService) Record(ctx context.Context, schema dto.PelanggaranCreate, evidence io.Reader, evidenceName string) (*models.InputPelanggaran, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	var evidencePath *string
	if evidence != nil {
		path, err := s.storage.Save(evidence, evidenceName, "pelanggaran")
		if err != nil {
			return nil, err
		}
		evidencePath = &path
	}

	record := &models.InputPelanggaran{
		SiswaID:            schema.SiswaID,
		JenisPelanggaranID: schema.JenisPelanggaranID,
		ViolationDate:      schema.ViolationDate,
		Description:        schema.Description,
		Evidence:           evidencePath,
		ReportedBy:         schema.ReportedBy,
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		jenis, err := s.pelanggaranRepo.WithTx(tx).GetJenisByID(ctx, schema.JenisPelanggaranID)
		if err != nil {
			return err
		}
		record.PointsDeducted = jenis.PointsDeducted

		if err := s.pelanggaranRepo.WithTx(tx).CreateRecord(ctx, record); err != nil {
			return err
		}

		balance, err := s.siswaRepo.WithTx(tx).AdjustPoints(ctx, schema.SiswaID, record.PointsDeducted.Neg())
		if err != nil {
			return err
		}

		logger.Info().
			Int64("siswa_id", schema.SiswaID).
			Str("points_deducted", record.PointsDeducted.String()).
			Str("balance", balance.String()).
			Msg("Pelanggaran recorded")
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

// GetRecordByID retrieves one recorded violation
func (s *PelanggaranService) GetRecordByID(ctx context.Context, id int64) (*models.InputPelanggaran, error) {
	return s.pelanggaranRepo.GetRecordByID(ctx, id)
}

// GetRecordsBySiswaID retrieves the violations of one student
func (s *PelanggaranService) GetRecordsBySiswaID(ctx context.Context, siswaID int64) ([]*models.InputPelanggaran, error) {
	return s.pelanggaranRepo.GetRecordsBySiswaID(ctx, siswaID)
}

// CreateJenis adds a violation catalog entry
func (s *PelanggaranService) CreateJenis(ctx context.Context, jenis *models.JenisPelanggaran) error {
	return s.pelanggaranRepo.CreateJenis(ctx, jenis)
}

// GetAllJenis retrieves the violation catalog
func (s *PelanggaranService) GetAllJenis(ctx context.Context) ([]*models.JenisPelanggaran, error) {
	return s.pelanggaranRepo.GetAllJenis(ctx)
}
