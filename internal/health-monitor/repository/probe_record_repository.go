package repository

import (
	apperrors "VCS_Registry_Health/internal/health-monitor/errors"
	"VCS_Registry_Health/internal/health-monitor/model"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=probe_record_repository.go -destination=../mocks/repository/mock_probe_record_repository.go -package=mockrepository

type ProbeRecordRepository interface {
	AppendProbeRecord(ctx context.Context, record *model.ProbeRecord) error
	GetProbeRecords(ctx context.Context, serviceId string, variantId string, limit int, offset int) ([]model.ProbeRecord, error)
}

type probeRecordRepository struct {
	db *gorm.DB
}

func (p *probeRecordRepository) AppendProbeRecord(ctx context.Context, record *model.ProbeRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	result := p.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			if record.VariantID != nil && pgErr.ConstraintName == "probe_records_variant_id_fkey" {
				return fmt.Errorf("ProbeRecordRepository.AppendProbeRecord: %w", apperrors.ErrVariantNotFound)
			}
			return fmt.Errorf("ProbeRecordRepository.AppendProbeRecord: %w", apperrors.ErrServiceNotFound)
		}
		return fmt.Errorf("ProbeRecordRepository.AppendProbeRecord: %w", result.Error)
	}
	return nil
}

// GetProbeRecords returns records newest first. An empty variantId returns records of the
// service and all of its variants.
func (p *probeRecordRepository) GetProbeRecords(ctx context.Context, serviceId string, variantId string, limit int, offset int) ([]model.ProbeRecord, error) {
	query := p.db.WithContext(ctx).Where("service_id = ?", serviceId)
	if variantId != "" {
		query = query.Where("variant_id = ?", variantId)
	}
	var records []model.ProbeRecord
	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("ProbeRecordRepository.GetProbeRecords: %w", result.Error)
	}
	return records, nil
}

func NewProbeRecordRepository(db *gorm.DB) ProbeRecordRepository {
	return &probeRecordRepository{
		db: db,
	}
}
