package repository

import (
	apperrors "VCS_Registry_Health/internal/health-monitor/errors"
	"VCS_Registry_Health/internal/health-monitor/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

var (
	serviceColumns = []string{"id", "name", "status", "health_check_url", "health_status", "consecutive_failures", "consecutive_successes"}
	variantColumns = []string{"id", "service_id", "name", "base_domain", "health_status"}
)

func TestFindServices(t *testing.T) {
	testErr := errors.New("test error")

	tests := []struct {
		name          string
		filter        ServiceFilter
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedIds   []string
		expectedError error
	}{
		{
			name:   "Success enabled services with variants",
			filter: ServiceFilter{EnabledOnly: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE status = $1`)).
					WithArgs(model.ServiceStatusActive).
					WillReturnRows(sqlmock.NewRows(serviceColumns).
						AddRow("svc-1", "payments", "ACTIVE", "http://payments.internal/health", "ACTIVE", 0, 3).
						AddRow("svc-2", "search", "ACTIVE", nil, "UNKNOWN", 0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "variants" WHERE "variants"."service_id" IN ($1,$2)`)).
					WithArgs("svc-1", "svc-2").
					WillReturnRows(sqlmock.NewRows(variantColumns).
						AddRow("var-1", "svc-1", "staging", "staging.example.com", "ACTIVE"))
			},
			expectedIds: []string{"svc-1", "svc-2"},
		},
		{
			name:   "Success single service",
			filter: ServiceFilter{EnabledOnly: true, ID: "svc-1"},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE status = $1 AND id = $2`)).
					WithArgs(model.ServiceStatusActive, "svc-1").
					WillReturnRows(sqlmock.NewRows(serviceColumns).
						AddRow("svc-1", "payments", "ACTIVE", "http://payments.internal/health", "ACTIVE", 0, 3))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "variants" WHERE "variants"."service_id" = $1`)).
					WithArgs("svc-1").
					WillReturnRows(sqlmock.NewRows(variantColumns))
			},
			expectedIds: []string{"svc-1"},
		},
		{
			name:   "Success no services",
			filter: ServiceFilter{},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services"`)).
					WillReturnRows(sqlmock.NewRows(serviceColumns))
			},
			expectedIds: []string{},
		},
		{
			name:   "Error database",
			filter: ServiceFilter{EnabledOnly: true},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE status = $1`)).
					WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServiceRepository(db)

			tc.mockSetup(mock)

			services, err := repo.FindServices(context.Background(), tc.filter)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, services)
			} else {
				require.NoError(t, err)
				ids := make([]string, 0, len(services))
				for _, s := range services {
					ids = append(ids, s.ID)
				}
				assert.Equal(t, tc.expectedIds, ids)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindServices_PreloadsVariants(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewServiceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE status = $1`)).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow("svc-1", "payments", "ACTIVE", "http://payments.internal/health", "INACTIVE", 3, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "variants" WHERE "variants"."service_id" = $1`)).
		WillReturnRows(sqlmock.NewRows(variantColumns).
			AddRow("var-1", "svc-1", "staging", "staging.example.com", "ACTIVE").
			AddRow("var-2", "svc-1", "production", nil, "UNKNOWN"))

	services, err := repo.FindServices(context.Background(), ServiceFilter{EnabledOnly: true})
	require.NoError(t, err)
	require.Len(t, services, 1)

	svc := services[0]
	assert.Equal(t, model.HealthStatusInactive, svc.HealthStatus)
	assert.Equal(t, 3, svc.ConsecutiveFailures)
	require.NotNil(t, svc.HealthCheckURL)
	assert.Equal(t, "http://payments.internal/health", *svc.HealthCheckURL)
	require.Len(t, svc.Variants, 2)
	require.NotNil(t, svc.Variants[0].BaseDomain)
	assert.Equal(t, "staging.example.com", *svc.Variants[0].BaseDomain)
	assert.Nil(t, svc.Variants[1].BaseDomain)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetServiceById(t *testing.T) {
	testErr := errors.New("test error")

	tests := []struct {
		name          string
		id            string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			id:   "svc-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE id = $1 ORDER BY "services"."id" LIMIT $2`)).
					WithArgs("svc-1", 1).
					WillReturnRows(sqlmock.NewRows(serviceColumns).
						AddRow("svc-1", "payments", "ACTIVE", "http://payments.internal/health", "ACTIVE", 0, 3))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "variants" WHERE "variants"."service_id" = $1`)).
					WithArgs("svc-1").
					WillReturnRows(sqlmock.NewRows(variantColumns).
						AddRow("var-1", "svc-1", "staging", "staging.example.com", "ACTIVE"))
			},
		},
		{
			name: "Error not found",
			id:   "missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE id = $1 ORDER BY "services"."id" LIMIT $2`)).
					WithArgs("missing", 1).
					WillReturnRows(sqlmock.NewRows(serviceColumns))
			},
			expectedError: apperrors.ErrServiceNotFound,
		},
		{
			name: "Error database",
			id:   "svc-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services" WHERE id = $1 ORDER BY "services"."id" LIMIT $2`)).
					WithArgs("svc-1", 1).
					WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServiceRepository(db)

			tc.mockSetup(mock)

			service, err := repo.GetServiceById(context.Background(), tc.id)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "svc-1", service.ID)
				assert.Equal(t, "payments", service.Name)
				require.Len(t, service.Variants, 1)
				assert.Equal(t, "var-1", service.Variants[0].ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateServiceHealth(t *testing.T) {
	checkedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	testErr := errors.New("test error")
	query := regexp.QuoteMeta(`UPDATE "services" SET "consecutive_failures"=$1,"consecutive_successes"=$2,"health_status"=$3,"last_health_check_at"=$4,"updated_at"=$5 WHERE id = $6`)

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success writes zero counters",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs(3, 0, model.HealthStatusInactive, checkedAt, sqlmock.AnyArg(), "svc-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error service not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrServiceNotFound,
		},
		{
			name: "Error database",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServiceRepository(db)

			tc.mockSetup(mock)

			err := repo.UpdateServiceHealth(context.Background(), "svc-1", model.HealthStatusInactive, 3, 0, checkedAt)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateVariantHealth(t *testing.T) {
	checkedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	testErr := errors.New("test error")
	query := regexp.QuoteMeta(`UPDATE "variants" SET "health_status"=$1,"last_health_check_at"=$2,"updated_at"=$3 WHERE id = $4 AND service_id = $5`)

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs(model.HealthStatusActive, checkedAt, sqlmock.AnyArg(), "var-1", "svc-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error variant of another service",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrVariantNotFound,
		},
		{
			name: "Error database",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServiceRepository(db)

			tc.mockSetup(mock)

			err := repo.UpdateVariantHealth(context.Background(), "svc-1", "var-1", model.HealthStatusActive, checkedAt)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
