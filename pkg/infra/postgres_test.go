package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestNewPostgresConnection(t *testing.T) {
	dbName := "registry"
	dbUser := "admin"
	dbPassword := "123456"

	postgresContainer, err := postgres.Run(context.Background(),
		"postgres:17.4",
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.WithDatabase(dbName),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, postgresContainer)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	port, err := postgresContainer.MappedPort(context.Background(), "5432")
	require.NoError(t, err)

	testCases := []struct {
		name         string
		input        PostgresConfig
		expectedErr  bool
		expectedPool int
	}{
		{
			name: "valid input with pool limit",
			input: PostgresConfig{
				Host:         host,
				Port:         port.Int(),
				User:         dbUser,
				Password:     dbPassword,
				DBName:       dbName,
				MaxOpenConns: 5,
			},
			expectedPool: 5,
		},
		{
			name: "valid input without pool limit",
			input: PostgresConfig{
				Host:     host,
				Port:     port.Int(),
				User:     dbUser,
				Password: dbPassword,
				DBName:   dbName,
			},
		},
		{
			name: "invalid password",
			input: PostgresConfig{
				Host:     host,
				Port:     port.Int(),
				User:     dbUser,
				Password: "wrong password",
				DBName:   dbName,
			},
			expectedErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, e := NewPostgresConnection(tc.input)
			if tc.expectedErr {
				assert.Error(t, e)
				return
			}
			require.NoError(t, e)
			sqlDB, e := db.DB()
			require.NoError(t, e)
			defer sqlDB.Close()
			assert.Equal(t, tc.expectedPool, sqlDB.Stats().MaxOpenConnections)
		})
	}
}
