package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listQuery = `SELECT launch_site, payload_mass_kg, class, booster_version_category\s+FROM spacex_launches ORDER BY flight_number`

func newMockRepo(t *testing.T, table string) (*LaunchRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewLaunchRepository(sqlx.NewDb(db, "postgres"), table)
	require.NoError(t, err)
	return repo, mock
}

func TestListLaunches(t *testing.T) {
	repo, mock := newMockRepo(t, "")
	assert.Equal(t, DefaultLaunchTable, repo.Table())

	mock.ExpectQuery(listQuery).
		WillReturnRows(sqlmock.NewRows([]string{"launch_site", "payload_mass_kg", "class", "booster_version_category"}).
			AddRow("siteA", 500.0, 1, "v1").
			AddRow("siteB", 7000.0, 0, "v2"))

	rows, err := repo.ListLaunches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []LaunchRow{
		{Site: "siteA", PayloadMassKg: 500, Class: 1, BoosterCategory: "v1"},
		{Site: "siteB", PayloadMassKg: 7000, Class: 0, BoosterCategory: "v2"},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLaunchesQueryError(t *testing.T) {
	repo, mock := newMockRepo(t, "public.launches")

	mock.ExpectQuery(regexp.QuoteMeta("FROM public.launches ORDER BY flight_number")).
		WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ListLaunches(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public.launches")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewLaunchRepositoryRejectsUnsafeTable(t *testing.T) {
	for _, table := range []string{"launches; DROP TABLE x", "1launches", "a.b.c", "launch-data"} {
		_, err := NewLaunchRepository(nil, table)
		assert.Error(t, err, table)
	}
}
