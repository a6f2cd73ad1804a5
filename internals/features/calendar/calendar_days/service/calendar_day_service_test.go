package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func dayRow(id uuid.UUID, date time.Time, naal string, version int, updatedAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"calendar_day_id", "calendar_day_date", "calendar_day_naal",
		"calendar_day_version", "created_at", "updated_at",
	}).AddRow(id, date, naal, version, updatedAt, updatedAt)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d.UTC()
}

func TestGetDay_VirtualDayIsNilNotError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"calendar_day_id"}))

	day, err := svc.GetDay(mustDate(t, "2025-10-01"))
	require.NoError(t, err)
	assert.Nil(t, day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetNaal_CreatesVirtualDayAtVersionOne(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	date := mustDate(t, "2025-10-01")
	actor := uuid.New()

	mock.ExpectBegin()
	// no row yet for the date
	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"calendar_day_id"}))
	mock.ExpectExec(`INSERT INTO "calendar_days"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// a stale version on a virtual day still lands at version 1
	day, err := svc.SetNaal(date, "Bharani", 5, actor)
	require.NoError(t, err)

	assert.Equal(t, 1, day.CalendarDayVersion)
	require.NotNil(t, day.CalendarDayNaal)
	assert.Equal(t, "Bharani", *day.CalendarDayNaal)
	assert.Equal(t, actor, day.CalendarDayUpdatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetNaal_MatchingVersionBumpsByOne(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	date := mustDate(t, "2025-10-01")
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).
		WillReturnRows(dayRow(id, date, "Ashwathi", 3, now))
	// version guard in the WHERE clause, exactly one row lands
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).
		WillReturnRows(dayRow(id, date, "Bharani", 4, now))
	mock.ExpectCommit()

	day, err := svc.SetNaal(date, "Bharani", 3, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 4, day.CalendarDayVersion)
	require.NotNil(t, day.CalendarDayNaal)
	assert.Equal(t, "Bharani", *day.CalendarDayNaal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetNaal_StaleVersionConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	date := mustDate(t, "2025-10-01")
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	// stored version moved on to 4, client Y still holds 3
	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).
		WillReturnRows(dayRow(id, date, "Bharani", 4, now))
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	day, err := svc.SetNaal(date, "Rohini", 3, uuid.New())
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Nil(t, day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRange_ReturnsPersistedCount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(31))

	n, err := svc.CountRange(mustDate(t, "2025-10-01"), mustDate(t, "2025-10-31"))
	require.NoError(t, err)
	assert.Equal(t, int64(31), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRange_UpdatesExistingAndCreatesMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	start := mustDate(t, "2025-10-01")
	end := mustDate(t, "2025-10-03")

	// preview count, before any mutation
	mock.ExpectQuery(`SELECT count\(\*\) FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// day 1: existing row updated in place
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// day 2: no row, created at version 1
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "calendar_days"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// day 3: existing row updated
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	matched, err := svc.ApplyRange(start, end, "1201", uuid.New())
	require.NoError(t, err)
	// matched reports the pre-mutation count, as the dry run did
	assert.Equal(t, int64(2), matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRange_MidRangeFailureKeepsEarlierWrites(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	start := mustDate(t, "2025-10-01")
	end := mustDate(t, "2025-10-02")

	mock.ExpectQuery(`SELECT count\(\*\) FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "calendar_days" SET`).
		WillReturnError(assert.AnError)

	// no rollback of day 1: the failure surfaces, partial state stands
	_, err := svc.ApplyRange(start, end, "1201", uuid.New())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchNaalInRange_AscendingDates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	d1 := mustDate(t, "2025-02-10")
	d2 := mustDate(t, "2025-03-09")
	d3 := mustDate(t, "2025-04-06")

	mock.ExpectQuery(`SELECT "calendar_day_date" FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"calendar_day_date"}).
			AddRow(d1).AddRow(d2).AddRow(d3))

	dates, err := svc.SearchNaalInRange("Pooyam", mustDate(t, "2025-01-01"), mustDate(t, "2025-12-31"))
	require.NoError(t, err)
	require.Len(t, dates, 3)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]), "dates must ascend")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchNaalInRange_EmptyResultIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	mock.ExpectQuery(`SELECT "calendar_day_date" FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"calendar_day_date"}))

	dates, err := svc.SearchNaalInRange("Pooyam", mustDate(t, "2025-01-01"), mustDate(t, "2025-12-31"))
	require.NoError(t, err)
	assert.Empty(t, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonth_LastModifiedIsMaxUpdatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	older := time.Date(2025, 10, 2, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 10, 5, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"calendar_day_id", "calendar_day_date", "calendar_day_naal",
		"calendar_day_version", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), mustDate(t, "2025-10-01"), "Ashwathi", 2, older, older).
		AddRow(uuid.New(), mustDate(t, "2025-10-02"), "Bharani", 1, newer, newer)

	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).WillReturnRows(rows)

	days, lastModified, err := svc.GetMonth(2025, time.October)
	require.NoError(t, err)
	assert.Len(t, days, 2)
	require.NotNil(t, lastModified)
	assert.True(t, lastModified.Equal(newer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonth_EmptyMonthHasNoLastModified(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCalendarDayService(db)

	mock.ExpectQuery(`SELECT \* FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"calendar_day_id"}))

	days, lastModified, err := svc.GetMonth(2025, time.October)
	require.NoError(t, err)
	assert.Empty(t, days)
	assert.Nil(t, lastModified)
	assert.NoError(t, mock.ExpectationsWereMet())
}
