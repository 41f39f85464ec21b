package store

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-keeper/models"
)

var accountColumns = []string{
	"id",
	"username",
	"secret_hash",
	"enabled",
	"created_at",
	"last_login_at",
}

var protectedReadingColumns = []string{
	"id",
	"value",
	"value_units",
	"value_error_range",
	"latitude",
	"longitude",
	"city",
	"province",
	"country",
	"elevation",
	"elevation_units",
	"timestamp",
}

var publicReadingColumns = []string{
	"id",
	"value",
	"value_units",
	"value_error_range",
	"latitude_public",
	"longitude_public",
	"city",
	"province",
	"country",
	"timestamp",
}

func buildFindAccountQuery(sb squirrel.StatementBuilderType, where squirrel.Sqlizer, onlyEnabled bool) (string, []any, error) {
	q := sb.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where)
	if onlyEnabled {
		q = q.Where(squirrel.Eq{"enabled": true})
	}
	return q.Limit(1).ToSql()
}

func buildCountByUsernameQuery(sb squirrel.StatementBuilderType, username string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(models.Account{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		ToSql()
}

func buildInsertAccountQuery(sb squirrel.StatementBuilderType, account models.Account) (string, []any, error) {
	return sb.Insert(models.Account{}.TableName()).
		Columns("username", "secret_hash", "enabled", "created_at", "last_login_at").
		Values(account.Username, account.SecretHash, account.Enabled, account.CreatedAt, account.LastLoginAt).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildUpdateAccountQuery(sb squirrel.StatementBuilderType, account models.Account) (string, []any, error) {
	return sb.Update(models.Account{}.TableName()).
		Set("username", account.Username).
		Set("secret_hash", account.SecretHash).
		Set("enabled", account.Enabled).
		Set("last_login_at", account.LastLoginAt).
		Where(squirrel.Eq{"id": account.ID}).
		ToSql()
}

func buildTouchLastLoginQuery(sb squirrel.StatementBuilderType, account models.Account, at time.Time) (string, []any, error) {
	return sb.Update(models.Account{}.TableName()).
		Set("last_login_at", at.UTC()).
		Where(squirrel.Eq{"id": account.ID}).
		Where(squirrel.Eq{"enabled": true}).
		Where(squirrel.Eq{"secret_hash": account.SecretHash}).
		ToSql()
}

func buildDeleteAccountQuery(sb squirrel.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Delete(models.Account{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildInsertReadingQuery(sb squirrel.StatementBuilderType, table string, p models.ProtectedReadingParams, latPublic, lonPublic float64) (string, []any, error) {
	return sb.Insert(table).
		Columns(
			"value", "value_units", "value_error_range",
			"latitude", "latitude_public", "longitude", "longitude_public",
			"city", "province", "country",
			"elevation", "elevation_units", "timestamp",
		).
		Values(
			p.Value, p.ValueUnits, p.ValueErrorRange,
			p.Latitude, latPublic, p.Longitude, lonPublic,
			p.City, p.Province, p.Country,
			p.Elevation, p.ElevationUnits, p.Timestamp.UTC(),
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetReadingQuery(sb squirrel.StatementBuilderType, table string, id int64) (string, []any, error) {
	return sb.Select(protectedReadingColumns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildListReadingsQuery selects columns from source narrowed by filter,
// newest first. The filter must already be normalized.
//
// Timestamps are written in UTC and the window bounds are converted to UTC
// too: sqlite compares the stored DATETIME text lexically, so both sides
// must carry the same offset.
func buildListReadingsQuery(sb squirrel.StatementBuilderType, source string, columns []string, filter models.ReadingFilter) (string, []any, error) {
	q := sb.Select(columns...).From(source)

	if !filter.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"timestamp": filter.From.UTC()})
	}
	if !filter.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{"timestamp": filter.To.UTC()})
	}
	if filter.City != "" {
		q = q.Where(squirrel.Eq{"city": filter.City})
	}
	if filter.Country != "" {
		q = q.Where(squirrel.Eq{"country": filter.Country})
	}

	return q.OrderBy("timestamp DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
}

func buildDeleteReadingQuery(sb squirrel.StatementBuilderType, table string, id int64) (string, []any, error) {
	return sb.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
