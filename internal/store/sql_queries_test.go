// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-weather-keeper/models"
)

var (
	dollar   = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	question = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
)

func Test_buildFindAccountQuery(t *testing.T) {
	tests := []struct {
		name        string
		sb          squirrel.StatementBuilderType
		where       squirrel.Sqlizer
		onlyEnabled bool
		wantSQL     string
		wantArgs    []any
	}{
		{
			name:     "by username, postgres",
			sb:       dollar,
			where:    squirrel.Eq{"username": "alice"},
			wantSQL:  "SELECT id, username, secret_hash, enabled, created_at, last_login_at FROM accounts WHERE username = $1 LIMIT 1",
			wantArgs: []any{"alice"},
		},
		{
			name:        "enabled by username, postgres",
			sb:          dollar,
			where:       squirrel.Eq{"username": "alice"},
			onlyEnabled: true,
			wantSQL:     "SELECT id, username, secret_hash, enabled, created_at, last_login_at FROM accounts WHERE username = $1 AND enabled = $2 LIMIT 1",
			wantArgs:    []any{"alice", true},
		},
		{
			name:     "by id, sqlite",
			sb:       question,
			where:    squirrel.Eq{"id": int64(7)},
			wantSQL:  "SELECT id, username, secret_hash, enabled, created_at, last_login_at FROM accounts WHERE id = ? LIMIT 1",
			wantArgs: []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindAccountQuery(tt.sb, tt.where, tt.onlyEnabled)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildInsertAccountQuery_ReturnsGeneratedColumns(t *testing.T) {
	account := models.Account{Username: "alice", SecretHash: "hash", CreatedAt: time.Unix(0, 0)}

	query, args, err := buildInsertAccountQuery(dollar, account)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into accounts")
	require.Contains(t, q, "returning id, created_at")
	require.Contains(t, query, "$5")
	require.Len(t, args, 5)
	assert.Equal(t, "alice", args[0])
	assert.Equal(t, false, args[2])
}

func Test_buildUpdateAccountQuery(t *testing.T) {
	account := models.Account{ID: 3, Username: "alice", SecretHash: "hash", Enabled: true}

	query, args, err := buildUpdateAccountQuery(question, account)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE accounts SET username = ?, secret_hash = ?, enabled = ?, last_login_at = ? WHERE id = ?", query)
	require.Len(t, args, 5)
	assert.Equal(t, int64(3), args[4])
}

func Test_buildTouchLastLoginQuery(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	account := models.Account{ID: 3, Username: "alice", SecretHash: "hash", Enabled: true}

	query, args, err := buildTouchLastLoginQuery(dollar, account, at)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE accounts SET last_login_at = $1 WHERE id = $2 AND enabled = $3 AND secret_hash = $4", query)
	assert.Equal(t, []any{at, int64(3), true, "hash"}, args)
	assert.NotContains(t, query, "username", "only the login timestamp is written")
}

func Test_buildListReadingsQuery(t *testing.T) {
	from := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2017, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		filter     models.ReadingFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no filter uses default limit",
			filter: models.ReadingFilter{}.Normalized(),
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, strings.ToLower(query), "where")
				assert.Contains(t, query, "ORDER BY timestamp DESC, id DESC")
				assert.Contains(t, query, "LIMIT 100")
				assert.Empty(t, args)
			},
		},
		{
			name:   "time window and location",
			filter: models.ReadingFilter{From: from, To: to, City: "Edmonton", Country: "Canada", Limit: 10, Offset: 20},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "WHERE timestamp >= $1 AND timestamp <= $2 AND city = $3 AND country = $4")
				assert.Contains(t, query, "LIMIT 10 OFFSET 20")
				assert.Equal(t, []any{from, to, "Edmonton", "Canada"}, args)
			},
		},
		{
			name:   "country only",
			filter: models.ReadingFilter{Country: "Canada", Limit: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "WHERE country = $1")
				assert.Equal(t, []any{"Canada"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListReadingsQuery(dollar, "humidity_public_view", publicReadingColumns, tt.filter)
			require.NoError(t, err)
			require.Contains(t, query, "FROM humidity_public_view")
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_publicReadingColumns_ExcludePreciseData(t *testing.T) {
	for _, column := range []string{"latitude", "longitude", "elevation", "elevation_units"} {
		assert.NotContains(t, publicReadingColumns, column)
	}
}

func Test_buildInsertReadingQuery(t *testing.T) {
	params := models.ProtectedReadingParams{
		Value:     45.5,
		Latitude:  53.54612,
		Longitude: -113.49387,
		Location:  models.Location{City: "Edmonton", Province: "Alberta", Country: "Canada"},
	}

	query, args, err := buildInsertReadingQuery(dollar, "humidity", params, 53.546, -113.493)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO humidity "))
	assert.True(t, strings.HasSuffix(query, "RETURNING id"))
	require.Len(t, args, 13)
	assert.Equal(t, 53.546, args[4])
	assert.Equal(t, -113.493, args[6])
	assert.Equal(t, "Edmonton", args[7])
}

func Test_readingQueries_NormalizeTimesToUTC(t *testing.T) {
	mdt := time.FixedZone("MDT", -6*3600)
	from := time.Date(2017, 6, 1, 18, 0, 0, 0, mdt)
	to := time.Date(2017, 6, 2, 18, 0, 0, 0, mdt)

	_, args, err := buildListReadingsQuery(question, "humidity", publicReadingColumns,
		models.ReadingFilter{From: from, To: to}.Normalized())
	require.NoError(t, err)
	require.Len(t, args, 2)

	// sqlite compares DATETIME values as text, so the zone must match the stored rows
	for i, want := range []time.Time{from, to} {
		got, ok := args[i].(time.Time)
		require.True(t, ok)
		assert.Equal(t, time.UTC, got.Location())
		assert.True(t, want.Equal(got))
	}
	assert.Equal(t, time.Date(2017, 6, 2, 0, 0, 0, 0, time.UTC), args[0])

	_, args, err = buildInsertReadingQuery(question, "humidity",
		models.ProtectedReadingParams{Timestamp: from}, 0, 0)
	require.NoError(t, err)
	stamp, ok := args[12].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.UTC, stamp.Location())
	assert.True(t, from.Equal(stamp))
}
