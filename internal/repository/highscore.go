package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nmakarov/sweeper/internal/sessions"
)

func whereClause(f sessions.HighscoreFilter) (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Rows != nil {
		clauses = append(clauses, "rows = @rows")
		args["rows"] = *f.Rows
	}
	if f.Cols != nil {
		clauses = append(clauses, "cols = @cols")
		args["cols"] = *f.Cols
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mineCount")
		args["mineCount"] = *f.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListHighscores(
	ctx context.Context, filter sessions.HighscoreFilter,
) ([]sessions.Highscore, error) {
	query := `
	SELECT
		game_session_id,
		username,
		rows,
		cols,
		mine_count,
		(
			extract('epoch' from ended_at) - extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		status = 'won'
		AND ended_at IS NOT NULL`

	where, args := whereClause(filter)
	if where != "" {
		query += " AND " + where
	}
	query += " ORDER BY playtime_ms"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[sessions.Highscore])
}
