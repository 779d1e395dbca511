package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// LeaderboardEntry is one row of a chat's quiz leaderboard.
type LeaderboardEntry struct {
	UserID    int64
	UserName  string
	BestScore int
	Quizzes   int
}

// ResultRepository persists completed quiz results in the database. Live
// session state never reaches the database; only finished runs are recorded.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository with the provided pool.
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// Save records one completed quiz run.
func (r *ResultRepository) Save(ctx context.Context, result *entities.QuizResult) error {
	query := `
		INSERT INTO quiz_results (
			chat_id, user_id, user_name, score, rounds, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		result.ChatID,
		result.UserID,
		result.UserName,
		result.Score,
		result.Rounds,
		result.StartedAt,
		result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}

	return nil
}

// TopByChat returns a chat's leaderboard ordered by best score, then by the
// number of quizzes played.
func (r *ResultRepository) TopByChat(ctx context.Context, chatID int64, limit int) ([]LeaderboardEntry, error) {
	query := `
		SELECT user_id, MAX(user_name), MAX(score), COUNT(*)
		FROM quiz_results
		WHERE chat_id = $1
		GROUP BY user_id
		ORDER BY MAX(score) DESC, COUNT(*) DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.BestScore, &e.Quizzes); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard rows: %w", err)
	}

	return entries, nil
}
