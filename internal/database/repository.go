package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound marks a lookup miss; handlers map it to a 404.
var ErrNotFound = errors.New("record not found")

// Repository handles database operations for applicants and assessments.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// CreateApplicant persists a new applicant.
func (r *Repository) CreateApplicant(a *Applicant) error {
	stmt, err := r.db.GetPreparedStatement("insert_applicant")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(a.ID, a.Name, a.Age, a.City, a.State, a.Phone, a.Email, a.IPAddress, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create applicant: %w", err)
	}
	return nil
}

// GetApplicant fetches an applicant by id.
func (r *Repository) GetApplicant(id string) (*Applicant, error) {
	stmt, err := r.db.GetPreparedStatement("get_applicant")
	if err != nil {
		return nil, err
	}

	var a Applicant
	err = stmt.QueryRow(id).Scan(
		&a.ID, &a.Name, &a.Age, &a.City, &a.State, &a.Phone, &a.Email, &a.IPAddress, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	return &a, nil
}

// ListApplicants returns applicants newest first.
func (r *Repository) ListApplicants(limit, offset int) ([]Applicant, error) {
	rows, err := r.db.Query(`
		SELECT id, name, age, city, state, phone, email, ip_address, created_at, updated_at
		FROM applicants
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []Applicant
	for rows.Next() {
		var a Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.City, &a.State, &a.Phone, &a.Email, &a.IPAddress, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// CreateAssessment persists a new pending assessment.
func (r *Repository) CreateAssessment(a *Assessment) error {
	stmt, err := r.db.GetPreparedStatement("insert_assessment")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(a.ID, a.ApplicantID, a.Status, a.InfoJSON, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// GetAssessment fetches an assessment by id.
func (r *Repository) GetAssessment(id string) (*Assessment, error) {
	stmt, err := r.db.GetPreparedStatement("get_assessment")
	if err != nil {
		return nil, err
	}

	var a Assessment
	var info, input, result sql.NullString
	var completedAt sql.NullTime
	err = stmt.QueryRow(id).Scan(
		&a.ID, &a.ApplicantID, &a.Status, &info, &input, &result,
		&a.FinalScore, &a.Category, &a.TradScore, &a.PsychScore, &a.AIScore,
		&a.AIFallback, &a.CreatedAt, &a.UpdatedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	a.InfoJSON = info.String
	a.InputJSON = input.String
	a.ResultJSON = result.String
	if completedAt.Valid {
		t := completedAt.Time
		a.CompletedAt = &t
	}
	return &a, nil
}

// CompleteAssessment stores the scoring outcome and flips the status.
func (r *Repository) CompleteAssessment(a *Assessment) error {
	stmt, err := r.db.GetPreparedStatement("complete_assessment")
	if err != nil {
		return err
	}

	now := time.Now()
	a.Status = StatusCompleted
	a.UpdatedAt = now
	a.CompletedAt = &now

	res, err := stmt.Exec(
		a.Status, a.InputJSON, a.ResultJSON, a.FinalScore, a.Category,
		a.TradScore, a.PsychScore, a.AIScore, a.AIFallback,
		a.UpdatedAt, a.CompletedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete assessment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCompletedToday counts assessments an applicant completed since local
// midnight. Backs the per-applicant daily calculation limit.
func (r *Repository) CountCompletedToday(applicantID string) (int, error) {
	stmt, err := r.db.GetPreparedStatement("count_completed_today")
	if err != nil {
		return 0, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int
	if err := stmt.QueryRow(applicantID, midnight).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assessments: %w", err)
	}
	return count, nil
}

// ListCompletedAssessments returns completed assessments joined with their
// applicant, newest first. Backs the admin listing and the CSV export.
func (r *Repository) ListCompletedAssessments(limit, offset int) ([]AssessmentSummary, error) {
	rows, err := r.db.Query(`
		SELECT s.id, s.applicant_id, a.name, s.final_score, s.category,
			s.traditional_score, s.psychometric_score, s.ai_score,
			s.ai_fallback, s.completed_at
		FROM assessments s
		JOIN applicants a ON a.id = s.applicant_id
		WHERE s.status = ?
		ORDER BY s.completed_at DESC
		LIMIT ? OFFSET ?
	`, StatusCompleted, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var summaries []AssessmentSummary
	for rows.Next() {
		var s AssessmentSummary
		var completedAt sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.ApplicantID, &s.ApplicantName, &s.FinalScore, &s.Category,
			&s.TradScore, &s.PsychScore, &s.AIScore, &s.AIFallback, &completedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		if completedAt.Valid {
			t := completedAt.Time
			s.CompletedAt = &t
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetScoreStats aggregates completed assessments for the admin dashboard.
func (r *Repository) GetScoreStats() (*ScoreStats, error) {
	stats := &ScoreStats{ByCategory: make(map[string]int64)}

	err := r.db.QueryRow(`
		SELECT COUNT(*), COALESCE(AVG(final_score), 0),
			COALESCE(MIN(final_score), 0), COALESCE(MAX(final_score), 0)
		FROM assessments WHERE status = ?
	`, StatusCompleted).Scan(&stats.TotalCompleted, &stats.AverageScore, &stats.MinScore, &stats.MaxScore)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scores: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT category, COUNT(*) FROM assessments
		WHERE status = ? GROUP BY category
	`, StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to group by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.ByCategory[category] = count
	}
	return stats, rows.Err()
}

// PurgeAssessmentsBefore deletes completed assessments older than the cutoff.
// Retention housekeeping; returns the number of rows removed.
func (r *Repository) PurgeAssessmentsBefore(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`
		DELETE FROM assessments WHERE status = ? AND completed_at < ?
	`, StatusCompleted, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge assessments: %w", err)
	}
	return res.RowsAffected()
}
