package repository

import (
	"database/sql"
	"io"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

var testLogger = logger.New(logger.ErrorLevel, io.Discard)

// newTestDB opens an in-memory SQLite database with the production schema
// translated to SQLite's dialect. The repositories only use SQL both engines
// accept ($N placeholders, RETURNING), so the same code runs against both.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE employers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL UNIQUE,
			name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			company_name TEXT NOT NULL,
			contact_person TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			location TEXT NOT NULL,
			salary REAL NOT NULL,
			employer_id INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			job_id INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			bio TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return db
}

func seedUser(t *testing.T, repo domain.UserRepository, email string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     "user-" + email,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func seedEmployer(t *testing.T, repo domain.EmployerRepository, userID int64, name string) *domain.Employer {
	t.Helper()
	employer := &domain.Employer{
		UserID:        userID,
		Name:          name,
		Email:         name + "@example.com",
		CompanyName:   name + " A.Ş.",
		ContactPerson: "İletişim Kişisi",
		PasswordHash:  "hash",
	}
	require.NoError(t, repo.Create(employer))
	return employer
}

func seedJob(t *testing.T, repo domain.JobRepository, employerID int64, title string) *domain.Job {
	t.Helper()
	job := &domain.Job{
		Title:       title,
		Description: "desc",
		Location:    "İstanbul",
		Salary:      50000,
		EmployerID:  employerID,
	}
	require.NoError(t, repo.Create(job))
	return job
}

func seedApplication(t *testing.T, repo domain.ApplicationRepository, userID, jobID int64) *domain.Application {
	t.Helper()
	application := &domain.Application{
		UserID: userID,
		JobID:  jobID,
		Status: domain.ApplicationStatusPending,
	}
	require.NoError(t, repo.Create(application))
	return application
}
