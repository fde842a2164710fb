package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, ApplySchema(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	err := repo.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	var user struct {
		Username     string `db:"username"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT username, email, password_hash FROM users WHERE username=$1", "alice")
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "bob", "bob@example.com", "hash"))

	err := repo.Save(ctx, "bob", "other@example.com", "hash")
	assert.Error(t, err)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, "charlie", "charlie@example.com", "hash1"))
	require.NoError(t, writeRepo.Save(ctx, "dave", "dave@example.com", "hash2"))

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("ByUsernameAndEmail", func(t *testing.T) {
		username := "charlie"
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		username := "Charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, "erin", "erin@example.com", "hash"))

	byName, err := readRepo.GetByUsername(ctx, "erin")
	require.NoError(t, err)
	require.NotNil(t, byName)

	user, err := readRepo.GetByID(ctx, byName.UserID)
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "erin", user.Username)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserWriteRepository_Updates(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, "frank", "frank@example.com", "hash"))
	user, err := readRepo.GetByUsername(ctx, "frank")
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NoError(t, writeRepo.UpdateUsername(ctx, user.UserID, "franklin"))
	require.NoError(t, writeRepo.UpdateEmail(ctx, user.UserID, "franklin@example.com"))
	require.NoError(t, writeRepo.UpdatePassword(ctx, user.UserID, "newhash"))

	updated, err := readRepo.GetByID(ctx, user.UserID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "franklin", updated.Username)
	assert.Equal(t, "franklin@example.com", updated.Email)
	assert.Equal(t, "newhash", updated.PasswordHash)
}

func TestUserWriteRepository_Delete_CascadesToEvents(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db, nil)
	userRead := NewUserReadRepository(db)
	eventWrite := NewEventWriteRepository(db, nil)
	ctx := context.Background()

	require.NoError(t, userWrite.Save(ctx, "grace", "grace@example.com", "hash"))
	require.NoError(t, userWrite.Save(ctx, "heidi", "heidi@example.com", "hash"))

	grace, err := userRead.GetByUsername(ctx, "grace")
	require.NoError(t, err)
	heidi, err := userRead.GetByUsername(ctx, "heidi")
	require.NoError(t, err)

	ownedID := uuid.New()
	require.NoError(t, eventWrite.Save(ctx, ownedID, grace.UserID, "owned", "", 100, 200))
	require.NoError(t, eventWrite.AddAttendee(ctx, ownedID, heidi.UserID))

	otherID := uuid.New()
	require.NoError(t, eventWrite.Save(ctx, otherID, heidi.UserID, "other", "", 100, 200))
	require.NoError(t, eventWrite.AddAttendee(ctx, otherID, grace.UserID))

	require.NoError(t, userWrite.Delete(ctx, grace.UserID))

	var events int
	require.NoError(t, db.Get(&events, "SELECT COUNT(*) FROM events"))
	assert.Equal(t, 1, events)

	var attendance int
	require.NoError(t, db.Get(&attendance, "SELECT COUNT(*) FROM event_attendees"))
	assert.Equal(t, 0, attendance)
}
