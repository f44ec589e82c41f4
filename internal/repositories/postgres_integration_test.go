package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/cockroachdb/cockroach-go/v2/testserver"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipstream/backend/internal/models"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	server, err := testserver.NewTestServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "start cockroach test server: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, server.PGURL().String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to cockroach test server: %v\n", err)
		server.Stop()
		os.Exit(1)
	}

	if err := applyMigrations(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "apply migrations: %v\n", err)
		pool.Close()
		server.Stop()
		os.Exit(1)
	}

	testPool = pool

	code := m.Run()

	pool.Close()
	server.Stop()

	os.Exit(code)
}

func TestPostgresUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	repo := NewPostgresUserRepository(testPool)

	user := models.User{
		ID:           uuid.NewString(),
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "secret-hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	dup := models.User{
		ID:           uuid.NewString(),
		Name:         "Ann Again",
		Email:        "ANN@EXAMPLE.COM",
		PasswordHash: "another-hash",
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.Create(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict creating duplicate email with different case, got %v", err)
	}

	fetched, err := repo.FindByEmail(ctx, "Ann@Example.Com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}

	if fetched.ID != user.ID || fetched.Name != user.Name || fetched.PasswordHash != user.PasswordHash {
		t.Fatalf("unexpected user fetched: %+v", fetched)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}

	if byID.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, byID.Email)
	}

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing email, got %v", err)
	}

	if _, err := repo.FindByID(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestPostgresVideoRepository_FindActive(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	repo := NewPostgresVideoRepository(testPool)
	base := time.Now().UTC().Add(-time.Hour)

	first := createTestVideo(t, "First Lecture", true, base)
	second := createTestVideo(t, "Second Lecture", true, base.Add(time.Minute))
	createTestVideo(t, "Third Lecture", true, base.Add(2*time.Minute))
	createTestVideo(t, "Retired Lecture", false, base.Add(-time.Minute))

	videos, err := repo.FindActive(ctx, 2)
	if err != nil {
		t.Fatalf("find active videos: %v", err)
	}

	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}

	if videos[0].ID != first.ID || videos[1].ID != second.ID {
		t.Fatalf("unexpected catalog order: %+v", videos)
	}

	for _, video := range videos {
		if !video.Active {
			t.Fatalf("inactive video %s surfaced in active listing", video.ID)
		}
	}
}

func TestPostgresVideoRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	repo := NewPostgresVideoRepository(testPool)
	inactive := createTestVideo(t, "Retired Lecture", false, time.Now().UTC())

	fetched, err := repo.FindByID(ctx, inactive.ID)
	if err != nil {
		t.Fatalf("find video by id: %v", err)
	}

	if fetched.Active {
		t.Fatal("expected inactive video to come back with Active=false")
	}

	if fetched.ProviderID != inactive.ProviderID {
		t.Fatalf("expected provider id %q, got %q", inactive.ProviderID, fetched.ProviderID)
	}

	if _, err := repo.FindByID(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing video, got %v", err)
	}
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrationsDir := filepath.Join("..", "..", "migrations")
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(migrationsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		if _, err := pool.Exec(ctx, string(contents)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func resetDatabase(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	conn, err := testPool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire connection: %v", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "TRUNCATE TABLE videos, users CASCADE"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func createTestVideo(t *testing.T, title string, active bool, createdAt time.Time) models.Video {
	t.Helper()
	video := models.Video{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  "test description",
		ThumbnailURL: "https://example.com/thumb.jpg",
		ProviderID:   uuid.NewString()[:11],
		Active:       active,
		CreatedAt:    createdAt,
	}

	conn, err := testPool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire connection: %v", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(context.Background(), `
        INSERT INTO videos (id, title, description, thumbnail_url, provider_id, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, video.ID, video.Title, video.Description, video.ThumbnailURL, video.ProviderID, video.Active, video.CreatedAt); err != nil {
		t.Fatalf("insert test video: %v", err)
	}

	return video
}
