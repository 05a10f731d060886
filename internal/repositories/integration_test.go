//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-event-listing/internal/database"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := database.Config{
		Host:     host,
		Port:     port.Int(),
		User:     "postgres",
		Password: "password",
		Database: "testdb",
	}

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = database.Connect(ctx, cfg)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(cfg))

	return db
}

func createTestUser(t *testing.T, db *sqlx.DB, email string, role models.Role) *models.User {
	t.Helper()

	u := &models.User{FirstName: "Test", LastName: "User", Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, NewUserWriteRepository(db, nil).Create(context.Background(), u))
	return u
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db, nil)
	hostsR, hostsW := NewHostReadRepository(db), NewHostWriteRepository(db, nil)
	eventsR, eventsW := NewEventReadRepository(db), NewEventWriteRepository(db, nil)
	saved := NewSavedEventRepository(db, nil)

	hostA := createTestUser(t, db, "a@example.com", models.RoleHost)
	member := createTestUser(t, db, "m@example.com", models.RoleMember)

	t.Run("duplicate email", func(t *testing.T) {
		err := users.Create(ctx, &models.User{FirstName: "X", LastName: "Y", Email: "a@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("email is unique and matched regardless of case", func(t *testing.T) {
		err := users.Create(ctx, &models.User{FirstName: "X", LastName: "Y", Email: "A@Example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, ErrDuplicateKey)

		got, err := NewUserReadRepository(db).GetByEmail(ctx, "M@EXAMPLE.COM")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, member.ID, got.ID)
	})

	t.Run("host created once", func(t *testing.T) {
		created, err := hostsW.Create(ctx, &models.Host{ID: hostA.ID})
		require.NoError(t, err)
		assert.True(t, created)

		created, err = hostsW.Create(ctx, &models.Host{ID: hostA.ID})
		require.NoError(t, err)
		assert.False(t, created)

		var n int
		require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM hosts WHERE id = $1`, hostA.ID))
		assert.Equal(t, 1, n)
	})

	event := sampleEvent(0, hostA.ID)

	t.Run("add and get event", func(t *testing.T) {
		require.NoError(t, eventsW.Add(ctx, &event))
		assert.NotZero(t, event.ID)

		got, err := eventsR.GetByID(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 299.99, got.Price)
		assert.True(t, event.StartDateTime.Equal(got.StartDateTime))
	})

	t.Run("update keeps owner and ignores missing ids", func(t *testing.T) {
		changed := event
		changed.Price = 349.99
		changed.HostID = member.ID
		require.NoError(t, eventsW.Update(ctx, &changed))

		got, err := eventsR.GetByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 349.99, got.Price)
		assert.Equal(t, hostA.ID, got.HostID)

		missing := event
		missing.ID = event.ID + 1000
		assert.NoError(t, eventsW.Update(ctx, &missing))
	})

	t.Run("search", func(t *testing.T) {
		all, err := eventsR.GetAll(ctx)
		require.NoError(t, err)

		unfiltered, err := eventsR.Search(ctx, models.EventFilter{})
		require.NoError(t, err)
		assert.Equal(t, all, unfiltered)

		byLocation, err := eventsR.Search(ctx, models.EventFilter{Query: "NYC"})
		require.NoError(t, err)
		assert.Len(t, byLocation, 1)

		tooCheap := 100.0
		none, err := eventsR.Search(ctx, models.EventFilter{Query: "Conf", MaxPrice: &tooCheap})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("host loads events", func(t *testing.T) {
		host, err := hostsR.GetByID(ctx, hostA.ID)
		require.NoError(t, err)
		require.NotNil(t, host)
		assert.Len(t, host.Events, 1)
	})

	t.Run("saved events and cascade", func(t *testing.T) {
		require.NoError(t, saved.Add(ctx, member.ID, event.ID))
		require.NoError(t, saved.Add(ctx, member.ID, event.ID))

		list, err := saved.ListByUser(ctx, member.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		require.NoError(t, eventsW.Delete(ctx, event.ID))

		list, err = saved.ListByUser(ctx, member.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		assert.NoError(t, eventsW.Delete(ctx, event.ID))
	})
}

func TestEventReadRepository_SearchPostgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	host := createTestUser(t, db, "festival@example.com", models.RoleHost)
	_, err := NewHostWriteRepository(db, nil).Create(ctx, &models.Host{ID: host.ID})
	require.NoError(t, err)

	day := func(month time.Month, d int) time.Time { return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC) }
	newEvent := func(title, location string, start time.Time, price float64) models.Event {
		return models.Event{
			Title:         title,
			Location:      location,
			StartDateTime: start,
			EndDateTime:   start.Add(6 * time.Hour),
			Price:         price,
			HostID:        host.ID,
		}
	}

	writer := NewEventWriteRepository(db, nil)
	summer := newEvent("Summer Music Festival", "Austin", day(time.July, 1), 150)
	winter := newEvent("Winter Festival", "Denver", day(time.December, 10), 80)
	tech := newEvent("Tech Conf", "Festival Hall", day(time.July, 15), 250)
	for _, e := range []*models.Event{&summer, &winter, &tech} {
		require.NoError(t, writer.Add(ctx, e))
	}

	ptrTime := func(v time.Time) *time.Time { return &v }
	ptrPrice := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		filter models.EventFilter
		want   []int64
	}{
		{
			name:   "no filters returns everything",
			filter: models.EventFilter{},
			want:   []int64{summer.ID, winter.ID, tech.ID},
		},
		{
			name: "all filters combined",
			filter: models.EventFilter{
				Query:    "Festival",
				From:     ptrTime(day(time.July, 1)),
				To:       ptrTime(day(time.July, 31)),
				MinPrice: ptrPrice(100),
				MaxPrice: ptrPrice(200),
			},
			want: []int64{summer.ID},
		},
		{
			name:   "query matches title or location",
			filter: models.EventFilter{Query: "Festival"},
			want:   []int64{summer.ID, winter.ID, tech.ID},
		},
		{
			name:   "query matches location only",
			filter: models.EventFilter{Query: "Festival Hall"},
			want:   []int64{tech.ID},
		},
		{
			name:   "min price is inclusive lower bound",
			filter: models.EventFilter{MinPrice: ptrPrice(150)},
			want:   []int64{summer.ID, tech.ID},
		},
		{
			name:   "max price alone",
			filter: models.EventFilter{MaxPrice: ptrPrice(200)},
			want:   []int64{summer.ID, winter.ID},
		},
		{
			name:   "min and max price intersect",
			filter: models.EventFilter{MinPrice: ptrPrice(100), MaxPrice: ptrPrice(200)},
			want:   []int64{summer.ID},
		},
		{
			name:   "equal price bounds are inclusive",
			filter: models.EventFilter{MinPrice: ptrPrice(250), MaxPrice: ptrPrice(250)},
			want:   []int64{tech.ID},
		},
		{
			name:   "from and to are inclusive",
			filter: models.EventFilter{From: ptrTime(day(time.July, 1)), To: ptrTime(day(time.July, 15))},
			want:   []int64{summer.ID, tech.ID},
		},
		{
			name:   "from after every start",
			filter: models.EventFilter{From: ptrTime(day(time.December, 11))},
			want:   []int64{},
		},
	}

	repo := NewEventReadRepository(db)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
