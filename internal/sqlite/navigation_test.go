package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestNavigationRepository_SaveGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewNavigationRepository(db)

	_, err := repo.Get(ctx, "browser1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	sess := &navigation.Session{
		BrowserID: "browser1",
		Current:   "pipeline",
		History:   []string{"dashboard", "accounts"},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, sess))

	got, err := repo.Get(ctx, "browser1")
	require.NoError(t, err)
	require.Equal(t, "pipeline", got.Current)
	require.Equal(t, []string{"dashboard", "accounts"}, got.History)

	sess.Current = navigation.AccountDetailScreen
	sess.AccountID = "acc-1"
	sess.History = nil
	require.NoError(t, repo.Save(ctx, sess))

	got, err = repo.Get(ctx, "browser1")
	require.NoError(t, err)
	require.Equal(t, navigation.AccountDetailScreen, got.Current)
	require.Equal(t, "acc-1", got.AccountID)
	require.NotNil(t, got.History)
	require.Empty(t, got.History)
}

func TestNavigationRepository_SaveValidation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNavigationRepository(db)
	require.ErrorIs(t, repo.Save(context.Background(), &navigation.Session{}), repository.ErrInvalidInput)
}

func TestNavigationRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewNavigationRepository(db)

	sess, err := repo.Update(ctx, "browser1", func(current *navigation.Session) (*navigation.Session, error) {
		require.Nil(t, current)
		return &navigation.Session{BrowserID: "browser1", Current: "leads", History: []string{"dashboard"}}, nil
	})
	require.NoError(t, err)
	require.Equal(t, "leads", sess.Current)

	sess, err = repo.Update(ctx, "browser1", func(current *navigation.Session) (*navigation.Session, error) {
		require.Equal(t, "leads", current.Current)
		return nil, nil
	})
	require.NoError(t, err)
	require.Equal(t, "leads", sess.Current)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "browser1", func(current *navigation.Session) (*navigation.Session, error) {
		current.Current = "admin"
		return current, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "browser1")
	require.NoError(t, err)
	require.Equal(t, "leads", got.Current)
	require.Equal(t, []string{"dashboard"}, got.History)

	_, err = repo.Update(ctx, "", func(*navigation.Session) (*navigation.Session, error) { return nil, nil })
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestNavigationRepository_ConcurrentBack(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	svc := navigation.NewService(NewNavigationRepository(db), nil)

	const depth = 40
	screens := []string{"accounts", "pipeline"}
	for i := range depth {
		_, err := svc.Navigate(ctx, "browser1", screens[i%2], true)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, depth)
	for range depth {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Back(ctx, "browser1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	sess, err := svc.State(ctx, "browser1")
	require.NoError(t, err)
	require.Empty(t, sess.History)
	require.Equal(t, navigation.DefaultScreen, sess.Current)
}
