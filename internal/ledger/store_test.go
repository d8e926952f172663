package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.SnapshotInterface = (*repoMock)(nil)

func (m *repoMock) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.Snapshot), args.Bool(1), args.Error(2)
}

func (m *repoMock) Save(ctx context.Context, snapshot entities.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func loadedStore(t *testing.T, repo *repoMock) *Store {
	t.Helper()
	repo.On("Load", mock.Anything).Return(entities.Snapshot{}, false, nil).Once()
	s := New(zap.NewNop().Sugar(), repo, nil)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoadFallsBackToSeed(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Budgets, 11)
	require.Equal(t, int64(3000000), snap.Budgets["NK Osijek"])
	require.Empty(t, snap.Players)
	require.Empty(t, snap.Loans)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLoadUsesStoredSnapshot(t *testing.T) {
	repo := &repoMock{}
	stored := entities.NewSnapshot()
	stored.Budgets["NK Osijek"] = 1
	repo.On("Load", mock.Anything).Return(stored, true, nil)

	s := New(zap.NewNop().Sugar(), repo, nil)
	require.NoError(t, s.Load(context.Background()))

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, stored, snap)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
		want    error
	}{
		{"corrupt", entities.ErrCorruptSnapshot, entities.ErrCorruptSnapshot},
		{"io", errors.New("disk on fire"), entities.ErrPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMock{}
			repo.On("Load", mock.Anything).Return(entities.Snapshot{}, false, tt.loadErr)

			s := New(zap.NewNop().Sugar(), repo, nil)
			require.ErrorIs(t, s.Load(context.Background()), tt.want)

			_, err := s.Snapshot()
			require.ErrorIs(t, err, ErrNotLoaded)
		})
	}
}

func TestUpdateBeforeLoad(t *testing.T) {
	s := New(zap.NewNop().Sugar(), &repoMock{}, nil)
	err := s.Update(context.Background(), func(*Tx) error { return nil })
	require.ErrorIs(t, err, ErrNotLoaded)
}

func TestUpdateCommitsAfterPersist(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(snap entities.Snapshot) bool {
		return snap.Players["1"].Club == "NK Osijek"
	})).Return(nil).Once()

	err := s.Update(context.Background(), func(tx *Tx) error {
		return tx.PutPlayer(entities.Player{ID: "1", Club: "NK Osijek"})
	})
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Contains(t, snap.Players, "1")
	repo.AssertExpectations(t)
}

func TestUpdateRollsBackOnPersistFailure(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	err := s.Update(context.Background(), func(tx *Tx) error {
		if err := tx.SetBudget("NK Osijek", 0); err != nil {
			return err
		}
		return tx.PutPlayer(entities.Player{ID: "1", Club: "NK Osijek"})
	})
	require.ErrorIs(t, err, entities.ErrPersistence)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, int64(3000000), snap.Budgets["NK Osijek"])
	require.NotContains(t, snap.Players, "1")
}

func TestUpdateCallbackErrorSkipsPersist(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)

	boom := errors.New("boom")
	err := s.Update(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.SetBudget("NK Osijek", 1))
		return boom
	})
	require.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	snap, _ := s.Snapshot()
	require.Equal(t, int64(3000000), snap.Budgets["NK Osijek"])
}

func TestUpdateWithoutChangesSkipsPersist(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)

	err := s.Update(context.Background(), func(tx *Tx) error {
		tx.DeleteLoan("nobody")
		tx.DeletePlayer("nobody")
		return nil
	})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTxGuards(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)

	err := s.Update(context.Background(), func(tx *Tx) error {
		require.ErrorIs(t, tx.SetBudget("Ajax", 1), entities.ErrUnknownClub)
		require.ErrorIs(t, tx.SetBudget("NK Osijek", -1), entities.ErrInsufficientBudget)
		require.ErrorIs(t, tx.PutPlayer(entities.Player{ID: "1", Club: "Ajax"}), entities.ErrUnknownClub)
		require.ErrorIs(t, tx.PutLoan(entities.Loan{PlayerID: "1", OriginalClub: "NK Osijek", LoanedTo: "HNK Rijeka"}), entities.ErrPlayerNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestDeletePlayerRemovesLoan(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, s.Update(context.Background(), func(tx *Tx) error {
		if err := tx.PutPlayer(entities.Player{ID: "1", Club: "HNK Rijeka"}); err != nil {
			return err
		}
		return tx.PutLoan(entities.Loan{PlayerID: "1", OriginalClub: "NK Osijek", LoanedTo: "HNK Rijeka"})
	}))
	require.NoError(t, s.Update(context.Background(), func(tx *Tx) error {
		tx.DeletePlayer("1")
		return nil
	}))

	snap, _ := s.Snapshot()
	require.Empty(t, snap.Players)
	require.Empty(t, snap.Loans)
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	repo := &repoMock{}
	s := loadedStore(t, repo)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(context.Background(), func(tx *Tx) error {
				b, _ := tx.Budget("NK Osijek")
				return tx.SetBudget("NK Osijek", b+1)
			})
		}()
	}
	wg.Wait()

	snap, _ := s.Snapshot()
	require.Equal(t, int64(3000000+workers), snap.Budgets["NK Osijek"])
}

func TestSnapshotIsACopy(t *testing.T) {
	s := loadedStore(t, &repoMock{})

	snap, _ := s.Snapshot()
	snap.Budgets["NK Osijek"] = 0

	again, _ := s.Snapshot()
	require.Equal(t, int64(3000000), again.Budgets["NK Osijek"])
}
