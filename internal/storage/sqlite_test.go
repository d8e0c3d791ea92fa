package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	path  string
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "results.db")
	store, err := Open(s.path)
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreSuite) save(gameID, winner string, shots, hits, score int) Result {
	r, err := s.store.SaveResult(Result{
		GameID: gameID,
		Player: "tester",
		Winner: winner,
		Shots:  shots,
		Hits:   hits,
		Score:  score,
	})
	s.Require().NoError(err)
	return r
}

func (s *StoreSuite) TestOpenCreatesFile() {
	_, err := os.Stat(s.path)
	s.NoError(err)
}

func (s *StoreSuite) TestSaveAssignsIDs() {
	r := s.save("battleship", WinnerPlayer, 60, 17, 1400)

	s.Positive(r.ID)
	_, err := uuid.Parse(r.MatchID)
	s.NoError(err, "match ID should be a UUID")

	got, err := s.store.ResultByMatchID(r.MatchID)
	s.Require().NoError(err)
	s.Equal(r.ID, got.ID)
	s.Equal("tester", got.Player)
	s.Equal(WinnerPlayer, got.Winner)
	s.Equal(60, got.Shots)
	s.Equal(17, got.Hits)
	s.Equal(1400, got.Score)
	s.True(got.Won())
	s.False(got.CreatedAt.IsZero())
}

func (s *StoreSuite) TestSaveKeepsGivenMatchID() {
	id := uuid.NewString()
	r, err := s.store.SaveResult(Result{MatchID: id, GameID: "battleship", Winner: WinnerOpponent})
	s.Require().NoError(err)
	s.Equal(id, r.MatchID)

	_, err = s.store.SaveResult(Result{MatchID: id, GameID: "battleship", Winner: WinnerOpponent})
	s.Error(err, "match IDs are unique")
}

func (s *StoreSuite) TestSaveRejectsUnknownWinner() {
	_, err := s.store.SaveResult(Result{GameID: "battleship", Winner: "draw"})
	s.Error(err)
}

func (s *StoreSuite) TestResultByMatchIDNotFound() {
	_, err := s.store.ResultByMatchID(uuid.NewString())
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestTopResults() {
	s.save("battleship", WinnerPlayer, 50, 17, 1500)
	s.save("battleship", WinnerOpponent, 70, 10, 100)
	s.save("battleship", WinnerPlayer, 40, 17, 1600)
	s.save("battleship_quick", WinnerPlayer, 30, 17, 1700)

	top, err := s.store.TopResults("battleship", 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(1600, top[0].Score)
	s.Equal(1500, top[1].Score)
	s.Equal(100, top[2].Score)

	limited, err := s.store.TopResults("battleship", 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *StoreSuite) TestRecentResults() {
	first := s.save("battleship", WinnerPlayer, 50, 17, 1500)
	second := s.save("battleship_quick", WinnerOpponent, 70, 10, 100)
	third := s.save("battleship", WinnerOpponent, 80, 12, 120)

	all, err := s.store.RecentResults("", 10)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]int64{third.ID, second.ID, first.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	classic, err := s.store.RecentResults("battleship", 1)
	s.Require().NoError(err)
	s.Require().Len(classic, 1)
	s.Equal(third.ID, classic[0].ID)
}

func (s *StoreSuite) TestHighScore() {
	high, err := s.store.HighScore("battleship")
	s.Require().NoError(err)
	s.Zero(high)

	s.save("battleship", WinnerPlayer, 50, 17, 1500)
	s.save("battleship", WinnerOpponent, 70, 10, 100)

	high, err = s.store.HighScore("battleship")
	s.Require().NoError(err)
	s.Equal(1500, high)
}

func (s *StoreSuite) TestStats() {
	empty, err := s.store.Stats("battleship")
	s.Require().NoError(err)
	s.Zero(empty.Played)
	s.Zero(empty.BestShots)

	s.save("battleship", WinnerPlayer, 50, 17, 1500)
	s.save("battleship", WinnerPlayer, 45, 17, 1550)
	s.save("battleship", WinnerOpponent, 30, 9, 90)

	stats, err := s.store.Stats("battleship")
	s.Require().NoError(err)
	s.Equal(3, stats.Played)
	s.Equal(2, stats.Wins)
	s.Equal(1, stats.Losses())
	s.Equal(1550, stats.HighScore)
	s.Equal(45, stats.BestShots, "losses do not count toward best shots")
	s.False(stats.LastPlayed.IsZero())

	all, err := s.store.AllStats()
	s.Require().NoError(err)
	s.Require().Contains(all, "battleship")
	s.Equal(stats.Played, all["battleship"].Played)
	s.Equal(stats.BestShots, all["battleship"].BestShots)
}

func (s *StoreSuite) TestClearResults() {
	s.save("battleship", WinnerPlayer, 50, 17, 1500)
	s.save("battleship_quick", WinnerPlayer, 50, 17, 1500)

	s.Require().NoError(s.store.ClearResults("battleship"))

	classic, err := s.store.TopResults("battleship", 10)
	s.Require().NoError(err)
	s.Empty(classic)

	quick, err := s.store.TopResults("battleship_quick", 10)
	s.Require().NoError(err)
	s.Len(quick, 1)
}

func (s *StoreSuite) TestReopenKeepsResults() {
	r := s.save("battleship", WinnerPlayer, 50, 17, 1500)
	s.Require().NoError(s.store.Close())

	store, err := Open(s.path)
	s.Require().NoError(err)
	s.store = store

	got, err := s.store.ResultByMatchID(r.MatchID)
	s.Require().NoError(err)
	s.Equal(1500, got.Score)
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestResultAccuracy(t *testing.T) {
	assert.Zero(t, Result{}.Accuracy())
	assert.InDelta(t, 0.25, Result{Shots: 40, Hits: 10}.Accuracy(), 1e-9)
}
