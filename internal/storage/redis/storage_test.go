package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/courtside/draftboard/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour
	cfg.DatasetTTL = 30 * time.Minute

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		ID:        "sess_abc",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.WithinDuration(session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionTTL() {
	session := &model.Session{ID: "sess_abc"}
	_ = s.storage.SaveSession(s.ctx, session)

	ttl := s.mini.TTL(sessionKey("sess_abc"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestDeleteSessionRemovesDraftState() {
	session := &model.Session{ID: "sess_abc"}
	_ = s.storage.SaveSession(s.ctx, session)

	state := model.NewDraftState("sess_abc")
	state.Mark("Nikola Jokic")
	_ = s.storage.SaveDraftState(s.ctx, state)

	err := s.storage.DeleteSession(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.storage.GetDraftState(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrDraftStateNotFound)
}

// Draft state tests

func (s *StorageSuite) TestSaveAndGetDraftState() {
	state := model.NewDraftState("sess_abc")
	state.Mark("Nikola Jokic")
	state.Mark("Luka Doncic")

	err := s.storage.SaveDraftState(s.ctx, state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDraftState(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(model.SessionID("sess_abc"), retrieved.SessionID)
	s.Equal([]string{"Luka Doncic", "Nikola Jokic"}, retrieved.Names())
}

func (s *StorageSuite) TestGetDraftStateNotFound() {
	_, err := s.storage.GetDraftState(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrDraftStateNotFound)
}

func (s *StorageSuite) TestDeleteDraftState() {
	state := model.NewDraftState("sess_abc")
	state.Mark("Nikola Jokic")
	_ = s.storage.SaveDraftState(s.ctx, state)

	err := s.storage.DeleteDraftState(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.storage.GetDraftState(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrDraftStateNotFound)
}

// Dataset tests

func (s *StorageSuite) TestSaveAndGetDataset() {
	dataset := &model.Dataset{
		Season:    2024,
		Source:    model.SourceLive,
		FetchedAt: time.Now().UTC(),
		Players: []model.PlayerRecord{
			{Name: "Nikola Jokic", Team: "DEN", Position: model.PositionCenter, FantasyScore: 58.9},
			{Name: "Luka Doncic", Team: "DAL", Position: model.PositionPointGuard, FantasyScore: 55.1},
		},
	}

	err := s.storage.SaveDataset(s.ctx, dataset)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDataset(s.ctx)
	s.Require().NoError(err)
	s.Equal(2024, retrieved.Season)
	s.Equal(model.SourceLive, retrieved.Source)
	s.Require().Len(retrieved.Players, 2)
	s.Equal("Nikola Jokic", retrieved.Players[0].Name)
}

func (s *StorageSuite) TestGetDatasetNotFound() {
	_, err := s.storage.GetDataset(s.ctx)
	s.ErrorIs(err, model.ErrDatasetNotFound)
}

func (s *StorageSuite) TestDatasetTTL() {
	_ = s.storage.SaveDataset(s.ctx, &model.Dataset{Season: 2024})

	ttl := s.mini.TTL(datasetKey())
	s.Equal(30*time.Minute, ttl)
}

func (s *StorageSuite) TestDatasetExpires() {
	_ = s.storage.SaveDataset(s.ctx, &model.Dataset{Season: 2024})

	s.mini.FastForward(time.Hour)

	_, err := s.storage.GetDataset(s.ctx)
	s.ErrorIs(err, model.ErrDatasetNotFound)
}
