package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/courtside/draftboard/internal/dependencies/mocks"
	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateSucceeds() {
	session, err := s.service.Create(s.ctx)
	s.Require().NoError(err)

	s.True(strings.HasPrefix(string(session.ID), "sess_"))
	s.Equal(s.clock.CurrentTime, session.CreatedAt)
	s.Equal(s.clock.CurrentTime.Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestCreatePersistsSession() {
	session, _ := s.service.Create(s.ctx)

	stored, err := s.storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, stored.ID)
}

func (s *ServiceSuite) TestCreateGeneratesUniqueIDs() {
	first, _ := s.service.Create(s.ctx)
	second, _ := s.service.Create(s.ctx)
	s.NotEqual(first.ID, second.ID)
}

func (s *ServiceSuite) TestValidateSucceeds() {
	session, _ := s.service.Create(s.ctx)

	validated, err := s.service.Validate(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, validated.ID)
}

func (s *ServiceSuite) TestValidateUnknownSession() {
	_, err := s.service.Validate(s.ctx, "sess_unknown")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateExpiredSession() {
	session, _ := s.service.Create(s.ctx)

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.Validate(s.ctx, session.ID)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestExpiredSessionIsReaped() {
	session, _ := s.service.Create(s.ctx)
	state := model.NewDraftState(session.ID)
	state.Mark("Nikola Jokic")
	s.Require().NoError(s.storage.SaveDraftState(s.ctx, state))

	s.clock.Advance(25 * time.Hour)
	_, _ = s.service.Validate(s.ctx, session.ID)

	_, err := s.storage.GetSession(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.storage.GetDraftState(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrDraftStateNotFound)
}

func (s *ServiceSuite) TestInvalidate() {
	session, _ := s.service.Create(s.ctx)

	err := s.service.Invalidate(s.ctx, session.ID)
	s.Require().NoError(err)

	_, err = s.service.Validate(s.ctx, session.ID)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCustomDuration() {
	service := New(s.storage, s.clock, Config{SessionDuration: time.Hour})

	session, _ := service.Create(s.ctx)
	s.Equal(s.clock.CurrentTime.Add(time.Hour), session.ExpiresAt)

	s.clock.Advance(2 * time.Hour)
	_, err := service.Validate(s.ctx, session.ID)
	s.ErrorIs(err, ErrInvalidSession)
}
