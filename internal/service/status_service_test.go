package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type StatusServiceTestSuite struct {
	repoSuite
	mockPublisher *mocks.MockStatusPublisher
	now           time.Time
	service       *StatusService
}

func TestStatusServiceSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}

func (s *StatusServiceTestSuite) SetupTest() {
	s.setupMocks()
	s.mockPublisher = mocks.NewMockStatusPublisher(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewStatusService(s.mockUOW, s.mockPublisher, l)
	s.Require().NoError(err)

	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

// expectSetAIStatus мок репозитория, который записывает статус в listing и возвращает его.
func (s *StatusServiceTestSuite) expectSetAIStatus(listing *domain.Listing) {
	s.mockListingRepo.EXPECT().SetAIStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args repoargs.SetAIStatus) (*domain.Listing, error) {
			s.Equal(listing.ID, args.ListingID)
			listing.AIStatus = args.Status
			listing.AIMessage = args.Message
			listing.AIVerified = args.VerifiedAt != nil
			listing.AIVerifiedAt = args.VerifiedAt
			return listing, nil
		})
}

func (s *StatusServiceTestSuite) TestSetStatus_AcceptedThenGet() {
	listing := &domain.Listing{ID: uuid.New(), AIStatus: domain.AIStatusProcessing}

	s.expectSetAIStatus(listing)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, status domain.ListingStatus) error {
			s.Equal(listing.ID, status.ListingID)
			s.Equal(domain.AIStatusAccepted, status.Status)
			return nil
		})
	s.mockListingRepo.EXPECT().FindByID(gomock.Any(), listing.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*domain.Listing, error) {
			return listing, nil
		})

	_, err := s.service.SetStatus(s.T().Context(), listing.ID, domain.AIStatusAccepted, "ok")
	s.Require().NoError(err)

	status, err := s.service.GetStatus(s.T().Context(), listing.ID)
	s.Require().NoError(err)
	s.Equal(domain.AIStatusAccepted, status.Status)
	s.Equal("ok", status.Message)
	s.Require().NotNil(status.Timestamp)
	s.Equal(s.now, *status.Timestamp)
	s.True(listing.AIVerified)
}

func (s *StatusServiceTestSuite) TestSetStatus_NonAcceptedClearsVerification() {
	verifiedAt := s.now.Add(-time.Hour)
	listing := &domain.Listing{
		ID:           uuid.New(),
		AIStatus:     domain.AIStatusAccepted,
		AIVerified:   true,
		AIVerifiedAt: &verifiedAt,
	}

	s.expectSetAIStatus(listing)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	status, err := s.service.SetStatus(s.T().Context(), listing.ID, domain.AIStatusRejected, "")
	s.Require().NoError(err)
	s.Equal(domain.AIStatusRejected, status.Status)
	s.Equal(MessageRejected, status.Message)
	s.Nil(status.Timestamp)
	s.False(listing.AIVerified)
}

func (s *StatusServiceTestSuite) TestSetStatus_InvalidStatus() {
	_, err := s.service.SetStatus(s.T().Context(), uuid.New(), "approved", "")
	s.Require().ErrorIs(err, domain.ErrInvalidInput)
}

func (s *StatusServiceTestSuite) TestSetStatus_NotFound() {
	id := uuid.New()
	s.mockListingRepo.EXPECT().SetAIStatus(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.SetStatus(s.T().Context(), id, domain.AIStatusError, "boom")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *StatusServiceTestSuite) TestSetStatus_PublishFailureIgnored() {
	listing := &domain.Listing{ID: uuid.New()}
	s.expectSetAIStatus(listing)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := s.service.SetStatus(s.T().Context(), listing.ID, domain.AIStatusProcessing, "")
	s.Require().NoError(err)
}

func (s *StatusServiceTestSuite) TestGetStatus_Defaults() {
	cases := []struct {
		aiStatus    domain.AIStatusType
		wantStatus  domain.AIStatusType
		wantMessage string
	}{
		{aiStatus: "", wantStatus: domain.AIStatusPending, wantMessage: MessagePending},
		{aiStatus: domain.AIStatusPending, wantStatus: domain.AIStatusPending, wantMessage: MessagePending},
		{aiStatus: domain.AIStatusProcessing, wantStatus: domain.AIStatusProcessing, wantMessage: MessageProcessing},
		{aiStatus: domain.AIStatusAccepted, wantStatus: domain.AIStatusAccepted, wantMessage: MessageAccepted},
		{aiStatus: domain.AIStatusRejected, wantStatus: domain.AIStatusRejected, wantMessage: MessageRejected},
		{aiStatus: domain.AIStatusError, wantStatus: domain.AIStatusError, wantMessage: MessageError},
	}

	for _, tc := range cases {
		s.Run(string(tc.wantStatus)+"/"+string(tc.aiStatus), func() {
			listing := &domain.Listing{ID: uuid.New(), AIStatus: tc.aiStatus}
			s.mockListingRepo.EXPECT().FindByID(gomock.Any(), listing.ID).Return(listing, nil)

			status, err := s.service.GetStatus(s.T().Context(), listing.ID)
			s.Require().NoError(err)
			s.Equal(listing.ID, status.ListingID)
			s.Equal(tc.wantStatus, status.Status)
			s.Equal(tc.wantMessage, status.Message)
			s.Nil(status.Timestamp)
		})
	}
}

func (s *StatusServiceTestSuite) TestGetStatus_NotFound() {
	id := uuid.New()
	s.mockListingRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.GetStatus(s.T().Context(), id)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *StatusServiceTestSuite) TestExpireStale() {
	expired := []domain.Listing{
		{ID: uuid.New(), AIStatus: domain.AIStatusError, AIMessage: MessageTimedOut},
		{ID: uuid.New(), AIStatus: domain.AIStatusError, AIMessage: MessageTimedOut},
	}

	s.mockListingRepo.EXPECT().
		MarkStaleProcessing(gomock.Any(), s.now.Add(-10*time.Minute), MessageTimedOut).
		Return(expired, nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, status domain.ListingStatus) error {
			s.Equal(domain.AIStatusError, status.Status)
			s.Equal(MessageTimedOut, status.Message)
			return nil
		}).Times(len(expired))

	count, err := s.service.ExpireStale(s.T().Context(), 10*time.Minute)
	s.Require().NoError(err)
	s.Equal(len(expired), count)
}
