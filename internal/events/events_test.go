package events

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LocalBusTestSuite struct {
	suite.Suite
	bus *LocalBus
}

func TestLocalBusSuite(t *testing.T) {
	suite.Run(t, new(LocalBusTestSuite))
}

func (s *LocalBusTestSuite) SetupTest() {
	s.bus = NewLocalBus()
}

func (s *LocalBusTestSuite) receive(ch <-chan domain.ListingStatus) (domain.ListingStatus, bool) {
	select {
	case status, ok := <-ch:
		return status, ok
	case <-time.After(time.Second):
		s.FailNow("no event received")
		return domain.ListingStatus{}, false
	}
}

func (s *LocalBusTestSuite) TestPublishToSubscribers() {
	listingID := uuid.New()

	first, cancelFirst, err := s.bus.Subscribe(s.T().Context(), listingID)
	s.Require().NoError(err)
	defer cancelFirst()
	second, cancelSecond, err := s.bus.Subscribe(s.T().Context(), listingID)
	s.Require().NoError(err)
	defer cancelSecond()
	other, cancelOther, err := s.bus.Subscribe(s.T().Context(), uuid.New())
	s.Require().NoError(err)
	defer cancelOther()

	event := domain.ListingStatus{ListingID: listingID, Status: domain.AIStatusAccepted, Message: "ok"}
	s.Require().NoError(s.bus.Publish(s.T().Context(), event))

	got, ok := s.receive(first)
	s.True(ok)
	s.Equal(event, got)
	got, ok = s.receive(second)
	s.True(ok)
	s.Equal(event, got)

	select {
	case <-other:
		s.Fail("event for another listing delivered")
	default:
	}
}

func (s *LocalBusTestSuite) TestCancelClosesChannel() {
	listingID := uuid.New()
	ch, cancel, err := s.bus.Subscribe(s.T().Context(), listingID)
	s.Require().NoError(err)

	cancel()
	cancel() // повторный вызов безопасен

	_, ok := s.receive(ch)
	s.False(ok)
	s.Require().NoError(s.bus.Publish(s.T().Context(), domain.ListingStatus{ListingID: listingID}))
}

func (s *LocalBusTestSuite) TestContextCancelClosesChannel() {
	ctx, cancel := context.WithCancel(s.T().Context())
	ch, _, err := s.bus.Subscribe(ctx, uuid.New())
	s.Require().NoError(err)

	cancel()
	_, ok := s.receive(ch)
	s.False(ok)
}

func (s *LocalBusTestSuite) TestSlowSubscriberDoesNotBlock() {
	listingID := uuid.New()
	_, cancel, err := s.bus.Subscribe(s.T().Context(), listingID)
	s.Require().NoError(err)
	defer cancel()

	for range subscriberBuffer * 2 {
		s.Require().NoError(s.bus.Publish(s.T().Context(), domain.ListingStatus{ListingID: listingID}))
	}
}

func (s *LocalBusTestSuite) TestTerminalEventSurvivesFullBuffer() {
	listingID := uuid.New()
	ch, cancel, err := s.bus.Subscribe(s.T().Context(), listingID)
	s.Require().NoError(err)
	defer cancel()

	for range subscriberBuffer {
		s.Require().NoError(s.bus.Publish(s.T().Context(),
			domain.ListingStatus{ListingID: listingID, Status: domain.AIStatusProcessing}))
	}
	s.Require().NoError(s.bus.Publish(s.T().Context(),
		domain.ListingStatus{ListingID: listingID, Status: domain.AIStatusRejected}))

	var last domain.ListingStatus
	for range subscriberBuffer {
		got, ok := s.receive(ch)
		s.Require().True(ok)
		last = got
	}
	s.Equal(domain.AIStatusRejected, last.Status)
}

func (s *LocalBusTestSuite) TestClose() {
	ch, _, err := s.bus.Subscribe(s.T().Context(), uuid.New())
	s.Require().NoError(err)

	s.Require().NoError(s.bus.Close())
	_, ok := s.receive(ch)
	s.False(ok)
}

func TestRedisBusPublish(t *testing.T) {
	client, mock := redismock.NewClientMock()
	l := logrus.New()
	l.SetOutput(io.Discard)
	bus := NewRedisBus(client, l)

	now := time.Now().UTC()
	event := domain.ListingStatus{
		ListingID: uuid.New(),
		Status:    domain.AIStatusAccepted,
		Message:   "ok",
		Timestamp: &now,
	}
	payload, err := encodeStatus(event)
	if err != nil {
		t.Fatal(err)
	}

	mock.ExpectPublish(channelPrefix+event.ListingID.String(), payload).SetVal(1)
	mock.ExpectPublish(channelPrefix+event.ListingID.String(), payload).SetErr(errors.New("connection refused"))

	if err = bus.Publish(t.Context(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = bus.Publish(t.Context(), event); err == nil {
		t.Fatal("expected publish error")
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
