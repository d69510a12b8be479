package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MessagePending    = "Verification pending"
	MessageProcessing = "AI is analyzing your product..."
	MessageAccepted   = "Product verified successfully!"
	MessageRejected   = "Product does not match the description."
	MessageError      = "An error occurred during verification."
	MessageTimedOut   = "Verification timed out"
)

type StatusService struct {
	listingRepo ListingRepository
	publisher   StatusPublisher
	logger      *logrus.Entry
	now         func() time.Time
}

func NewStatusService(u uow.UOW, publisher StatusPublisher, l *logrus.Logger) (*StatusService, error) {
	listingRepo, err := uow.GetRepositoryAs[ListingRepository](u, uow.RepositoryName(repoargs.ListingRepoName))
	if err != nil {
		return nil, err
	}
	return &StatusService{
		listingRepo: listingRepo,
		publisher:   publisher,
		logger: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "status",
		}),
		now: time.Now,
	}, nil
}

// SetStatus записывает вердикт AI для лота. Для accepted проставляет время верификации, для остальных
// статусов сбрасывает его. Переходы не валидируются: вызывающая сторона доверенная.
//
// После записи статус публикуется подписчикам. Ошибка публикации только логируется.
func (s *StatusService) SetStatus(
	ctx context.Context,
	listingID uuid.UUID,
	status domain.AIStatusType,
	message string,
) (*domain.ListingStatus, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("setting status: %w", domain.NewValidationError("status", "unknown status"))
	}

	var verifiedAt *time.Time
	if status == domain.AIStatusAccepted {
		now := s.now()
		verifiedAt = &now
	}

	listing, err := s.listingRepo.SetAIStatus(ctx, repoargs.SetAIStatus{
		ListingID:  listingID,
		Status:     status,
		Message:    message,
		VerifiedAt: verifiedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("setting status of listing %s: %w", listingID, err)
	}

	result := StatusOf(listing)
	s.publish(ctx, result)
	return &result, nil
}

// GetStatus возвращает статус верификации лота. Отсутствие данных AI трактуется как pending.
func (s *StatusService) GetStatus(ctx context.Context, listingID uuid.UUID) (*domain.ListingStatus, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("getting status of listing %s: %w", listingID, err)
	}
	result := StatusOf(listing)
	return &result, nil
}

// ExpireStale переводит в error лоты, верификация которых висит в processing дольше olderThan.
// Возвращает количество переведенных лотов.
func (s *StatusService) ExpireStale(ctx context.Context, olderThan time.Duration) (int, error) {
	listings, err := s.listingRepo.MarkStaleProcessing(ctx, s.now().Add(-olderThan), MessageTimedOut)
	if err != nil {
		return 0, fmt.Errorf("expiring stale verifications: %w", err)
	}
	for i := range listings {
		s.publish(ctx, StatusOf(&listings[i]))
	}
	return len(listings), nil
}

func (s *StatusService) publish(ctx context.Context, status domain.ListingStatus) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, status); err != nil {
		s.logger.WithError(err).
			WithField("listingID", status.ListingID).
			Warn("failed to publish status event")
	}
}

// StatusOf собирает представление статуса из лота, подставляя сообщение по умолчанию если AI его не оставил.
func StatusOf(listing *domain.Listing) domain.ListingStatus {
	status := listing.AIStatus
	if !status.IsValid() {
		status = domain.AIStatusPending
	}

	message := listing.AIMessage
	if message == "" {
		message = defaultMessage(status)
	}

	return domain.ListingStatus{
		ListingID: listing.ID,
		Status:    status,
		Message:   message,
		Timestamp: listing.AIVerifiedAt,
	}
}

func defaultMessage(status domain.AIStatusType) string {
	switch status {
	case domain.AIStatusAccepted:
		return MessageAccepted
	case domain.AIStatusRejected:
		return MessageRejected
	case domain.AIStatusError:
		return MessageError
	case domain.AIStatusProcessing:
		return MessageProcessing
	default:
		return MessagePending
	}
}
