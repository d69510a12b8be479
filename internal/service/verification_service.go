package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MaxVideoSize максимальный размер видео, принимаемого на проверку.
const MaxVideoSize int64 = 50 << 20

const DefaultVerifierTimeout = 45 * time.Second

const (
	verdictAcceptedMessage    = "Product verified successfully! Your product matches the description."
	verdictRejectedMessage    = "Product does not match the description. Please try again."
	verdictTimeoutMessage     = "Request timed out. Please ensure the AI server is running and try again."
	verdictUnavailableMessage = "Cannot connect to AI server. Please ensure the server is running."
	verdictStatusCodeMessage  = "AI server returned error %d. Please check your video format and description."
	verdictUnexpectedMessage  = "Unexpected AI response format. Please try again."
	verdictUnknownMessage     = "An unexpected error occurred during verification. Please try again."
)

type VerificationService struct {
	uow      uow.UOW
	status   *StatusService
	verifier VerifierClient
	timeout  time.Duration
	logger   *logrus.Entry
}

func NewVerificationService(
	u uow.UOW,
	status *StatusService,
	verifier VerifierClient,
	timeout time.Duration,
	l *logrus.Logger,
) *VerificationService {
	if timeout <= 0 {
		timeout = DefaultVerifierTimeout
	}
	return &VerificationService{
		uow:      u,
		status:   status,
		verifier: verifier,
		timeout:  timeout,
		logger: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "verification",
		}),
	}
}

type VerifyArgs struct {
	ListingID   uuid.UUID
	SellerID    uuid.UUID
	Video       io.Reader
	FileName    string
	ContentType string
	Size        int64
	Description string
}

func (a VerifyArgs) validate() error {
	switch {
	case strings.TrimSpace(a.Description) == "":
		return domain.NewValidationError("description", "must not be blank")
	case !strings.HasPrefix(a.ContentType, "video/"):
		return domain.NewValidationError("video", "must be a video file")
	case a.Size <= 0 || a.Size > MaxVideoSize:
		return domain.NewValidationError("video", "size must be between 1 byte and 50MB")
	}
	return nil
}

type VerificationResult struct {
	Status            domain.AIStatusType
	Message           string
	AuctionRegistered bool
}

// Verify отправляет видео и описание лота на AI проверку и записывает вердикт.
//
// Алгоритм работы:
//  1. Проверяет аргументы, владельца лота и что проверка еще не запускалась (domain.ErrAlreadyVerified).
//  2. Переводит лот в processing.
//  3. Вызывает внешний сервис с таймаутом. Недоступность сервиса и неожиданный ответ превращаются в вердикт error.
//  4. Записывает вердикт, лот никогда не остается в processing.
//  5. Для accepted регистрирует аукцион во внешнем сервисе, ошибка только логируется.
//
// Ошибки внешнего сервиса вызывающему не возвращаются. После перевода в processing отмена ctx
// не прерывает проверку.
func (v *VerificationService) Verify(ctx context.Context, args VerifyArgs) (*VerificationResult, error) {
	if err := args.validate(); err != nil {
		return nil, fmt.Errorf("verifying listing: %w", err)
	}

	video, readErr := io.ReadAll(io.LimitReader(args.Video, MaxVideoSize+1))
	if readErr != nil {
		return nil, fmt.Errorf("reading video: %w", domain.NewValidationError("video", readErr.Error()))
	}
	if int64(len(video)) > MaxVideoSize {
		return nil, fmt.Errorf("verifying listing: %w",
			domain.NewValidationError("video", "size must be between 1 byte and 50MB"))
	}

	processing, err := v.startProcessing(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("verifying listing %s: %w", args.ListingID, err)
	}
	v.status.publish(ctx, StatusOf(processing))

	// дальше работаем независимо от отмены запроса.
	ctx = context.WithoutCancel(ctx)
	payload := domain.VerificationPayload{
		Video:       video,
		FileName:    args.FileName,
		ContentType: args.ContentType,
		Description: args.Description,
	}

	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	verdict, predictErr := v.verifier.Predict(callCtx, payload)
	cancel()

	status, message := resolveVerdict(verdict, predictErr)
	if predictErr != nil {
		v.logger.WithError(predictErr).
			WithField("listingID", args.ListingID).
			Warn("verification service call failed")
	}

	if _, err = v.status.SetStatus(ctx, args.ListingID, status, message); err != nil {
		return nil, fmt.Errorf("verifying listing %s: %w", args.ListingID, err)
	}

	result := VerificationResult{Status: status, Message: message}
	if status == domain.AIStatusAccepted {
		result.AuctionRegistered = v.registerAuction(ctx, args.ListingID, payload)
	}
	return &result, nil
}

// startProcessing под блокировкой строки проверяет, что лот принадлежит продавцу и ожидает проверки,
// и переводит его в processing.
func (v *VerificationService) startProcessing(ctx context.Context, args VerifyArgs) (*domain.Listing, error) {
	var listing *domain.Listing
	txErr := v.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		listingRepo, err := uow.GetAs[ListingRepository](tx, uow.RepositoryName(repoargs.ListingRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		current, err := listingRepo.FindByIDForUpdate(c, args.ListingID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if current.SellerID != args.SellerID {
			return domain.ErrOwnerConflict
		}
		if current.AIStatus != domain.AIStatusPending {
			return domain.ErrAlreadyVerified
		}

		listing, err = listingRepo.SetAIStatus(c, repoargs.SetAIStatus{
			ListingID: args.ListingID,
			Status:    domain.AIStatusProcessing,
			Message:   MessageProcessing,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return listing, nil
}

func (v *VerificationService) registerAuction(
	ctx context.Context,
	listingID uuid.UUID,
	payload domain.VerificationPayload,
) bool {
	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	if err := v.verifier.RegisterAuction(callCtx, payload); err != nil {
		v.logger.WithError(err).
			WithField("listingID", listingID).
			Warn("failed to register auction in verification service, continuing without it")
		return false
	}
	return true
}

// resolveVerdict сводит ответ внешнего сервиса к одному из терминальных статусов и сообщению для продавца.
func resolveVerdict(verdict domain.AIStatusType, err error) (domain.AIStatusType, string) {
	if err == nil {
		switch verdict {
		case domain.AIStatusAccepted:
			return domain.AIStatusAccepted, verdictAcceptedMessage
		case domain.AIStatusRejected:
			return domain.AIStatusRejected, verdictRejectedMessage
		default:
			return domain.AIStatusError, verdictUnexpectedMessage
		}
	}

	var statusErr interface{ StatusCode() int }
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.AIStatusError, verdictTimeoutMessage
	case errors.As(err, &statusErr):
		return domain.AIStatusError, fmt.Sprintf(verdictStatusCodeMessage, statusErr.StatusCode())
	case errors.Is(err, domain.ErrUpstreamUnexpectedResponse):
		return domain.AIStatusError, verdictUnexpectedMessage
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return domain.AIStatusError, verdictUnavailableMessage
	default:
		return domain.AIStatusError, verdictUnknownMessage
	}
}
