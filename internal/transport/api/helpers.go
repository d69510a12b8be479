package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/service/tokens"
	"github.com/fsdevblog/groph-auction/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в middlewares.AuthRequired.
// Если значения нет, вернется uuid.Nil.
func getUserIDFromContext(c *gin.Context) uuid.UUID {
	value, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return uuid.Nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func getClaimsFromContext(c *gin.Context) *tokens.UserClaims {
	value, exist := c.Get(middlewares.CurrentUserClaimsKey)
	if !exist {
		return nil
	}
	claims, _ := value.(*tokens.UserClaims)
	return claims
}

// paramID разбирает uuid из параметра пути. При ошибке прерывает запрос с 400.
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("Product ID is required")).
			SetType(gin.ErrorTypePublic)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("invalid %s", name)).
			SetType(gin.ErrorTypePublic)
		return uuid.Nil, false
	}
	return id, true
}

// abortWithBindError 422 для ошибок валидации полей, 400 для остальных ошибок разбора запроса.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		fields := make([]string, len(valErrs))
		for i, fe := range valErrs {
			fields[i] = fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag())
		}
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New(strings.Join(fields, "; "))).
			SetType(gin.ErrorTypePublic)
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
}

// abortWithServiceError переводит ошибки сервисного слоя в http статус и публичное сообщение.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		fundsErr *domain.InsufficientFundsError
		valErr   *domain.ValidationError
	)

	switch {
	case errors.As(err, &fundsErr):
		_ = c.AbortWithError(http.StatusPaymentRequired, fundsErr).SetType(gin.ErrorTypePublic)
	case errors.As(err, &valErr):
		_ = c.AbortWithError(http.StatusBadRequest, valErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidInput):
		_ = c.AbortWithError(http.StatusBadRequest, domain.ErrInvalidInput).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, errors.New("Product not found")).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrSelfBid):
		_ = c.AbortWithError(http.StatusForbidden, domain.ErrSelfBid).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrOwnerConflict):
		_ = c.AbortWithError(http.StatusForbidden, errors.New("listing belongs to another seller")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAuctionEnded),
		errors.Is(err, domain.ErrNotVerified),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrAlreadyVerified):
		_ = c.AbortWithError(http.StatusConflict, unwrapSentinel(err)).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// unwrapSentinel возвращает доменную ошибку без префиксов обертки.
func unwrapSentinel(err error) error {
	for _, sentinel := range []error{
		domain.ErrAuctionEnded,
		domain.ErrNotVerified,
		domain.ErrBidTooLow,
		domain.ErrAlreadyVerified,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}
