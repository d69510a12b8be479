package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	DefaultStreamTimeout = 2 * time.Minute
	statusEvent          = "status"
)

type StatusHandler struct {
	svs           StatusServicer
	subscriber    StatusSubscriber
	streamTimeout time.Duration
}

func NewStatusHandler(svs StatusServicer, subscriber StatusSubscriber, streamTimeout time.Duration) *StatusHandler {
	if streamTimeout <= 0 {
		streamTimeout = DefaultStreamTimeout
	}
	return &StatusHandler{
		svs:           svs,
		subscriber:    subscriber,
		streamTimeout: streamTimeout,
	}
}

// Show GET RouteGroup + ProductStatusRoute. Текущий статус AI проверки, авторизация не требуется.
func (h *StatusHandler) Show(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := h.svs.GetStatus(reqCtx, listingID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatusResponse(*status))
}

// Stream GET RouteGroup + ProductStatusStreamRoute. Server-sent events со статусом проверки.
// Первым событием отдается текущий статус, поток закрывается на финальном статусе или по таймауту.
func (h *StatusHandler) Stream(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	streamCtx, cancel := context.WithTimeout(c.Request.Context(), h.streamTimeout)
	defer cancel()

	// подписываемся до чтения текущего статуса, чтобы не пропустить смену между ними.
	updates, unsubscribe, subErr := h.subscriber.Subscribe(streamCtx, listingID)
	if subErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, subErr).SetType(gin.ErrorTypePrivate)
		return
	}
	defer unsubscribe()

	reqCtx, reqCancel := context.WithTimeout(streamCtx, DefaultServiceTimeout)
	current, err := h.svs.GetStatus(reqCtx, listingID)
	reqCancel()
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent(statusEvent, newStatusResponse(*current))
	c.Writer.Flush()
	if current.Status.IsTerminal() {
		return
	}

	// клиент отключился или вышел таймаут - streamCtx отменен.
	for {
		select {
		case <-streamCtx.Done():
			return
		case st, open := <-updates:
			if !open {
				return
			}
			c.SSEvent(statusEvent, newStatusResponse(st))
			c.Writer.Flush()
			if st.Status.IsTerminal() {
				return
			}
		}
	}
}

// Set PUT RouteGroup + RelayStatusRoute. Запись вердикта AI relay, доступна только с общим секретом relay.
func (h *StatusHandler) Set(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params SetStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := h.svs.SetStatus(reqCtx, listingID, params.Status, params.Message)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatusResponse(*status))
}

type SetStatusParams struct {
	Status  domain.AIStatusType `binding:"required" json:"status"`
	Message string              `binding:"max=1000" json:"message"`
}
