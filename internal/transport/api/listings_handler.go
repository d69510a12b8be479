package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// multipartOverhead запас на поля формы сверх размера видео.
const multipartOverhead = 1 << 20

type ListingsHandler struct {
	listings      ListingServicer
	auctions      AuctionServicer
	verifications VerificationServicer
	verifyTimeout time.Duration
}

type ListingsHandlerArgs struct {
	Listings      ListingServicer
	Auctions      AuctionServicer
	Verifications VerificationServicer
	VerifyTimeout time.Duration
}

func NewListingsHandler(args ListingsHandlerArgs) *ListingsHandler {
	verifyTimeout := args.VerifyTimeout
	if verifyTimeout <= 0 {
		verifyTimeout = service.DefaultVerifierTimeout + 5*time.Second //nolint:mnd
	}
	return &ListingsHandler{
		listings:      args.Listings,
		auctions:      args.Auctions,
		verifications: args.Verifications,
		verifyTimeout: verifyTimeout,
	}
}

type CreateListingParams struct {
	Title         string          `binding:"required,max=255"       json:"title"`
	Description   string          `binding:"required,max=5000"      json:"description"`
	Category      string          `binding:"required,max=100"       json:"category"`
	Condition     string          `binding:"required,max=50"        json:"condition"`
	StartingPrice decimal.Decimal `binding:"money,decimal_gt0"      json:"startingPrice"`
	DurationDays  int             `binding:"required,gte=1,lte=365" json:"durationDays"`
}

// Create POST RouteGroup + ListingsRoute. Создает лот текущего юзера в статусе pending.
func (h *ListingsHandler) Create(c *gin.Context) {
	var params CreateListingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listing, err := h.listings.Create(reqCtx, service.CreateListingArgs{
		SellerID:      getUserIDFromContext(c),
		Title:         params.Title,
		Description:   params.Description,
		Category:      params.Category,
		Condition:     params.Condition,
		StartingPrice: params.StartingPrice,
		DurationDays:  params.DurationDays,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newListingResponse(listing))
}

type ListingsQuery struct {
	Category string `binding:"max=100"              form:"category"`
	Search   string `binding:"max=255"              form:"search"`
	MinPrice string `binding:"omitempty,money"      form:"minPrice"`
	MaxPrice string `binding:"omitempty,money"      form:"maxPrice"`
	Limit    uint   `binding:"omitempty,lte=100"    form:"limit"`
}

func (q ListingsQuery) filter() repoargs.ListingFilter {
	filter := repoargs.ListingFilter{
		Category: strings.TrimSpace(q.Category),
		Search:   strings.TrimSpace(q.Search),
		Limit:    q.Limit,
	}
	if q.MinPrice != "" {
		minPrice := decimal.RequireFromString(q.MinPrice)
		filter.MinPrice = &minPrice
	}
	if q.MaxPrice != "" {
		maxPrice := decimal.RequireFromString(q.MaxPrice)
		filter.MaxPrice = &maxPrice
	}
	return filter
}

// Index GET RouteGroup + ListingsRoute. Активные проверенные лоты.
func (h *ListingsHandler) Index(c *gin.Context) {
	var query ListingsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listings, err := h.listings.Active(reqCtx, query.filter())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListingsResponse(listings))
}

// Show GET RouteGroup + ListingRoute. Лот со ставками, фазой и победителем.
func (h *ListingsHandler) Show(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.listings.Get(reqCtx, listingID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := ListingDetailsResponse{
		Listing: newListingResponse(&details.Listing),
		Bids:    newBidsResponse(details.Bids),
		Phase:   details.Phase,
	}
	if details.Winner != nil {
		winner := newBidResponse(details.Winner)
		response.Winner = &winner
	}
	c.JSON(http.StatusOK, response)
}

type AmountParams struct {
	Amount decimal.Decimal `binding:"money,decimal_gt0" json:"amount"`
}

// PlaceBid POST RouteGroup + ListingBidsRoute. Ставка текущего юзера.
func (h *ListingsHandler) PlaceBid(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bid, err := h.auctions.PlaceBid(reqCtx, service.PlaceBidArgs{
		ListingID: listingID,
		BidderID:  getUserIDFromContext(c),
		Amount:    params.Amount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBidResponse(bid))
}

type VerificationResponse struct {
	Status            domain.AIStatusType `json:"status"`
	Message           string              `json:"message"`
	AuctionRegistered bool                `json:"auctionRegistered"`
}

// Verify POST RouteGroup + ListingVerifyRoute. Multipart форма с полями video и description.
// Ответ содержит вердикт, ошибки внешнего сервиса превращаются в статус error, а не в http ошибку.
func (h *ListingsHandler) Verify(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxVideoSize+multipartOverhead)

	file, header, fileErr := c.Request.FormFile("video")
	if fileErr != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(fileErr, &tooLarge) {
			_ = c.AbortWithError(http.StatusRequestEntityTooLarge, errors.New("video is too large")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("video file is required")).
			SetType(gin.ErrorTypePublic)
		return
	}
	defer file.Close()

	reqCtx, cancel := context.WithTimeout(c, h.verifyTimeout)
	defer cancel()

	result, err := h.verifications.Verify(reqCtx, service.VerifyArgs{
		ListingID:   listingID,
		SellerID:    getUserIDFromContext(c),
		Video:       file,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Description: c.PostForm("description"),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, VerificationResponse{
		Status:            result.Status,
		Message:           result.Message,
		AuctionRegistered: result.AuctionRegistered,
	})
}
