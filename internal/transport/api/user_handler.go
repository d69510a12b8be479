package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users    UserServicer
	ledger   LedgerServicer
	auctions AuctionServicer
	listings ListingServicer
}

func NewUserHandler(users UserServicer, ledger LedgerServicer, auctions AuctionServicer, listings ListingServicer) *UserHandler {
	return &UserHandler{
		users:    users,
		ledger:   ledger,
		auctions: auctions,
		listings: listings,
	}
}

type ProvisionParams struct {
	Name  string `binding:"omitempty,max=255"       json:"name"`
	Email string `binding:"omitempty,email,max=255" json:"email"`
}

// Provision POST RouteGroup + ProvisionRoute. Создает или обновляет юзера по данным токена.
// Поля тела запроса используются, если их нет в токене.
func (h *UserHandler) Provision(c *gin.Context) {
	var params ProvisionParams
	if c.Request.ContentLength != 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			abortWithBindError(c, bindErr)
			return
		}
	}

	args := service.ProvisionUserArgs{
		ID:    getUserIDFromContext(c),
		Name:  params.Name,
		Email: params.Email,
	}
	if claims := getClaimsFromContext(c); claims != nil {
		if claims.Name != "" {
			args.Name = claims.Name
		}
		if claims.Email != "" {
			args.Email = claims.Email
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.users.Provision(reqCtx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *UserHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.ledger.GetBalance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance.InexactFloat64()})
}

type DepositResponse struct {
	Balance     float64             `json:"balance"`
	Transaction TransactionResponse `json:"transaction"`
}

// Deposit POST RouteGroup + DepositRoute. Пополнение кошелька.
func (h *UserHandler) Deposit(c *gin.Context) {
	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	change, err := h.ledger.Deposit(reqCtx, getUserIDFromContext(c), params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DepositResponse{
		Balance:     change.Balance.InexactFloat64(),
		Transaction: newTransactionResponse(&change.Transaction),
	})
}

// Transactions GET RouteGroup + TransactionsRoute. Журнал операций, новые первыми.
func (h *UserHandler) Transactions(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.ledger.Transactions(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = newTransactionResponse(&transactions[i])
	}
	c.JSON(http.StatusOK, response)
}

// Bids GET RouteGroup + UserBidsRoute.
func (h *UserHandler) Bids(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bids, err := h.auctions.BidsByUser(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBidsResponse(bids))
}

// Listings GET RouteGroup + UserListingsRoute. Лоты текущего продавца с количеством ставок.
func (h *UserHandler) Listings(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listings, err := h.listings.BySeller(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListingsResponse(listings))
}
