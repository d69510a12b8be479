package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidReserveRatio доля суммы ставки, которая списывается с баланса участника в момент ставки.
var BidReserveRatio = decimal.RequireFromString("0.5")

type LedgerService struct {
	uow             uow.UOW
	userRepo        UserRepository
	transactionRepo TransactionRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	transactionRepo, err := uow.GetRepositoryAs[TransactionRepository](
		u,
		uow.RepositoryName(repoargs.TransactionRepoName),
	)
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:             u,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}, nil
}

// BalanceChange результат изменения баланса: новый баланс и запись в журнале транзакций.
type BalanceChange struct {
	Balance     decimal.Decimal
	Transaction domain.Transaction
}

// GetBalance возвращает текущий баланс юзера или domain.ErrRecordNotFound.
func (l *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	user, err := l.userRepo.FindByID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting balance: %w", err)
	}
	return user.Balance, nil
}

// Deposit пополняет баланс на amount и добавляет транзакцию DEPOSIT. Верхней границы суммы нет.
func (l *LedgerService) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*BalanceChange, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("depositing: %w", domain.NewValidationError("amount", "must be greater than zero"))
	}

	var change *BalanceChange
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		change, err = l.applyChange(c, tx, userID, amount, domain.TransactionTypeDeposit)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("depositing to user %s: %w", userID, txErr)
	}
	return change, nil
}

// ReserveForBid списывает amount с баланса внутри транзакции вызывающего и добавляет транзакцию BID
// с отрицательной суммой. Строка юзера блокируется до конца транзакции tx.
//
// Если средств не хватает, возвращает *domain.InsufficientFundsError. Списание безвозвратное.
func (l *LedgerService) ReserveForBid(
	ctx context.Context,
	tx uow.TX,
	userID uuid.UUID,
	amount decimal.Decimal,
) (*BalanceChange, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be greater than zero")
	}

	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	user, err := userRepo.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if user.Balance.LessThan(amount) {
		return nil, domain.NewInsufficientFundsError(amount)
	}

	return l.applyChange(ctx, tx, userID, amount.Neg(), domain.TransactionTypeBid)
}

// Transactions возвращает журнал транзакций юзера, от новых к старым.
func (l *LedgerService) Transactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	transactions, err := l.transactionRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting transactions: %w", err)
	}
	return transactions, nil
}

// applyChange изменяет баланс на delta и пишет ровно одну транзакцию на это изменение.
func (l *LedgerService) applyChange(
	ctx context.Context,
	tx uow.TX,
	userID uuid.UUID,
	delta decimal.Decimal,
	txType domain.TransactionType,
) (*BalanceChange, error) {
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	transactionRepo, err := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	balance, err := userRepo.AddBalance(ctx, userID, delta)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	transaction, err := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		ID:     uuid.New(),
		UserID: userID,
		Amount: delta,
		Type:   txType,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &BalanceChange{Balance: balance, Transaction: *transaction}, nil
}
