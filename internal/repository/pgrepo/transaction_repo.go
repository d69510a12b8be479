package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, created_at, user_id, amount, type::text, status`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (id, user_id, amount, type, status)
		VALUES ($1, $2, $3, $4::transaction_type, $5)
		RETURNING `+transactionColumns,
		args.ID, args.UserID, args.Amount, string(args.Type), domain.TransactionStatusCompleted,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for user %s", args.Type, args.UserID)
	}
	return transaction, nil
}

// GetByUser возвращает историю операций юзера от новых к старым.
func (t *TransactionRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting transactions of user %s", userID)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction of user %s", userID)
		}
		transactions = append(transactions, *transaction)
	}
	if err = rows.Err(); err != nil {
		return nil, convertErr(err, "getting transactions of user %s", userID)
	}
	return transactions, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var transactionType string
	if err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UserID,
		&transaction.Amount,
		&transactionType,
		&transaction.Status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	transaction.Type = domain.TransactionType(transactionType)
	return &transaction, nil
}
