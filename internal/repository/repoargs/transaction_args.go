package repoargs

import (
	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
	Type   domain.TransactionType
}
