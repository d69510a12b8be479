package domain

type AIStatusType string

const (
	AIStatusPending    AIStatusType = "pending"
	AIStatusProcessing AIStatusType = "processing"
	AIStatusAccepted   AIStatusType = "accepted"
	AIStatusRejected   AIStatusType = "rejected"
	AIStatusError      AIStatusType = "error"
)

// IsValid проверяет что статус входит в фиксированный набор вердиктов.
func (s AIStatusType) IsValid() bool {
	switch s {
	case AIStatusPending, AIStatusProcessing, AIStatusAccepted, AIStatusRejected, AIStatusError:
		return true
	default:
		return false
	}
}

// IsTerminal возвращает true для статусов, после которых автоматических переходов не бывает.
func (s AIStatusType) IsTerminal() bool {
	return s == AIStatusAccepted || s == AIStatusRejected || s == AIStatusError
}

type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "DEPOSIT"
	TransactionTypeBid     TransactionType = "BID"
)

const TransactionStatusCompleted = "completed"

// ListingPhase вычисляемая фаза лота, в БД не хранится.
type ListingPhase string

const (
	ListingPhaseVerifying ListingPhase = "verifying"
	ListingPhaseBiddable  ListingPhase = "biddable"
	ListingPhaseClosed    ListingPhase = "closed"
	ListingPhaseRejected  ListingPhase = "rejected"
)

// VerificationPayload видео и описание лота, отправляемые на внешнюю AI проверку.
type VerificationPayload struct {
	Video       []byte
	FileName    string
	ContentType string
	Description string
}
