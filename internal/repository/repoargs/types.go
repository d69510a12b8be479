package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	ListingRepoName     RepositoryName = "listing"
	BidRepoName         RepositoryName = "bid"
	TransactionRepoName RepositoryName = "transaction"
)
