package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-auction/internal/logger"
	"github.com/fsdevblog/groph-auction/internal/service/tokens"
	"github.com/fsdevblog/groph-auction/internal/transport/api/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// handlerSuite общая часть тестов хендлеров: моки сервисов, роутер и токен текущего юзера.
type handlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	router         *gin.Engine
	jwtSecret      []byte
	relayToken     string
	currentUserID  uuid.UUID
	currentToken   string
	mockUsers      *mocks.MockUserServicer
	mockLedger     *mocks.MockLedgerServicer
	mockAuctions   *mocks.MockAuctionServicer
	mockListings   *mocks.MockListingServicer
	mockStatuses   *mocks.MockStatusServicer
	mockVerifier   *mocks.MockVerificationServicer
	mockSubscriber *mocks.MockStatusSubscriber
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.mockUsers = mocks.NewMockUserServicer(s.ctrl)
	s.mockLedger = mocks.NewMockLedgerServicer(s.ctrl)
	s.mockAuctions = mocks.NewMockAuctionServicer(s.ctrl)
	s.mockListings = mocks.NewMockListingServicer(s.ctrl)
	s.mockStatuses = mocks.NewMockStatusServicer(s.ctrl)
	s.mockVerifier = mocks.NewMockVerificationServicer(s.ctrl)
	s.mockSubscriber = mocks.NewMockStatusSubscriber(s.ctrl)

	s.jwtSecret = []byte("super secret key")
	s.relayToken = "relay secret"
	s.currentUserID = uuid.New()
	s.currentToken = s.token(s.currentUserID)

	router, err := New(RouterArgs{
		Logger:              logger.New(io.Discard, ""),
		UserService:         s.mockUsers,
		LedgerService:       s.mockLedger,
		AuctionService:      s.mockAuctions,
		ListingService:      s.mockListings,
		StatusService:       s.mockStatuses,
		VerificationService: s.mockVerifier,
		StatusSubscriber:    s.mockSubscriber,
		JWTSecretKey:        s.jwtSecret,
		RelayToken:          s.relayToken,
		StreamTimeout:       time.Second,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *handlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *handlerSuite) token(userID uuid.UUID) string {
	token, err := tokens.GenerateUserJWT(userID, "Jane Doe", "jane@example.com", time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// decode читает JSON тело ответа и закрывает его.
func (s *handlerSuite) decode(resp *http.Response, v any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func (s *handlerSuite) errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	s.decode(resp, &body)
	return body.Error
}
