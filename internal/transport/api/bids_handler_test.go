package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/service/tokens"
	"github.com/fsdevblog/groph-auction/internal/transport/api"
	"github.com/fsdevblog/groph-auction/internal/transport/api/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

var jwtSecret = []byte("test-secret")

type BidsHandlerTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockBidService *mocks.MockBidServicer
	mockItemReader *mocks.MockItemReader
	mockBidReader  *mocks.MockHighestBidReader
	router         *gin.Engine
}

func TestBidsHandlerSuite(t *testing.T) {
	suite.Run(t, new(BidsHandlerTestSuite))
}

func (s *BidsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBidService = mocks.NewMockBidServicer(s.mockCtrl)
	s.mockItemReader = mocks.NewMockItemReader(s.mockCtrl)
	s.mockBidReader = mocks.NewMockHighestBidReader(s.mockCtrl)

	s.router = api.New(api.RouterArgs{
		Logger:         logrus.New(),
		BidService:     s.mockBidService,
		RoomService:    mocks.NewMockRoomServicer(s.mockCtrl),
		PaymentService: mocks.NewMockPaymentServicer(s.mockCtrl),
		WalletService:  mocks.NewMockWalletServicer(s.mockCtrl),
		ItemReader:     s.mockItemReader,
		BidReader:      s.mockBidReader,
		JWTSecretKey:   jwtSecret,
	})
}

func (s *BidsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BidsHandlerTestSuite) authorizedRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	token, tokenErr := tokens.GenerateUserJWT(200, time.Hour, jwtSecret)
	s.Require().NoError(tokenErr)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func (s *BidsHandlerTestSuite) TestPlaceBid() {
	s.mockBidService.EXPECT().
		PlaceBid(gomock.Any(), int64(1), int64(200), int64(15000)).
		Return(&domain.BidRecord{ID: 6, ItemID: 1, BidderID: 200, Amount: 15000, Highest: true}, nil)

	w := httptest.NewRecorder()
	req := s.authorizedRequest(http.MethodPost, "/api/items/1/bids", gin.H{"amount": 15000})
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)

	var resp api.BidResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(6), resp.BidID)
	s.Equal(int64(15000), resp.Amount)
}

func (s *BidsHandlerTestSuite) TestPlaceBidUnauthorized() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items/1/bids", bytes.NewBufferString(`{"amount":15000}`))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

// Таблица соответствия доменных ошибок HTTP статусам.
func (s *BidsHandlerTestSuite) TestPlaceBidErrorMapping() {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "insufficient balance", serviceErr: domain.ErrInsufficientBalance, wantStatus: http.StatusPaymentRequired},
		{name: "own bid", serviceErr: domain.ErrForbiddenOwnBid, wantStatus: http.StatusForbidden},
		{name: "too low", serviceErr: domain.ErrBidTooLow, wantStatus: http.StatusUnprocessableEntity},
		{name: "already highest", serviceErr: domain.ErrAlreadyHighestBidder, wantStatus: http.StatusUnprocessableEntity},
		{name: "closed", serviceErr: domain.ErrAuctionClosed, wantStatus: http.StatusConflict},
		{name: "not found", serviceErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockBidService.EXPECT().
				PlaceBid(gomock.Any(), int64(1), int64(200), int64(15000)).
				Return(nil, t.serviceErr)

			w := httptest.NewRecorder()
			req := s.authorizedRequest(http.MethodPost, "/api/items/1/bids", gin.H{"amount": 15000})
			s.router.ServeHTTP(w, req)

			s.Equal(t.wantStatus, w.Code)
		})
	}
}

func (s *BidsHandlerTestSuite) TestPlaceBidBadPayload() {
	w := httptest.NewRecorder()
	req := s.authorizedRequest(http.MethodPost, "/api/items/1/bids", gin.H{"amount": -5})
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BidsHandlerTestSuite) TestBuyNow() {
	s.mockBidService.EXPECT().
		BuyNow(gomock.Any(), int64(1), int64(200)).
		Return(&domain.Deal{ID: 3, ItemID: 1, BuyerID: 200, Price: 30000, Status: domain.DealStatusPending}, nil)

	w := httptest.NewRecorder()
	req := s.authorizedRequest(http.MethodPost, "/api/items/1/buy-now", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)

	var resp api.DealResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(30000), resp.Price)
}

// Карточка лота публичная и отдает текущего лидера, если он есть.
func (s *BidsHandlerTestSuite) TestShow() {
	item := &domain.AuctionItem{
		ID:           1,
		Title:        "vintage camera",
		CurrentPrice: 15000,
		Status:       domain.ItemStatusInProgress,
		EndTime:      time.Now().Add(time.Hour),
	}

	s.mockItemReader.EXPECT().FindByID(gomock.Any(), int64(1)).Return(item, nil)
	s.mockBidReader.EXPECT().FindHighest(gomock.Any(), int64(1)).
		Return(&domain.BidRecord{ID: 6, ItemID: 1, BidderID: 200, Amount: 15000, Highest: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items/1", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp api.ItemResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(15000), resp.CurrentPrice)
	s.Require().NotNil(resp.HighestBidder)
	s.Equal(int64(200), *resp.HighestBidder)
}

// Лот без единой ставки отдается без лидера, а не ошибкой.
func (s *BidsHandlerTestSuite) TestShowNoBids() {
	item := &domain.AuctionItem{
		ID:           1,
		Title:        "vintage camera",
		CurrentPrice: 10000,
		Status:       domain.ItemStatusBeforeBidding,
		EndTime:      time.Now().Add(time.Hour),
	}

	s.mockItemReader.EXPECT().FindByID(gomock.Any(), int64(1)).Return(item, nil)
	s.mockBidReader.EXPECT().FindHighest(gomock.Any(), int64(1)).Return(nil, domain.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items/1", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp api.ItemResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Nil(resp.HighestBidder)
}
