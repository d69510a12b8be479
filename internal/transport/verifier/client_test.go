package verifier

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
}

func (s *ClientTestSuite) payload() domain.VerificationPayload {
	return domain.VerificationPayload{
		Video:       []byte("video bytes"),
		FileName:    "camera.mp4",
		ContentType: "video/mp4",
		Description: "Vintage film camera",
	}
}

func (s *ClientTestSuite) serve(handler http.HandlerFunc) HTTPClient {
	s.server = httptest.NewServer(handler)
	return New(s.server.URL + "/")
}

func (s *ClientTestSuite) TestPredict_SendsMultipartForm() {
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RoutePredict, r.URL.Path)
		s.Equal("application/json, text/plain", r.Header.Get("Accept"))

		s.Require().NoError(r.ParseMultipartForm(1 << 20))
		s.Equal("Vintage film camera", r.FormValue("description"))

		file, header, err := r.FormFile("video")
		s.Require().NoError(err)
		defer file.Close()
		s.Equal("camera.mp4", header.Filename)
		s.Equal("video/mp4", header.Header.Get("Content-Type"))

		content, err := io.ReadAll(file)
		s.Require().NoError(err)
		s.Equal("video bytes", string(content))

		_, _ = w.Write([]byte(`{"status":"accepted"}`))
	})

	verdict, err := client.Predict(s.T().Context(), s.payload())
	s.Require().NoError(err)
	s.Equal(domain.AIStatusAccepted, verdict)
}

func (s *ClientTestSuite) TestPredict_Responses() {
	cases := []struct {
		name        string
		httpStatus  int
		body        string
		wantVerdict domain.AIStatusType
		wantErr     error
	}{
		{name: "json accepted", httpStatus: http.StatusOK, body: `{"status":"accepted"}`,
			wantVerdict: domain.AIStatusAccepted},
		{name: "bare token with spaces", httpStatus: http.StatusOK, body: "  Rejected\n",
			wantVerdict: domain.AIStatusRejected},
		{name: "json string", httpStatus: http.StatusOK, body: `"accepted"`,
			wantVerdict: domain.AIStatusAccepted},
		{name: "unknown token", httpStatus: http.StatusOK, body: "maybe",
			wantErr: domain.ErrUpstreamUnexpectedResponse},
		{name: "json without status", httpStatus: http.StatusOK, body: `{"result":"ok"}`,
			wantErr: domain.ErrUpstreamUnexpectedResponse},
		{name: "server error", httpStatus: http.StatusBadGateway, body: "bad gateway",
			wantErr: domain.ErrUpstreamUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			client := s.serve(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.httpStatus)
				_, _ = w.Write([]byte(tc.body))
			})
			defer s.TearDownTest()

			verdict, err := client.Predict(s.T().Context(), s.payload())
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantVerdict, verdict)
		})
	}
}

func (s *ClientTestSuite) TestPredict_StatusCodeError() {
	client := s.serve(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := client.Predict(s.T().Context(), s.payload())
	var codeErr interface{ StatusCode() int }
	s.Require().True(errors.As(err, &codeErr))
	s.Equal(http.StatusUnprocessableEntity, codeErr.StatusCode())
}

func (s *ClientTestSuite) TestPredict_Timeout() {
	release := make(chan struct{})
	client := s.serve(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte("accepted"))
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(s.T().Context(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Predict(ctx, s.payload())
	s.Require().ErrorIs(err, domain.ErrUpstreamUnavailable)
	s.Require().ErrorIs(err, context.DeadlineExceeded)
}

func (s *ClientTestSuite) TestPredict_Unreachable() {
	client := New("http://127.0.0.1:1")

	_, err := client.Predict(s.T().Context(), s.payload())
	s.Require().ErrorIs(err, domain.ErrUpstreamUnavailable)
}

func (s *ClientTestSuite) TestRegisterAuction() {
	var called bool
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		called = true
		s.Equal(RouteAuctionAdd, r.URL.Path)
		s.Require().NoError(r.ParseMultipartForm(1 << 20))
		s.Equal("Vintage film camera", r.FormValue("description"))
		w.WriteHeader(http.StatusCreated)
	})

	s.Require().NoError(client.RegisterAuction(s.T().Context(), s.payload()))
	s.True(called)
}
