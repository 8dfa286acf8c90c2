package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/melaverse-glitch/Mirror-Dashboard/models"
	"github.com/melaverse-glitch/Mirror-Dashboard/store"
)

type ShareHandlerTestSuite struct {
	suite.Suite
	store   *fakeSessionStore
	handler *Handler

	sentTo      string
	sentSubject string
	sentText    string
	mailErr     error
}

func (s *ShareHandlerTestSuite) SetupTest() {
	s.store = new(fakeSessionStore)
	s.sentTo = ""
	s.sentSubject = ""
	s.sentText = ""
	s.mailErr = nil
	s.handler = &Handler{
		Store: s.store,
		SendMail: func(toName, toEmail, subject, textContent, htmlContent string) error {
			s.sentTo = toEmail
			s.sentSubject = subject
			s.sentText = textContent
			return s.mailErr
		},
	}
}

func TestShareHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShareHandlerTestSuite))
}

func (s *ShareHandlerTestSuite) postShare(sessionID string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID+"/share", bytes.NewReader(payload))
	req.SetPathValue("id", sessionID)
	rec := httptest.NewRecorder()
	s.handler.ShareSessionHandler(rec, req)
	return rec
}

func (s *ShareHandlerTestSuite) TestMissingEmail() {
	rec := s.postShare("sess-1", ShareRequest{Name: "Sam"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Empty(s.sentTo)
	s.store.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *ShareHandlerTestSuite) TestUnknownSession() {
	s.store.On("Get", mock.Anything, "missing").Return(nil, store.ErrSessionNotFound)

	rec := s.postShare("missing", ShareRequest{Email: "sam@example.com"})

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(s.sentTo)
}

func (s *ShareHandlerTestSuite) TestSendsResultLinks() {
	session := &models.Session{
		ID:                 "sess-1",
		CreatedAt:          time.Now(),
		OriginalImageURL:   "https://bucket.example/sessions/sess-1/original.jpg",
		DerenderedImageURL: "https://bucket.example/sessions/sess-1/derendered.jpg",
		FoundationTryons: []models.FoundationTryon{
			{SKU: "30W", Name: "30 Warm", ResultImageURL: "https://bucket.example/sessions/sess-1/foundation-30W-1.jpg"},
		},
	}
	s.store.On("Get", mock.Anything, "sess-1").Return(session, nil)

	rec := s.postShare("sess-1", ShareRequest{Email: "sam@example.com", Name: "Sam"})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("sam@example.com", s.sentTo)
	s.Equal("Your Mirror results", s.sentSubject)
	s.Contains(s.sentText, session.OriginalImageURL)
	s.Contains(s.sentText, session.DerenderedImageURL)
	s.Contains(s.sentText, session.FoundationTryons[0].ResultImageURL)
}

func (s *ShareHandlerTestSuite) TestMailFailure() {
	session := &models.Session{ID: "sess-1"}
	s.store.On("Get", mock.Anything, "sess-1").Return(session, nil)
	s.mailErr = errors.New("sendgrid unavailable")

	rec := s.postShare("sess-1", ShareRequest{Email: "sam@example.com"})

	s.Equal(http.StatusInternalServerError, rec.Code)
}
