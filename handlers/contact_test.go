package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/models"
	"portfolio/services/contact"
	"portfolio/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubContactService struct {
	submitted []models.ContactRequest
	err       error
}

func (s *stubContactService) Submit(ctx context.Context, req models.ContactRequest, ip string) error {
	if s.err != nil {
		return s.err
	}
	s.submitted = append(s.submitted, req)
	return nil
}

func newContactRouter(svc contact.ContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(svc, utils.GetLogger())

	r := gin.New()
	r.POST("/api/contact", h.SubmitContact)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactOK(t *testing.T) {
	svc := &stubContactService{}
	r := newContactRouter(svc)

	w := postContact(r, `{"name":"Ada","email":"ada@example.com","message":"hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, svc.submitted, 1)
}

func TestSubmitContactHoneypotSilentlyAccepted(t *testing.T) {
	svc := &stubContactService{}
	r := newContactRouter(svc)

	w := postContact(r, `{"email":"bot@spam.com","message":"buy now","website":"http://spam"}`)

	// Bots get a success response but nothing is stored.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.submitted)
}

func TestSubmitContactMissingFields(t *testing.T) {
	r := newContactRouter(&stubContactService{err: contact.ErrMissingFields})

	w := postContact(r, `{"name":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
