package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubTenureService returns canned values so the handler's HTTP shape can be
// asserted without a storage backend.
type stubTenureService struct {
	eligible   []models.EligibleMember
	draw       *models.TenureDraw
	confirm    *models.ConfirmResult
	confirmErr error
	adminID    string
}

func (s *stubTenureService) EligibleMembers(ctx context.Context) []models.EligibleMember {
	return s.eligible
}

func (s *stubTenureService) CalculateWinners(ctx context.Context, adminID string) *models.TenureDraw {
	s.adminID = adminID
	return s.draw
}

func (s *stubTenureService) ConfirmPayouts(ctx context.Context, adminID string) (*models.ConfirmResult, error) {
	s.adminID = adminID
	return s.confirm, s.confirmErr
}

func newTenureRouter(svc *stubTenureService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTenureHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "admin-1")
	})
	r.GET("/eligible", h.GetEligibleMembers)
	r.POST("/calculate", h.CalculateWinners)
	r.POST("/confirm", h.ConfirmPayouts)
	return r
}

func TestGetEligibleMembers(t *testing.T) {
	svc := &stubTenureService{eligible: []models.EligibleMember{
		{UserID: primitive.NewObjectID(), Email: "a@example.com", TenureMonths: 14},
		{UserID: primitive.NewObjectID(), Email: "unknown", TenureMonths: 12},
	}}
	r := newTenureRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/eligible", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Total    int                     `json:"total"`
		Eligible []models.EligibleMember `json:"eligible"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, svc.eligible, body.Eligible)
}

func TestCalculateWinners_PassesAdminFromContext(t *testing.T) {
	svc := &stubTenureService{draw: &models.TenureDraw{
		Seed:    12345,
		Winners: []models.Winner{{UserID: primitive.NewObjectID(), Email: "w@example.com", Prepaid: true}},
		DrawnAt: time.Now(),
	}}
	r := newTenureRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calculate", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin-1", svc.adminID)

	var draw models.TenureDraw
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draw))
	assert.Equal(t, int64(12345), draw.Seed)
	require.Len(t, draw.Winners, 1)
	assert.True(t, draw.Winners[0].Prepaid)
}

func TestConfirmPayouts_Processed(t *testing.T) {
	svc := &stubTenureService{confirm: &models.ConfirmResult{Processed: 3}}
	r := newTenureRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/confirm", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Payouts processed successfully.","processed":3}`, w.Body.String())
}

func TestConfirmPayouts_NoWinners(t *testing.T) {
	svc := &stubTenureService{confirm: &models.ConfirmResult{Processed: 0}}
	r := newTenureRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/confirm", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No winners to process.","processed":0}`, w.Body.String())
}

func TestConfirmPayouts_Failure(t *testing.T) {
	svc := &stubTenureService{confirmErr: errors.New("transaction aborted")}
	r := newTenureRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/confirm", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to process payouts."}`, w.Body.String())
}
