package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mandir/internal/cache"
	"mandir/internal/models"
	"mandir/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignStore struct {
	campaigns []models.DonationCampaign
	listCalls int
}

func (f *fakeCampaignStore) ListActiveCampaigns(ctx context.Context) ([]models.DonationCampaign, error) {
	f.listCalls++
	out := make([]models.DonationCampaign, len(f.campaigns))
	copy(out, f.campaigns)
	return out, nil
}

func (f *fakeCampaignStore) Create(ctx context.Context, d *models.Donation) error {
	d.ID = "don-1"
	d.PaymentStatus = "pending"
	if d.CampaignID != nil {
		for i := range f.campaigns {
			if f.campaigns[i].ID == *d.CampaignID {
				f.campaigns[i].CurrentAmount += d.Amount
			}
		}
	}
	return nil
}

func (f *fakeCampaignStore) GetCampaign(ctx context.Context, id string) (*models.DonationCampaign, error) {
	for _, c := range f.campaigns {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func newCampaignsRouter(t *testing.T, repo *fakeCampaignStore) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rc := cache.NewResponseCacheFromClient(client, "mandir:resp", time.Minute)
	t.Cleanup(func() { _ = rc.Close() })

	svcs := &service.Services{
		Donations: service.NewDonationService(repo, cache.NewStore(0)),
	}
	h := NewHandlers(svcs, rc)

	r := gin.New()
	r.GET("/api/campaigns", h.ListCampaigns)
	r.POST("/api/donations", h.CreateDonation)
	return r, mr
}

func TestListCampaignsServesFromRedisTier(t *testing.T) {
	repo := &fakeCampaignStore{campaigns: []models.DonationCampaign{
		{ID: "c1", Title: "Kitchen Fund", TargetAmount: 1000, CurrentAmount: 100, IsActive: true},
	}}
	r, mr := newCampaignsRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mr.Exists("mandir:resp:campaigns:"))

	// The second read never leaves Redis
	mr.Set("mandir:resp:campaigns:", `[{"title":"From Redis"}]`)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"title":"From Redis"}]`, w.Body.String())
	assert.Equal(t, 1, repo.listCalls)
}

func TestCreateDonationDropsCachedCampaignsResponse(t *testing.T) {
	repo := &fakeCampaignStore{campaigns: []models.DonationCampaign{
		{ID: "c1", Title: "Kitchen Fund", TargetAmount: 1000, CurrentAmount: 100, IsActive: true},
	}}
	r, mr := newCampaignsRouter(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, mr.Exists("mandir:resp:campaigns:"))

	body := `{"amount":400,"donor_name":"Gopal Verma","campaign_id":"c1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"payment_status":"pending"`)

	// The cached campaigns body is stale now and must be gone
	assert.False(t, mr.Exists("mandir:resp:campaigns:"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current_amount":500`)
}
