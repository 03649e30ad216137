package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bryan-Binu-2006/Altscore/internal/cache"
	"github.com/Bryan-Binu-2006/Altscore/internal/database"
	"github.com/Bryan-Binu-2006/Altscore/internal/mlclient"
	"github.com/Bryan-Binu-2006/Altscore/internal/monitoring"
	"github.com/Bryan-Binu-2006/Altscore/internal/ratelimit"
	"github.com/Bryan-Binu-2006/Altscore/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires an application against a throwaway database, with Redis
// and the ML predictor disabled.
func newTestApp(t *testing.T) (*application, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := monitoring.NewLogger()
	metrics := monitoring.NewMetrics()

	redisClient, err := ratelimit.NewRedisClient("", "", 0)
	require.NoError(t, err)

	rlConfig := ratelimit.Config{
		IPLimitPerMin:        1000,
		ApplicantLimitPerDay: 10,
		BurstMultiplier:      2,
	}

	app := &application{
		logger:    logger,
		metrics:   metrics,
		db:        db,
		repo:      database.NewRepository(db),
		redis:     redisClient,
		limiter:   ratelimit.NewRateLimiter(redisClient, rlConfig, metrics),
		predictor: mlclient.NewClient("", time.Second, logger, metrics),
		engine:    scoring.NewEngine(),
		cache:     cache.NewCache(time.Minute),
		rlConfig:  rlConfig,
	}

	return app, app.routes()
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createApplicant(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/applicants", gin.H{
		"name":  "Ravi Kumar",
		"phone": "+919876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var applicant database.Applicant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &applicant))
	require.NotEmpty(t, applicant.ID)
	return applicant.ID
}

func createAssessment(t *testing.T, r *gin.Engine, applicantID string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/assessments", gin.H{
		"applicant_id": applicantID,
		"essential_info": gin.H{
			"monthly_income":  35000,
			"employment_type": "self_employed",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var assessment database.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))
	require.Equal(t, database.StatusPending, assessment.Status)
	return assessment.ID
}

func TestHealthEndpoint(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["redis"])
}

func TestScoreEndpointStateless(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodPost, "/api/v1/score", gin.H{
		"facts": gin.H{
			"aadhaar_verified": true,
			"pan_verified":     true,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result scoring.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.Result.FinalScore, 0.0)
	assert.LessOrEqual(t, resp.Result.FinalScore, 10.0)
	assert.NotEmpty(t, resp.Result.Category)
}

func TestScoreEndpointRejectsBadJSON(t *testing.T) {
	_, r := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreEndpointCachesIdenticalBodies(t *testing.T) {
	app, r := newTestApp(t)

	body := gin.H{"facts": gin.H{"gst_registered_shop": true}}

	first := doJSON(r, http.MethodPost, "/api/v1/score", body)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, app.cache.Size())

	second := doJSON(r, http.MethodPost, "/api/v1/score", body)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestApplicantCreateAndGet(t *testing.T) {
	_, r := newTestApp(t)

	id := createApplicant(t, r)

	w := doJSON(r, http.MethodGet, "/api/v1/applicants/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var applicant database.Applicant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &applicant))
	assert.Equal(t, "Ravi Kumar", applicant.Name)
}

func TestApplicantCreateRequiresPhone(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodPost, "/api/v1/applicants", gin.H{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicantNotFound(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodGet, "/api/v1/applicants/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssessmentRequiresExistingApplicant(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodPost, "/api/v1/assessments", gin.H{
		"applicant_id": "does-not-exist",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculateCompletesAssessment(t *testing.T) {
	_, r := newTestApp(t)

	applicantID := createApplicant(t, r)
	assessmentID := createAssessment(t, r, applicantID)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/applicants/%s/calculate", applicantID), gin.H{
		"assessment_id": assessmentID,
		"facts": gin.H{
			"aadhaar_verified":  true,
			"pan_verified":      true,
			"monthly_upi_spend": 25000,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AssessmentID string         `json:"assessment_id"`
		ApplicantID  string         `json:"applicant_id"`
		Result       scoring.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, assessmentID, resp.AssessmentID)
	assert.Equal(t, applicantID, resp.ApplicantID)
	assert.GreaterOrEqual(t, resp.Result.FinalScore, 0.0)
	assert.LessOrEqual(t, resp.Result.FinalScore, 10.0)

	// The assessment is now persisted as completed with the same score.
	get := doJSON(r, http.MethodGet, "/api/v1/assessments/"+assessmentID, nil)
	require.Equal(t, http.StatusOK, get.Code)

	var assessment database.Assessment
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &assessment))
	assert.Equal(t, database.StatusCompleted, assessment.Status)
	assert.Equal(t, resp.Result.FinalScore, assessment.FinalScore)
	assert.NotNil(t, assessment.CompletedAt)
}

func TestCalculateRejectsCompletedAssessment(t *testing.T) {
	_, r := newTestApp(t)

	applicantID := createApplicant(t, r)
	assessmentID := createAssessment(t, r, applicantID)

	body := gin.H{"assessment_id": assessmentID}
	first := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/applicants/%s/calculate", applicantID), body)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/applicants/%s/calculate", applicantID), body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCalculateRejectsForeignAssessment(t *testing.T) {
	_, r := newTestApp(t)

	ownerID := createApplicant(t, r)
	otherID := createApplicant(t, r)
	assessmentID := createAssessment(t, r, ownerID)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/applicants/%s/calculate", otherID), gin.H{
		"assessment_id": assessmentID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuestionsEndpoint(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodGet, "/api/v1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []scoring.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 30)
}

func TestAdminEndpoints(t *testing.T) {
	_, r := newTestApp(t)

	applicantID := createApplicant(t, r)
	assessmentID := createAssessment(t, r, applicantID)

	calc := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/applicants/%s/calculate", applicantID), gin.H{
		"assessment_id": assessmentID,
	})
	require.Equal(t, http.StatusOK, calc.Code)

	list := doJSON(r, http.MethodGet, "/api/v1/admin/assessments", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var listResp struct {
		Assessments []database.AssessmentSummary `json:"assessments"`
		Count       int                          `json:"count"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listResp))
	require.Equal(t, 1, listResp.Count)
	assert.Equal(t, assessmentID, listResp.Assessments[0].ID)
	assert.Equal(t, "Ravi Kumar", listResp.Assessments[0].ApplicantName)

	csvResp := doJSON(r, http.MethodGet, "/api/v1/admin/assessments.csv", nil)
	require.Equal(t, http.StatusOK, csvResp.Code)
	assert.Contains(t, csvResp.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, csvResp.Body.String(), "assessment_id")
	assert.Contains(t, csvResp.Body.String(), assessmentID)

	stats := doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil)
	require.Equal(t, http.StatusOK, stats.Code)

	var statsResp database.ScoreStats
	require.NoError(t, json.Unmarshal(stats.Body.Bytes(), &statsResp))
	assert.Equal(t, int64(1), statsResp.TotalCompleted)
}

func TestMetricsEndpoint(t *testing.T) {
	_, r := newTestApp(t)

	w := doJSON(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Contains(t, stats, "total_requests")
}
