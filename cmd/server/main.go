package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Bryan-Binu-2006/Altscore/internal/cache"
	"github.com/Bryan-Binu-2006/Altscore/internal/database"
	"github.com/Bryan-Binu-2006/Altscore/internal/errors"
	"github.com/Bryan-Binu-2006/Altscore/internal/export"
	"github.com/Bryan-Binu-2006/Altscore/internal/mlclient"
	"github.com/Bryan-Binu-2006/Altscore/internal/monitoring"
	"github.com/Bryan-Binu-2006/Altscore/internal/ratelimit"
	"github.com/Bryan-Binu-2006/Altscore/internal/scoring"
	"github.com/Bryan-Binu-2006/Altscore/internal/security"
	"github.com/Bryan-Binu-2006/Altscore/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// application bundles the wired components the HTTP layer depends on.
type application struct {
	logger    *monitoring.Logger
	metrics   *monitoring.Metrics
	db        *database.DB
	repo      *database.Repository
	redis     *ratelimit.RedisClient
	limiter   *ratelimit.RateLimiter
	predictor *mlclient.Client
	engine    *scoring.Engine
	cache     *cache.Cache
	rlConfig  ratelimit.Config
}

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	appLogger := monitoring.NewLogger()
	appMetrics := monitoring.NewMetrics()

	// Configuration from environment with defaults
	port := getEnvOrDefault("PORT", "8080")
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)
	mlServiceURL := os.Getenv("ML_SERVICE_URL")
	mlTimeout := getEnvDuration("ML_TIMEOUT", 5*time.Second)
	cacheTTL := getEnvDuration("CACHE_TTL", 15*time.Minute)
	retentionDays := getEnvInt("RETENTION_DAYS", 365)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	db, err := database.NewDB(dataDir)
	if err != nil {
		appLogger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	// Redis is optional: the rate limiter degrades to in-memory token
	// buckets when it is absent or unreachable.
	redisClient, err := ratelimit.NewRedisClient(redisAddr, redisPassword, redisDB)
	if err != nil {
		appLogger.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()

	rlConfig := ratelimit.Config{
		IPLimitPerMin:        getEnvInt("RATE_LIMIT_IP_PER_MIN", ratelimit.DefaultConfig().IPLimitPerMin),
		ApplicantLimitPerDay: getEnvInt("RATE_LIMIT_APPLICANT_PER_DAY", ratelimit.DefaultConfig().ApplicantLimitPerDay),
		BurstMultiplier:      getEnvInt("RATE_LIMIT_BURST_MULTIPLIER", ratelimit.DefaultConfig().BurstMultiplier),
	}

	predictor := mlclient.NewClient(mlServiceURL, mlTimeout, appLogger, appMetrics)
	if predictor.Enabled() {
		appLogger.Info("External ML predictor configured", "url", mlServiceURL)
	} else {
		appLogger.Info("No ML predictor configured, using built-in AI heuristic")
	}

	app := &application{
		logger:    appLogger,
		metrics:   appMetrics,
		db:        db,
		repo:      repo,
		redis:     redisClient,
		limiter:   ratelimit.NewRateLimiter(redisClient, rlConfig, appMetrics),
		predictor: predictor,
		engine:    scoring.NewEngine(),
		cache:     cache.NewCache(cacheTTL),
		rlConfig:  rlConfig,
	}

	// Retention housekeeping: purge completed assessments past the window.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			cutoff := time.Now().AddDate(0, 0, -retentionDays)
			purged, err := repo.PurgeAssessmentsBefore(cutoff)
			if err != nil {
				appLogger.Error("Assessment retention purge failed", "error", err)
				continue
			}
			if purged > 0 {
				appLogger.Info("Purged expired assessments", "count", purged, "cutoff", cutoff)
			}
		}
	}()

	r := app.routes()

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		appLogger.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Server exited")
}

// routes builds the gin engine with the full middleware chain and API surface.
func (app *application) routes() *gin.Engine {
	r := gin.New()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(monitoring.MonitoringMiddleware(app.metrics, app.logger))
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())
	r.Use(security.SecurityHeadersMiddleware())
	r.Use(app.limiter.IPRateLimitMiddleware())
	r.Use(app.cache.Middleware(app.metrics))

	r.GET("/health", app.handleHealth)

	api := r.Group("/api/v1")
	api.POST("/score", app.handleScore)
	api.POST("/applicants", app.handleCreateApplicant)
	api.GET("/applicants", app.handleListApplicants)
	api.GET("/applicants/:applicantId", app.handleGetApplicant)
	api.POST("/applicants/:applicantId/calculate", app.limiter.ApplicantRateLimitMiddleware(), app.handleCalculate)
	api.POST("/assessments", app.handleCreateAssessment)
	api.GET("/assessments/:assessmentId", app.handleGetAssessment)
	api.GET("/questions", app.handleQuestions)

	admin := api.Group("/admin")
	admin.GET("/assessments", app.handleAdminAssessments)
	admin.GET("/assessments.csv", app.handleAdminAssessmentsCSV)
	admin.GET("/stats", app.handleAdminStats)

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.metrics.GetStats())
	})

	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.cache.Stats())
	})

	r.GET("/pools/database", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "database",
			"stats": app.db.GetPoolStats(),
		})
	})

	r.GET("/pools/redis", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "redis",
			"stats": app.redis.GetPoolStats(),
		})
	})

	return r
}

func (app *application) handleHealth(c *gin.Context) {
	redisStatus := "disabled"
	if app.redis.IsEnabled() {
		redisStatus = "ok"
		if err := app.redis.HealthCheck(c.Request.Context()); err != nil {
			redisStatus = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"timestamp":  time.Now().Format(time.RFC3339),
		"version":    "1.0.0",
		"database":   app.db.GetPoolStats(),
		"redis":      redisStatus,
		"ml_service": gin.H{"enabled": app.predictor.Enabled(), "breaker": app.predictor.BreakerState()},
	})
}

// handleScore runs the pipeline statelessly: nothing is persisted and the
// response is cacheable on the request body.
func (app *application) handleScore(c *gin.Context) {
	var req types.ScoreRequest
	if err := c.BindJSON(&req); err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	start := time.Now()
	result := app.engine.Score(scoring.Input{
		Facts:        req.Facts,
		Answers:      req.Answers,
		MLPrediction: req.MLPrediction,
	})

	app.metrics.RecordScore(string(result.Category))
	app.logger.ScoringLogger("", result.FinalScore, string(result.Category), result.AI.UsedFallback, time.Since(start))

	c.JSON(http.StatusOK, types.ScoreResponse{Result: result})
}

func (app *application) handleCreateApplicant(c *gin.Context) {
	var req types.CreateApplicantRequest
	if err := c.BindJSON(&req); err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	applicant := database.NewApplicant(req.Name, req.Phone, req.Email, c.ClientIP())
	applicant.Age = req.Age
	applicant.City = req.City
	applicant.State = req.State
	if err := app.repo.CreateApplicant(applicant); err != nil {
		appErr := errors.NewDatabaseError("create applicant", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusCreated, applicant)
}

func (app *application) handleListApplicants(c *gin.Context) {
	limit := queryInt(c, "limit", 50, 200)
	offset := queryInt(c, "offset", 0, 1<<31-1)

	applicants, err := app.repo.ListApplicants(limit, offset)
	if err != nil {
		appErr := errors.NewDatabaseError("list applicants", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applicants": applicants,
		"count":      len(applicants),
	})
}

func (app *application) handleGetApplicant(c *gin.Context) {
	applicant, err := app.repo.GetApplicant(c.Param("applicantId"))
	if err != nil {
		appErr := repoError("applicant", c.Param("applicantId"), err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, applicant)
}

func (app *application) handleCreateAssessment(c *gin.Context) {
	var req types.CreateAssessmentRequest
	if err := c.BindJSON(&req); err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if _, err := app.repo.GetApplicant(req.ApplicantID); err != nil {
		appErr := repoError("applicant", req.ApplicantID, err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	infoJSON, err := json.Marshal(req.EssentialInfo)
	if err != nil {
		appErr := errors.NewInternalError("failed to encode essential info", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	assessment := database.NewAssessment(req.ApplicantID, string(infoJSON))
	if err := app.repo.CreateAssessment(assessment); err != nil {
		appErr := errors.NewDatabaseError("create assessment", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	app.metrics.IncrementAssessmentsCreated()
	c.JSON(http.StatusCreated, assessment)
}

func (app *application) handleGetAssessment(c *gin.Context) {
	assessment, err := app.repo.GetAssessment(c.Param("assessmentId"))
	if err != nil {
		appErr := repoError("assessment", c.Param("assessmentId"), err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// handleCalculate runs the full pipeline against a pending assessment and
// persists the outcome. Limited per applicant per day.
func (app *application) handleCalculate(c *gin.Context) {
	applicantID := c.Param("applicantId")

	var req types.CalculateRequest
	if err := c.BindJSON(&req); err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	assessment, err := app.repo.GetAssessment(req.AssessmentID)
	if err != nil {
		appErr := repoError("assessment", req.AssessmentID, err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if assessment.ApplicantID != applicantID {
		appErr := errors.NewValidationError("assessment does not belong to this applicant")
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if assessment.Status == database.StatusCompleted {
		appErr := errors.NewValidationError("assessment already completed")
		errors.LogError(c, appErr)
		c.JSON(http.StatusConflict, appErr)
		return
	}

	// The persisted count backs the daily limit even when the rate limiter
	// state was lost (restart, Redis flush).
	completedToday, err := app.repo.CountCompletedToday(applicantID)
	if err != nil {
		appErr := errors.NewDatabaseError("count completed assessments", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}
	if completedToday >= app.rlConfig.ApplicantLimitPerDay {
		appErr := errors.NewRateLimitError("86400")
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	input := scoring.Input{Facts: req.Facts, Answers: req.Answers}

	if app.predictor.Enabled() {
		var info database.EssentialInfo
		if assessment.InfoJSON != "" {
			if err := json.Unmarshal([]byte(assessment.InfoJSON), &info); err != nil {
				app.logger.Warn("Failed to decode essential info for prediction", "assessment_id", assessment.ID, "error", err)
			}
		}
		input.MLPrediction = app.predictor.Predict(c.Request.Context(), mlclient.PredictRequest{
			Info:    info,
			Signals: scoring.SignalsFromFacts(req.Facts),
		})
	}

	start := time.Now()
	result := app.engine.Score(input)

	inputJSON, err := json.Marshal(input)
	if err != nil {
		appErr := errors.NewInternalError("failed to encode scoring input", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		appErr := errors.NewInternalError("failed to encode scoring result", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	assessment.InputJSON = string(inputJSON)
	assessment.ResultJSON = string(resultJSON)
	assessment.FinalScore = result.FinalScore
	assessment.Category = string(result.Category)
	assessment.TradScore = result.Traditional.Score
	assessment.PsychScore = result.Psychometric.Score
	assessment.AIScore = result.AI.Score
	assessment.AIFallback = result.AI.UsedFallback

	if err := app.repo.CompleteAssessment(assessment); err != nil {
		appErr := errors.NewDatabaseError("complete assessment", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	app.metrics.RecordScore(string(result.Category))
	app.logger.ScoringLogger(applicantID, result.FinalScore, string(result.Category), result.AI.UsedFallback, time.Since(start))

	c.JSON(http.StatusOK, types.ScoreResponse{
		AssessmentID: assessment.ID,
		ApplicantID:  applicantID,
		Result:       result,
	})
}

func (app *application) handleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": scoring.Questions()})
}

func (app *application) handleAdminAssessments(c *gin.Context) {
	limit := queryInt(c, "limit", 50, 200)
	offset := queryInt(c, "offset", 0, 1<<31-1)

	summaries, err := app.repo.ListCompletedAssessments(limit, offset)
	if err != nil {
		appErr := errors.NewDatabaseError("list assessments", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": summaries,
		"count":       len(summaries),
	})
}

func (app *application) handleAdminAssessmentsCSV(c *gin.Context) {
	summaries, err := app.repo.ListCompletedAssessments(queryInt(c, "limit", 1000, 10000), 0)
	if err != nil {
		appErr := errors.NewDatabaseError("list assessments", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	data, err := export.AssessmentsCSV(summaries)
	if err != nil {
		appErr := errors.NewInternalError("failed to render csv export", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="assessments.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (app *application) handleAdminStats(c *gin.Context) {
	stats, err := app.repo.GetScoreStats()
	if err != nil {
		appErr := errors.NewDatabaseError("aggregate score stats", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// repoError maps a repository failure to the right API error.
func repoError(resource, id string, err error) *errors.AppError {
	if err == database.ErrNotFound {
		return errors.NewNotFoundError(resource, id)
	}
	return errors.NewDatabaseError("get "+resource, err)
}

func queryInt(c *gin.Context, name string, fallback, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > max {
		return fallback
	}
	return v
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
