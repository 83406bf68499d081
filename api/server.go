package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quickmart/supplychain/cache"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/notification"
	"github.com/quickmart/supplychain/util"
	"github.com/quickmart/supplychain/worker"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the supply chain service.
type Server struct {
	config          util.Config
	store           db.Store
	sender          notification.SMSSender
	liquidityCache  cache.LiquidityCache
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	config util.Config,
	store db.Store,
	sender notification.SMSSender,
	liquidityCache cache.LiquidityCache,
	taskDistributor worker.TaskDistributor,
) (*Server, error) {
	server := &Server{
		config:          config,
		store:           store,
		sender:          sender,
		liquidityCache:  liquidityCache,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	// 生产环境设置 Release 模式
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// 安全响应头中间件
	router.Use(SecurityHeadersMiddleware())
	if server.config.Environment == "production" {
		router.Use(HSTSMiddleware(31536000))
	}

	// 请求追踪中间件（生成 X-Request-ID）
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())

	// 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 全局超时中间件：防止慢查询导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// 健康检查端点（供 Nginx/K8s 使用）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	// Swagger API 文档（开发环境）
	if server.config.Environment == "development" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// API v1
	v1 := router.Group("/v1")

	// 需求预测
	v1.POST("/forecasts/generate", server.generateForecasts)
	v1.GET("/forecasts", server.listForecasts)

	// 库存流动性与调拨
	v1.GET("/inventory/liquidity", server.getInventoryLiquidity)
	v1.POST("/inventory/rebalance", server.rebalanceInventory)

	// 配送路线打包
	v1.POST("/delivery/routes/bundle", server.bundleRoutes)
	v1.GET("/delivery/routes", server.listRoutes)

	// 智能储物柜取件
	lockerGroup := v1.Group("/lockers")
	lockerGroup.POST("/pickups", server.createLockerPickup)
	lockerGroup.GET("/pickups", server.listLockerPickups)
	lockerGroup.GET("/pickups/:id", server.getLockerPickup)
	// OTP 下发与核销限流更严格
	lockerGroup.POST("/pickups/otp", rateLimiter.SensitiveAPIMiddleware(10), server.requestPickupOtp)
	lockerGroup.POST("/pickups/verify", rateLimiter.SensitiveAPIMiddleware(10), server.verifyPickup)

	// 演示数据
	v1.POST("/fixtures/seed", server.seedFixtures)

	server.router = router
}

// Start runs the HTTP server on a specific address
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the underlying gin router, used by main for graceful
// shutdown via http.Server and by tests for ServeHTTP.
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck godoc
// @Summary 健康检查
// @Description 进程存活检查，不触达依赖
// @Tags 运维
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "supplychain-api",
	})
}

// readinessCheck godoc
// @Summary 就绪检查
// @Description 检查数据库连接是否可用
// @Tags 运维
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ready [get]
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("readiness check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "supplychain-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
