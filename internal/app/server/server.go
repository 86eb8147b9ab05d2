package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/config"
	"github.com/pac-cee/bot-logic-trade/pkg/errors"
	"github.com/pac-cee/bot-logic-trade/pkg/httplib/healthcheck"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
	"github.com/pac-cee/bot-logic-trade/pkg/util"
)

// Server is the HTTP transport over the submission and query services.
type Server struct {
	httpServer *http.Server
	submitter  orderv1.Submitter
	viewer     orderv1.BookViewer
	logger     *logger.Logger
}

// New wires the HTTP routes: POST /order, GET /orderbook and the GET /health
// probe, which is answered by the healthcheck middleware before routing.
func New(cfg config.AppConfig, submitter orderv1.Submitter, viewer orderv1.BookViewer, log *logger.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		submitter: submitter,
		viewer:    viewer,
		logger:    log,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID())
	router.POST("/order", s.submitOrder)
	router.GET("/orderbook", s.getOrderBook)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: healthcheck.HealthCheck{}.Handler(router),
	}

	return s
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("http server listening", logger.Field{
		Key:   "addr",
		Value: s.httpServer.Addr,
	})

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestID seeds every request context with an id for log correlation,
// honoring an inbound X-Request-ID header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := util.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) submitOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req orderv1.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  errors.GeneralBadRequestError,
		})
		return
	}

	order, err := s.submitter.Submit(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
			Key:   "action",
			Value: "submit_order",
		})

		code := errors.CodeFromError(err)
		c.JSON(statusFromCode(code), gin.H{
			"error": err.Error(),
			"code":  code,
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *Server) getOrderBook(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := s.viewer.ListOpenOrders(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
			Key:   "action",
			Value: "list_open_orders",
		})

		code := errors.CodeFromError(err)
		c.JSON(statusFromCode(code), gin.H{
			"error": err.Error(),
			"code":  code,
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

func statusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ValidationError, errors.GeneralBadRequestError:
		return http.StatusBadRequest
	case errors.OrderNotFoundError, errors.GeneralNotFoundError:
		return http.StatusNotFound
	case errors.MatchLockError:
		return http.StatusServiceUnavailable
	case errors.PersistenceError,
		errors.RedisConnectionError,
		errors.RedisGetError,
		errors.RedisSetError,
		errors.RedisSetNXError,
		errors.RedisDelError,
		errors.RedisIncrError,
		errors.RedisEvalError,
		errors.RedisZAddError,
		errors.RedisZRemError,
		errors.RedisZRangeError,
		errors.RedisTxError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
