package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/service"
	"go.uber.org/zap"
)

const (
	defaultCacheMaxAge = 8
	defaultPageLimit   = 50

	headerCacheControl   = "Cache-Control"
	headerPageCount      = "X-Page-Count"
	headerNextPageAfter  = "X-Next-Page-After"
	headerNextPageBefore = "X-Next-Page-Before"
)

// ExposedHeaders are the response headers browsers may read across origins.
var ExposedHeaders = []string{headerPageCount, headerNextPageAfter, headerNextPageBefore}

// RESTHandler serves the explorer queries as JSON over HTTP.
type RESTHandler struct {
	explorer Explorer
	logger   *zap.Logger
}

func NewRESTHandler(explorer Explorer, logger *zap.Logger) *RESTHandler {
	return &RESTHandler{explorer: explorer, logger: logger.Named("rest")}
}

// Router builds the gin engine. Requests matching no route are passed to fallback when it is set.
func (h *RESTHandler) Router(fallback http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(h.logger),
		gzip.Gzip(gzip.DefaultCompression),
		defaultCacheControl(),
	)

	router.GET("/transactions/:transactionId", h.GetTransaction)
	router.POST("/transactions/search", h.SearchTransactions)
	router.GET("/addresses/:address/full-transactions-page", h.PageAddressTransactions)
	router.GET("/info/virtual-chain-blue-score", h.VirtualChainBlueScore)

	if fallback != nil {
		router.NoRoute(func(c *gin.Context) {
			// gin presets 404 for unmatched routes.
			c.Status(http.StatusOK)
			fallback.ServeHTTP(c.Writer, c.Request)
		})
	}
	return router
}

func (h *RESTHandler) GetTransaction(c *gin.Context) {
	inputs, err := boolQuery(c, "inputs", true)
	if err != nil {
		h.writeError(c, err)
		return
	}
	outputs, err := boolQuery(c, "outputs", true)
	if err != nil {
		h.writeError(c, err)
		return
	}
	mode, err := model.ParseResolveMode(c.Query("resolve_previous_outpoints"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	result, err := h.explorer.GetTransaction(c.Request.Context(), model.GetTransactionRequest{
		TransactionID:  c.Param("transactionId"),
		BlockHashHint:  c.Query("blockHash"),
		IncludeInputs:  inputs,
		IncludeOutputs: outputs,
		ResolveMode:    mode,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			setCacheMaxAge(c, service.NotFoundCacheTTL)
			c.JSON(http.StatusNotFound, gin.H{"detail": "Transaction not found"})
			return
		}
		h.writeError(c, err)
		return
	}

	setCacheMaxAge(c, result.CacheMaxAge)
	c.JSON(http.StatusOK, result.Transaction)
}

type searchBody struct {
	TransactionIDs      []string `json:"transactionIds"`
	AcceptingBlueScores *struct {
		Gte uint64 `json:"gte"`
		Lt  uint64 `json:"lt"`
	} `json:"acceptingBlueScores"`
}

func (h *RESTHandler) SearchTransactions(c *gin.Context) {
	var body searchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.writeError(c, fmt.Errorf("%w: %v", model.ErrInvalidRequest, err))
		return
	}
	fields, mode, acceptance, err := projectionQuery(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	req := model.SearchRequest{
		TransactionIDs: body.TransactionIDs,
		Fields:         fields,
		ResolveMode:    mode,
		Acceptance:     acceptance,
	}
	if body.AcceptingBlueScores != nil {
		req.BlueScoreRange = &model.BlueScoreRange{Gte: body.AcceptingBlueScores.Gte, Lt: body.AcceptingBlueScores.Lt}
	}

	result, err := h.explorer.SearchTransactions(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	setCacheMaxAge(c, result.CacheMaxAge)
	c.JSON(http.StatusOK, result.Transactions)
}

func (h *RESTHandler) PageAddressTransactions(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultPageLimit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	before, err := intQuery(c, "before", 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	after, err := intQuery(c, "after", 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	fields, mode, acceptance, err := projectionQuery(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	result, err := h.explorer.PageAddressTransactions(c.Request.Context(), model.AddressPageRequest{
		Address:     c.Param("address"),
		Limit:       int(limit),
		Before:      before,
		After:       after,
		Fields:      fields,
		ResolveMode: mode,
		Acceptance:  acceptance,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header(headerPageCount, strconv.Itoa(result.PageCount))
	if result.NextAfter != 0 {
		c.Header(headerNextPageAfter, strconv.FormatInt(result.NextAfter, 10))
	}
	if result.NextBefore != 0 {
		c.Header(headerNextPageBefore, strconv.FormatInt(result.NextBefore, 10))
	}
	setCacheMaxAge(c, result.CacheMaxAge)
	c.JSON(http.StatusOK, result.Transactions)
}

func (h *RESTHandler) VirtualChainBlueScore(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"blueScore": h.explorer.VirtualChainBlueScore()})
}

func (h *RESTHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.Header(headerCacheControl, "no-store")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "backend unavailable"})
	}
}

func projectionQuery(c *gin.Context) (model.Fields, model.ResolveMode, model.AcceptanceFilter, error) {
	fields, err := model.ParseFields(c.Query("fields"))
	if err != nil {
		return 0, "", "", err
	}
	mode, err := model.ParseResolveMode(c.Query("resolve_previous_outpoints"))
	if err != nil {
		return 0, "", "", err
	}
	acceptance, err := model.ParseAcceptanceFilter(c.Query("acceptance"))
	if err != nil {
		return 0, "", "", err
	}
	return fields, mode, acceptance, nil
}

func boolQuery(c *gin.Context, name string, def bool) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", model.ErrInvalidRequest, name)
	}
	return v, nil
}

func intQuery(c *gin.Context, name string, def int64) (int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", model.ErrInvalidRequest, name)
	}
	return v, nil
}

func setCacheMaxAge(c *gin.Context, seconds int) {
	if seconds > 0 {
		c.Header(headerCacheControl, fmt.Sprintf("public, max-age=%d", seconds))
	}
}

// defaultCacheControl sets a short cache lifetime on routed GET responses; handlers override it.
func defaultCacheControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && c.FullPath() != "" {
			setCacheMaxAge(c, defaultCacheMaxAge)
		}
		c.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
