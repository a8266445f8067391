package petcareserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	platformpostgres "github.com/petcare/petcare-api/internal/platform/postgres"
	platformredis "github.com/petcare/petcare-api/internal/platform/redis"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

const (
	backendConnected = "connected"
	backendError     = "error"
	backendDisabled  = "disabled"
)

// HealthResponse reports backend connectivity without exposing internals.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	DB      string `json:"db"`
	Redis   string `json:"redis"`
	Profile string `json:"profile"`
}

// HealthAPI pings the configured backends. A nil backend runs in memory and reports disabled.
type HealthAPI struct {
	profile rules.Name
	db      *gorm.DB
	redis   *goredis.Client
}

func NewHealthAPI(profile rules.Name, db *gorm.DB, redis *goredis.Client) HealthAPI {
	return HealthAPI{profile: profile, db: db, redis: redis}
}

// Get /health
// @Summary Verifica a saúde da API
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (api *HealthAPI) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	resp := HealthResponse{DB: backendDisabled, Redis: backendDisabled, Profile: string(api.profile)}
	if api.db != nil {
		resp.DB = status(platformpostgres.Ping(ctx, api.db))
	}
	if api.redis != nil {
		resp.Redis = status(platformredis.Ping(ctx, api.redis))
	}
	resp.OK = resp.DB != backendError && resp.Redis != backendError

	code := http.StatusOK
	if !resp.OK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

func status(err error) string {
	if err != nil {
		return backendError
	}
	return backendConnected
}
