package router

import (
	"net/http"
	"os"
	"strings"

	docs "github.com/tripfolio/backend/api"
	"github.com/tripfolio/backend/internal/controllers"
	"github.com/tripfolio/backend/internal/controllers/healthz"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares.
//
// The returned teardown function releases all resources the router
// holds outside of its own memory and must be called when the router
// is no longer used.
func Config() (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, nil, err
	}

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	docs.SwaggerInfo.Title = "Tripfolio"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Tripfolio, a group trip planning tool. Check out the source code at https://github.com/tripfolio/backend."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API setup
	api := group.Group("/api")
	{
		api.GET("", GetAPI)
		api.OPTIONS("", OptionsAPI)
	}

	controllers.RegisterDestinationRoutes(api.Group("/Destinations"))
	controllers.RegisterActivityRoutes(api.Group("/Activities"))
	controllers.RegisterMemberRoutes(api.Group("/Members"))
	controllers.RegisterActivityMemberRoutes(api.Group("/ActivityMembers"))
	controllers.RegisterExpenseRoutes(api.Group("/Expenses"))
	controllers.RegisterActivityRatingRoutes(api.Group("/ActivityRatings"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"`   // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`        // Healthz endpoint
	Version string `json:"version" example:"https://example.com/version"`        // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/metrics"`        // Endpoint returning Prometheus metrics
	API     string `json:"api" example:"https://example.com/api"`                // List endpoint for all API endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			API:     url + "/api",
		},
	})
}

type VersionResponse struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Version: version,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"`
}

type APILinks struct {
	Destinations    string `json:"destinations" example:"https://example.com/api/Destinations"`
	Activities      string `json:"activities" example:"https://example.com/api/Activities"`
	Members         string `json:"members" example:"https://example.com/api/Members"`
	ActivityMembers string `json:"activityMembers" example:"https://example.com/api/ActivityMembers"`
	Expenses        string `json:"expenses" example:"https://example.com/api/Expenses"`
	ActivityRatings string `json:"activityRatings" example:"https://example.com/api/ActivityRatings"`
}

// @Summary		API endpoints
// @Description	Returns general information about the API
// @Tags			General
// @Success		200	{object}	APIResponse
// @Router			/api [get]
func GetAPI(c *gin.Context) {
	url := httputil.RequestURL(c)

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Destinations:    url + "/Destinations",
			Activities:      url + "/Activities",
			Members:         url + "/Members",
			ActivityMembers: url + "/ActivityMembers",
			Expenses:        url + "/Expenses",
			ActivityRatings: url + "/ActivityRatings",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
