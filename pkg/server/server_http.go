// Package server exposes the metadata resolution flow over HTTP: a Fiber
// application with named page routes feeding route-reversal selection, a
// resolution endpoint, and an admin surface for reloading tables.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/p0lemic/SIFO/pkg/metadata"
	metadatacfg "github.com/p0lemic/SIFO/pkg/metadata/config"
	"github.com/p0lemic/SIFO/pkg/server/internal/adapters"
	"github.com/p0lemic/SIFO/pkg/server/internal/ports"
	"github.com/p0lemic/SIFO/pkg/server/internal/ports/middleware"
)

// Config holds the configuration settings for the HTTP server
type Config struct {
	// AppName is the name of the application.
	AppName string `mapstructure:"app_name"`

	// Port is the TCP port on which the server will listen.
	Port int `mapstructure:"port"`

	// Addr is the address the server will bind to.
	Addr string `mapstructure:"addr"`

	// ServerHeader is the value of the Server header returned in HTTP responses.
	ServerHeader string `mapstructure:"server_header"`

	// AdminBearerToken is the token required to access admin-only endpoints.
	AdminBearerToken string `mapstructure:"admin_bearer_token"`

	// ConnectionReadTimeout defines the maximum duration an active connection is allowed to stay open.
	// Once this threshold is exceeded, the connection will be forcefully closed.
	ConnectionReadTimeout time.Duration `mapstructure:"connection_read_timeout_limit"`

	// MetadataDir is the base directory holding the per-language metadata
	// table resources (lang/metadata_<lang>.yaml and friends).
	MetadataDir string `mapstructure:"metadata_dir"`

	// RemoteSourceURL, when set, switches table loading from disk to the
	// remote configuration service at this base URL.
	RemoteSourceURL string `mapstructure:"remote_source_url"`

	// SupportedLanguages lists the language codes tables exist for.
	SupportedLanguages []string `mapstructure:"supported_languages"`

	// FallbackLanguage is used when content negotiation finds nothing acceptable.
	FallbackLanguage string `mapstructure:"fallback_language"`
}

// DefaultConfig provides a default configuration with reasonable values for local development.
var DefaultConfig = Config{
	AppName:               "SIFO Metadata API v0.0.0",
	Port:                  3000,
	Addr:                  "localhost",
	ServerHeader:          "SIFO Metadata API",
	AdminBearerToken:      uuid.NewString(),
	ConnectionReadTimeout: 10 * time.Second,
	MetadataDir:           "config",
	SupportedLanguages:    []string{"en", "es"},
	FallbackLanguage:      "en",
}

// ServerOption defines a functional option for configuring an HTTP server.
// These options allow for flexible setup of middlewares and configurations.
type ServerOption func(*ServerHTTP)

// WithConfig sets the configuration for the HTTP server using the provided Config.
// It initializes a new Fiber application with the specified server settings.
// Returns a ServerOption to apply during server setup.
func WithConfig(cfg Config) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg = cfg
		s.app = newFiberApp(cfg)
	}
}

// WithMiddleware adds a Fiber middleware handler to the HTTP server configuration.
// It returns a ServerOption that appends the given middleware to the server's middleware stack.
func WithMiddleware(f fiber.Handler) ServerOption {
	return func(s *ServerHTTP) {
		s.middleware = append(s.middleware, f)
	}
}

// WithTableSource sets the metadata table source for the HTTP server,
// replacing the source derived from the configuration (file loader, or remote
// source when RemoteSourceURL is set).
func WithTableSource(source metadata.TableSource) ServerOption {
	return func(s *ServerHTTP) {
		s.source = source
	}
}

// WithAdminBearerToken sets the admin bearer token used for authenticating
// admin routes on the HTTP server.
// It returns a ServerOption that applies this configuration to ServerHTTP.
func WithAdminBearerToken(token string) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg.AdminBearerToken = token
	}
}

// ServerHTTP represents the HTTP server instance, including configuration,
// Fiber app instance, middleware stack, and the metadata resolution services.
type ServerHTTP struct {
	cfg        Config               // cfg holds the server configuration settings.
	app        *fiber.App           // app is the Fiber application instance serving HTTP requests.
	middleware []fiber.Handler      // middleware is a list of Fiber middleware functions to be applied globally.
	source     metadata.TableSource // source loads per-language metadata tables.
	cache      *metadatacfg.Cache   // cache decorates source with per-language caching.
	resolver   *metadata.Resolver   // resolver selects and substitutes metadata templates.
}

// SocketAddr builds the address string for binding.
func (s *ServerHTTP) SocketAddr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.Port)
}

// ListenAndServe starts the HTTP server and begins listening on the configured socket address.
// It blocks until the server is stopped or an error occurs.
func (s *ServerHTTP) ListenAndServe(ctx context.Context) error {
	return s.app.Listen(s.SocketAddr())
}

// Shutdown gracefully shuts down the HTTP server using the provided context,
// allowing ongoing requests to complete within the context's deadline.
func (s *ServerHTTP) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// New creates and configures a new instance of ServerHTTP.
// It initializes the application with default settings, applies any optional
// functional configuration options passed via opts, wires the metadata table
// source, cache and resolver, and registers the middleware group and routes.
func New(opts ...ServerOption) *ServerHTTP {
	srv := &ServerHTTP{
		cfg: DefaultConfig,
		app: newFiberApp(DefaultConfig),
	}

	for _, o := range opts {
		o(srv)
	}

	if srv.source == nil {
		if srv.cfg.RemoteSourceURL != "" {
			srv.source = metadatacfg.NewRemoteSource(srv.cfg.RemoteSourceURL)
		} else {
			srv.source = metadatacfg.NewLoader(srv.cfg.MetadataDir)
		}
	}
	srv.cache = metadatacfg.NewCache(srv.source)
	srv.resolver = metadata.NewResolver(srv.cache, adapters.NewFiberRouteReverser(srv.app))

	group := middleware.BasicMiddlewareGroup(middleware.BasicMiddlewareGroupConfig{
		EnableStackTrace: true,
		Locale: middleware.LocaleMiddlewareConfig{
			Supported: srv.cfg.SupportedLanguages,
			Fallback:  srv.cfg.FallbackLanguage,
		},
	})
	for _, m := range group {
		srv.app.Use(m)
	}
	for _, m := range srv.middleware {
		srv.app.Use(m)
	}

	srv.registerRoutes()
	return srv
}

// registerRoutes declares the page routes and the API surface. Page routes
// are named: their names double as metadata table keys through route
// reversal.
func (s *ServerHTTP) registerRoutes() {
	pages := ports.NewPagesHandler(s.resolver)
	s.app.Get("/", pages.HandleHome).Name("home")
	s.app.Get("/users/:name", pages.HandleUserProfile).Name("user_profile")

	api := s.app.Group("/api/v1")
	api.Get("/metadata", ports.NewMetadataHandler(s.resolver).Handle)

	admin := api.Group("/admin", middleware.BearerTokenAuthorizationMiddleware(s.cfg.AdminBearerToken))
	admin.Post("/tables/reload", ports.NewReloadTablesHandler(s.cache).Handle)
}

// newFiberApp creates and returns a new instance of a fiber.App with the provided configuration.
// The app is configured with case-sensitive routing, strict routing, custom server headers,
// and read timeout settings.
func newFiberApp(cfg Config) *fiber.App {
	return fiber.New(fiber.Config{
		CaseSensitive: true,
		StrictRouting: true,
		ServerHeader:  cfg.ServerHeader,
		AppName:       cfg.AppName,
		ReadTimeout:   cfg.ConnectionReadTimeout,
		ErrorHandler:  ports.ErrorHandler(),
	})
}
