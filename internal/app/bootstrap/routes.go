// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"net/http"

	errorsfeature "github.com/dalemusser/resourcehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/resourcehub/internal/app/features/health"
	loginfeature "github.com/dalemusser/resourcehub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/resourcehub/internal/app/features/logout"
	resourcesfeature "github.com/dalemusser/resourcehub/internal/app/features/resources"
	_ "github.com/dalemusser/resourcehub/internal/app/features/shared/views"
	groupstore "github.com/dalemusser/resourcehub/internal/app/store/groups"
	userstore "github.com/dalemusser/resourcehub/internal/app/store/users"
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for the app.
//
// It is called after configuration, DB connections, schema setup, and the
// Startup hook have completed. It initializes the session manager and
// template engine, applies session and CSRF middleware, and mounts the
// feature routers: health, login, logout, and the resource pages at "/".
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Base view-model construction needs the session manager for notices.
	viewdata.Init(sessionMgr)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// Uploaded resource files live on local disk; downloads are served
	// through the authenticated download route.
	fileStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// All form posts carry a CSRF token.
	r.Use(csrf.Protect([]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded files are only visible to signed-in users.
	r.Group(func(pr chi.Router) {
		pr.Use(sessionMgr.RequireSignedIn)
		pr.Handle(appCfg.StorageLocalURL+"/*", http.StripPrefix(appCfg.StorageLocalURL+"/",
			http.FileServer(http.Dir(appCfg.StorageLocalPath))))
	})

	// Authentication
	users := userstore.New(deps.MongoDatabase)
	groups := groupstore.New(deps.MongoDatabase)

	loginHandler := loginfeature.NewHandler(users, groups, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Resource pages: the list is the home page.
	resHandler := resourcesfeature.NewHandler(deps.MongoDatabase, fileStore, sessionMgr, errLog, logger)
	r.Mount("/", resourcesfeature.Routes(resHandler, sessionMgr))

	return r, nil
}
