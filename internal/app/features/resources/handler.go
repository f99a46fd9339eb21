// internal/app/features/resources/handler.go
package resources

import (
	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the resource pages: the paginated list, the detail view,
// create/update/delete flows, and file downloads.
//
// It is constructed once at startup in bootstrap, using the shared Mongo
// database handle, file storage backend, session manager, and logger.
type Handler struct {
	DB         *mongo.Database
	Resources  *resourcestore.Store
	Storage    storage.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs a resources Handler bound to the given dependencies.
func NewHandler(
	db *mongo.Database,
	store storage.Store,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		DB:         db,
		Resources:  resourcestore.New(db),
		Storage:    store,
		SessionMgr: sessionMgr,
		Log:        logger,
		ErrLog:     errLog,
	}
}
