package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	officeserrors "offices/internal/offices/errors"
	"offices/internal/offices/service"
	"offices/internal/offices/validator"
	"offices/pkg/config"
	apperrors "offices/pkg/errors"
	httputil "offices/pkg/http"
	"offices/pkg/model"
	"offices/pkg/sanitizer"
)

const (
	officesPath = "/api/v1/offices"
	officePath  = officesPath + "/:id"
	statusPath  = officePath + "/status"

	resourceOffice = "Office"
)

// Guard wraps a route handle, e.g. with a role check.
type Guard func(httprouter.Handle) httprouter.Handle

type OfficeHandler struct {
	service   service.OfficeService
	validator *validator.OfficeValidator
	cfg       *config.Config
	guard     Guard
}

func NewOfficeHandler(svc service.OfficeService, v *validator.OfficeValidator, cfg *config.Config, guard Guard) *OfficeHandler {
	if guard == nil {
		guard = func(next httprouter.Handle) httprouter.Handle { return next }
	}
	return &OfficeHandler{
		service:   svc,
		validator: v,
		cfg:       cfg,
		guard:     guard,
	}
}

func (h *OfficeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(officesPath, h.GetAll)
	router.GET(officePath, h.Get)
	router.POST(officesPath, h.guard(h.Create))
	router.PUT(officePath, h.guard(h.Update))
	router.PUT(statusPath, h.guard(h.ChangeStatus))
}

func (h *OfficeHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	offices, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, "GetAll", h.mapError(err, ""))
		return
	}

	if err := httputil.WriteSuccess(w, offices); err != nil {
		h.cfg.Log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *OfficeHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	office, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "Get", h.mapError(err, id))
		return
	}
	if office == nil {
		h.writeError(w, "Get", apperrors.NotFoundWithID(resourceOffice, id))
		return
	}

	if err := httputil.WriteSuccess(w, office); err != nil {
		h.cfg.Log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *OfficeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in *model.OfficeCreate
	if appErr := h.decode(r, &in); appErr != nil {
		h.writeError(w, "Create", appErr)
		return
	}

	if in != nil {
		sanitizer.SanitizeOfficeCreate(in)
		if err := h.validator.ValidateCreate(in); err != nil {
			h.writeError(w, "Create", h.mapError(err, ""))
			return
		}
	}

	office, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, "Create", h.mapError(err, ""))
		return
	}
	if office == nil {
		h.writeError(w, "Create", apperrors.InvalidInput("request body is required"))
		return
	}

	w.Header().Set("Location", officesPath+"/"+office.ID)
	if err := httputil.WriteCreated(w, office); err != nil {
		h.cfg.Log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *OfficeHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var in *model.OfficeUpdate
	if appErr := h.decode(r, &in); appErr != nil {
		h.writeError(w, "Update", appErr)
		return
	}
	if in == nil {
		h.writeError(w, "Update", apperrors.InvalidInput("request body is required"))
		return
	}

	sanitizer.SanitizeOfficeUpdate(in)
	if err := h.validator.ValidateUpdate(in); err != nil {
		h.writeError(w, "Update", h.mapError(err, id))
		return
	}

	office, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, "Update", h.mapError(err, id))
		return
	}
	if office == nil {
		h.writeError(w, "Update", apperrors.NotFoundWithID(resourceOffice, id))
		return
	}

	if err := httputil.WriteSuccess(w, office); err != nil {
		h.cfg.Log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *OfficeHandler) ChangeStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.ChangeStatus(r.Context(), id); err != nil {
		h.writeError(w, "ChangeStatus", h.mapError(err, id))
		return
	}

	httputil.WriteNoContent(w)
}

// decode reads a JSON body into dst. An empty body or a literal null leaves
// dst nil.
func (h *OfficeHandler) decode(r *http.Request, dst any) *apperrors.AppError {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperrors.PayloadTooLarge(int(maxBytesErr.Limit))
	}
	return apperrors.InvalidInput("invalid request body")
}

func (h *OfficeHandler) mapError(err error, id string) *apperrors.AppError {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		details := make(map[string]any, len(validationErrs))
		for _, ve := range validationErrs {
			details[ve.Field] = ve.Message
		}
		return apperrors.Validation("invalid office", details)
	case errors.Is(err, officeserrors.ErrInvalidID):
		return apperrors.InvalidInput("office id must be a UUID")
	case errors.Is(err, officeserrors.ErrNotFound):
		return apperrors.NotFoundWithID(resourceOffice, id)
	case errors.Is(err, officeserrors.ErrConflict):
		return apperrors.Conflict("office was modified concurrently, retry the request")
	default:
		return apperrors.Internal("An unexpected error occurred", err)
	}
}

func (h *OfficeHandler) writeError(w http.ResponseWriter, handler string, appErr *apperrors.AppError) {
	switch status := appErr.StatusCode(); {
	case status >= http.StatusInternalServerError:
		h.cfg.Log.Error("Office request failed", "handler", handler, "error", appErr)
	case status == http.StatusUnprocessableEntity:
		h.cfg.Log.Warn("Office request rejected", "handler", handler, "details", appErr.Details)
	}
	if err := httputil.WriteError(w, appErr); err != nil {
		h.cfg.Log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", err)
	}
}
