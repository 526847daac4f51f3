package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgo/hangar/internal/middleware"
	"github.com/forgo/hangar/internal/model"
	"github.com/forgo/hangar/internal/service"
)

// airplaneAttributeError is the response for an airplane body whose key set
// or values are wrong
func airplaneAttributeError() *model.APIError {
	return model.NewValidationError("Missing attribute/s or too many attributes")
}

// AirplaneHandler handles airplane HTTP requests
type AirplaneHandler struct {
	svc *service.AirplaneService
}

// NewAirplaneHandler creates a new airplane handler
func NewAirplaneHandler(svc *service.AirplaneService) *AirplaneHandler {
	return &AirplaneHandler{svc: svc}
}

// Create handles POST /airplanes. The body must carry exactly tail_number,
// type, and capacity, all non-null.
func (h *AirplaneHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pilot := middleware.GetSubject(ctx)

	fields, ok := decodeFullAirplane(r)
	if !ok {
		WriteError(w, airplaneAttributeError())
		return
	}

	airplane, err := h.svc.Create(ctx, pilot, *fields.TailNumber, *fields.Type, *fields.Capacity)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	airplane.FillSelf(requestBaseURL(r))
	WriteJSON(w, http.StatusCreated, airplane)
}

// Get handles GET /airplanes/{airplaneId}
func (h *AirplaneHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pilot := middleware.GetSubject(ctx)

	id, ok := pathID(r, "airplaneId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrAirplaneNotFound))
		return
	}

	airplane, err := h.svc.Get(ctx, id, pilot)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	airplane.FillSelf(requestBaseURL(r))
	WriteJSON(w, http.StatusOK, airplane)
}

// List handles GET /airplanes: the pilot's airplanes, paginated
func (h *AirplaneHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pilot := middleware.GetSubject(ctx)
	limit, offset := pageParams(r)

	airplanes, total, err := h.svc.List(ctx, pilot, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	base := requestBaseURL(r)
	for _, airplane := range airplanes {
		airplane.FillSelf(base)
	}

	WriteJSON(w, http.StatusOK, model.AirplaneList{
		Airplanes: airplanes,
		Total:     total,
		Next:      nextPageURL(base, "/airplanes", limit, offset, len(airplanes), total),
	})
}

// Patch handles PATCH /airplanes/{airplaneId}: partial update, null and
// absent fields ignored
func (h *AirplaneHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pilot := middleware.GetSubject(ctx)

	id, ok := pathID(r, "airplaneId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrAirplaneNotFound))
		return
	}

	var fields model.AirplaneFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		WriteError(w, airplaneAttributeError())
		return
	}

	airplane, err := h.svc.Update(ctx, id, pilot, fields)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	airplane.FillSelf(requestBaseURL(r))
	WriteJSON(w, http.StatusOK, airplane)
}

// Put handles PUT /airplanes/{airplaneId}: full replacement of the editable
// fields. Succeeds with 303 pointing at the updated airplane.
func (h *AirplaneHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pilot := middleware.GetSubject(ctx)

	id, ok := pathID(r, "airplaneId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrAirplaneNotFound))
		return
	}

	fields, ok := decodeFullAirplane(r)
	if !ok {
		WriteError(w, airplaneAttributeError())
		return
	}

	airplane, err := h.svc.Update(ctx, id, pilot, fields)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	airplane.FillSelf(requestBaseURL(r))
	w.Header().Set("Location", airplane.Self)
	WriteJSON(w, http.StatusSeeOther, airplane)
}

// Delete handles DELETE /airplanes/{airplaneId}. Carried cargo becomes
// unassigned.
func (h *AirplaneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pilot := middleware.GetSubject(ctx)

	id, ok := pathID(r, "airplaneId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrAirplaneNotFound))
		return
	}

	if err := h.svc.Delete(ctx, id, pilot); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeFullAirplane decodes a body that must carry exactly the full
// editable field set: tail_number, type, and capacity, all non-null and
// well-typed.
func decodeFullAirplane(r *http.Request) (model.AirplaneFields, bool) {
	raw, err := decodeRawBody(r)
	if err != nil || len(raw) != 3 {
		return model.AirplaneFields{}, false
	}

	var fields model.AirplaneFields
	for key, value := range raw {
		if isNull(value) {
			return model.AirplaneFields{}, false
		}
		switch key {
		case "tail_number":
			if json.Unmarshal(value, &fields.TailNumber) != nil {
				return model.AirplaneFields{}, false
			}
		case "type":
			if json.Unmarshal(value, &fields.Type) != nil {
				return model.AirplaneFields{}, false
			}
		case "capacity":
			if json.Unmarshal(value, &fields.Capacity) != nil {
				return model.AirplaneFields{}, false
			}
		default:
			return model.AirplaneFields{}, false
		}
	}

	if fields.TailNumber == nil || fields.Type == nil || fields.Capacity == nil {
		return model.AirplaneFields{}, false
	}
	return fields, true
}
