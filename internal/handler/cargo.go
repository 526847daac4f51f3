package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgo/hangar/internal/model"
	"github.com/forgo/hangar/internal/service"
)

// cargoAttributeError is the response for a cargo body missing a required
// attribute or carrying an empty one
func cargoAttributeError() *model.APIError {
	return model.NewValidationError("The request object is missing at least one of the required attributes")
}

// CargoHandler handles cargo HTTP requests, including placing cargo on
// airplanes and taking it off
type CargoHandler struct {
	svc         *service.CargoService
	assignments *service.AssignmentService
}

// NewCargoHandler creates a new cargo handler
func NewCargoHandler(svc *service.CargoService, assignments *service.AssignmentService) *CargoHandler {
	return &CargoHandler{svc: svc, assignments: assignments}
}

// Create handles POST /cargo. Both weight and item are required; a zero
// weight or empty item counts as missing.
func (h *CargoHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, ok := decodeFullCargo(r)
	if !ok {
		WriteError(w, cargoAttributeError())
		return
	}

	cargo, err := h.svc.Create(ctx, *fields.Weight, *fields.Item)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	cargo.FillSelf(requestBaseURL(r))
	WriteJSON(w, http.StatusCreated, cargo)
}

// Get handles GET /cargo/{cargoId}
func (h *CargoHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "cargoId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrCargoNotFound))
		return
	}

	cargo, err := h.svc.Get(ctx, id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	cargo.FillSelf(requestBaseURL(r))
	WriteJSON(w, http.StatusOK, cargo)
}

// List handles GET /cargo: every cargo record, paginated
func (h *CargoHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := pageParams(r)

	cargos, total, err := h.svc.List(ctx, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	base := requestBaseURL(r)
	for _, cargo := range cargos {
		cargo.FillSelf(base)
	}

	WriteJSON(w, http.StatusOK, model.CargoList{
		Cargos: cargos,
		Total:  total,
		Next:   nextPageURL(base, "/cargo", limit, offset, len(cargos), total),
	})
}

// Patch handles PATCH /cargo/{cargoId}: partial update, null and absent
// fields ignored
func (h *CargoHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "cargoId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrCargoNotFound))
		return
	}

	var fields model.CargoFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		WriteError(w, cargoAttributeError())
		return
	}

	cargo, err := h.svc.Update(ctx, id, fields)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	cargo.FillSelf(requestBaseURL(r))
	WriteJSON(w, http.StatusOK, cargo)
}

// Put handles PUT /cargo/{cargoId}: full replacement of the editable
// fields. Succeeds with 303 pointing at the updated cargo.
func (h *CargoHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "cargoId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrCargoNotFound))
		return
	}

	fields, ok := decodeFullCargo(r)
	if !ok {
		WriteError(w, cargoAttributeError())
		return
	}

	cargo, err := h.svc.Update(ctx, id, fields)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	cargo.FillSelf(requestBaseURL(r))
	w.Header().Set("Location", cargo.Self)
	WriteJSON(w, http.StatusSeeOther, cargo)
}

// Delete handles DELETE /cargo/{cargoId}. A carried cargo is detached
// from its airplane as part of the delete.
func (h *CargoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "cargoId")
	if !ok {
		WriteError(w, MapServiceError(service.ErrCargoNotFound))
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Assign handles PUT /airplanes/{airplaneId}/cargo/{cargoId}: place the
// cargo on the airplane
func (h *CargoHandler) Assign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	airplaneID, okA := pathID(r, "airplaneId")
	cargoID, okC := pathID(r, "cargoId")
	if !okA || !okC {
		WriteError(w, MapServiceError(service.ErrAssignmentPairNotFound))
		return
	}

	if err := h.assignments.Assign(ctx, airplaneID, cargoID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Detach handles DELETE /airplanes/{airplaneId}/cargo/{cargoId}: take the
// cargo off the airplane
func (h *CargoHandler) Detach(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	airplaneID, okA := pathID(r, "airplaneId")
	cargoID, okC := pathID(r, "cargoId")
	if !okA || !okC {
		WriteError(w, MapServiceError(service.ErrAssignmentPairNotFound))
		return
	}

	if err := h.assignments.Detach(ctx, airplaneID, cargoID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeFullCargo decodes a body that must carry exactly the full editable
// field set: weight and item, with usable values (a positive weight and a
// non-empty item). Unknown keys reject the body.
func decodeFullCargo(r *http.Request) (model.CargoFields, bool) {
	raw, err := decodeRawBody(r)
	if err != nil || len(raw) != 2 {
		return model.CargoFields{}, false
	}

	var fields model.CargoFields
	for key, value := range raw {
		if isNull(value) {
			return model.CargoFields{}, false
		}
		switch key {
		case "weight":
			if json.Unmarshal(value, &fields.Weight) != nil {
				return model.CargoFields{}, false
			}
		case "item":
			if json.Unmarshal(value, &fields.Item) != nil {
				return model.CargoFields{}, false
			}
		default:
			return model.CargoFields{}, false
		}
	}

	if fields.Weight == nil || *fields.Weight <= 0 {
		return model.CargoFields{}, false
	}
	if fields.Item == nil || *fields.Item == "" {
		return model.CargoFields{}, false
	}
	return fields, true
}
