package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsByOwnerHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// createPetRequest usa punteros para poder distinguir null/ausente de "".
// El campo id, si viene, se ignora (el id lo asigna la base).
type createPetRequest struct {
	Name       *string `json:"name"`
	Type       *string `json:"type"`
	OwnerEmail *string `json:"ownerEmail"`
}

type petResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	OwnerEmail string `json:"ownerEmail"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// createPetHandler godoc
// @Summary      Registrar una mascota
// @Description  Crea un registro de mascota; el id lo asigna el servidor.
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        pet  body      createPetRequest  true  "Mascota a registrar"
// @Success      201  {object}  petResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Type:       req.Type,
			OwnerEmail: req.OwnerEmail,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "name, type and ownerEmail are required")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsByOwnerHandler godoc
// @Summary      Listar mascotas por dueño
// @Tags         pets
// @Produce      json
// @Param        ownerEmail  query     string  true  "Email del dueño (igualdad exacta)"
// @Success      200         {array}   petResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/pets [get]
func listPetsByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerEmail := r.URL.Query().Get("ownerEmail")

		items, err := svc.ListByOwnerEmail(r.Context(), ownerEmail)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "ownerEmail is required")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary      Obtener mascota por id
// @Tags         pets
// @Produce      json
// @Param        petID  path      int  true  "ID de la mascota"
// @Success      200    {object}  petResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary      Eliminar mascota por id
// @Tags         pets
// @Param        petID  path  int  true  "ID de la mascota"
// @Success      204    "sin contenido"
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// petIDParam parsea {petID}; un id no numérico es 400, no 404.
func petIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "petID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "petID must be an integer")
		return 0, false
	}
	return id, true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		OwnerEmail: p.OwnerEmail,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
