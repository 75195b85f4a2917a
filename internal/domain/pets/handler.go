package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// BasePath es la raíz de rutas del Directory Service.
const BasePath = "/api/v1/pet"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route(BasePath, func(pr chi.Router) {
		pr.Post("/add", addPetHandler(svc))
		pr.Get("/getAll", listPetsHandler(svc))
		pr.Get("/get/{petID}", getPetHandler(svc))
		pr.Put("/update/{petID}", updatePetHandler(svc))
		pr.Delete("/delete/{petID}", deletePetHandler(svc))
		pr.Post("/calculate", calculateHandler(svc))
	})
}

type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// addPetHandler godoc
// @Summary Registrar mascota
// @Description Valida y guarda un registro de ingreso. Si no trae id, el servicio asigna uno.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body Payload true "Registro de la mascota"
// @Success 201 {object} Payload
// @Failure 400 {object} validationErrorResponse "invalid json / campos inválidos"
// @Failure 409 {string} string "pet already exists"
// @Failure 500 {string} string "internal error"
// @Router /api/v1/pet/add [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Payload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), FromPayload(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToPayload(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} Payload
// @Failure 500 {string} string "internal error"
// @Router /api/v1/pet/getAll [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Payload, 0, len(items))
		for _, p := range items {
			out = append(out, ToPayload(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota por id
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Payload
// @Failure 404 {string} string "pet not found"
// @Router /api/v1/pet/get/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToPayload(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza el registro completo. Aplica las mismas validaciones que el alta.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body Payload true "Registro completo"
// @Success 200 {object} Payload
// @Failure 400 {object} validationErrorResponse "invalid json / campos inválidos"
// @Failure 404 {string} string "pet not found"
// @Router /api/v1/pet/update/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Payload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), FromPayload(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToPayload(updated))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} messageResponse
// @Failure 404 {string} string "pet not found"
// @Router /api/v1/pet/delete/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "pet deleted"})
	}
}

// calculateHandler godoc
// @Summary Calcular costos
// @Description Devuelve el registro con totalCost y netCost según ifTemp y discount. No guarda nada.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body Payload true "Registro con ifTemp y discount"
// @Success 200 {object} Payload
// @Failure 400 {string} string "invalid json"
// @Router /api/v1/pet/calculate [post]
func calculateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Payload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		priced := svc.CalculateCosts(FromPayload(req), req.Discount)
		writeJSON(w, http.StatusOK, ToPayload(priced))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var fields FieldErrors
	switch {
	case errors.As(err, &fields):
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyExists):
		http.Error(w, "pet already exists", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
