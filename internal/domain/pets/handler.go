package pets

import (
	"errors"
	"net/http"
	"strconv"

	"furiends-pets/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"component": "pets_handler"})

	r.Route("/api/v1/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))

		// Filtros por organización / estado. Los segmentos estáticos tienen
		// prioridad sobre /{id} en chi.
		pr.Get("/organization={organizationID}/pets", listOrganizationPetsHandler(svc, log))
		pr.Get("/organization={organizationID}/published={isPublished}", listOrganizationByPublishStatusHandler(svc, log))
		pr.Get("/organization={organizationID}/adopted={isAdopted}", listOrganizationByAdoptionStatusHandler(svc, log))
		pr.Get("/published={isPublished}", listByPublishStatusHandler(svc, log))
		pr.Get("/adopted={isAdopted}", listByAdoptionStatusHandler(svc, log))

		// chi no matchea un parámetro vacío al final del path; sin estas rutas
		// "published=" caería en /{id} y respondería 404.
		pr.Get("/organization={organizationID}/published=", listOrganizationByPublishStatusHandler(svc, log))
		pr.Get("/organization={organizationID}/adopted=", listOrganizationByAdoptionStatusHandler(svc, log))
		pr.Get("/published=", listByPublishStatusHandler(svc, log))
		pr.Get("/adopted=", listByAdoptionStatusHandler(svc, log))

		pr.Get("/{id}", getPetHandler(svc, log))
		pr.Put("/{id}", updatePetHandler(svc, log))
		pr.Delete("/{id}", deletePetHandler(svc, log))
	})
}

// errorResponse es el cuerpo de todas las respuestas de error.
type errorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// errorStatus traduce errores del servicio a HTTP. Lo que no está aquí es 500.
var errorStatus = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT", "invalid input"},
	{ErrNotFound, http.StatusNotFound, "NOT_FOUND", "pet not found"},
	{ErrConflict, http.StatusConflict, "CONFLICT", "pet already exists"},
}

// listPetsHandler godoc
// @Summary Listar todas las mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Failure 500 {object} errorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

// listOrganizationPetsHandler godoc
// @Summary Listar las mascotas de una organización
// @Tags pets
// @Produce json
// @Param organizationId path string true "ID de la organización"
// @Success 200 {array} Pet
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/organization={organizationId}/pets [get]
func listOrganizationPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAllWithinOrganization(r.Context(), chi.URLParam(r, "organizationID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

// getPetHandler godoc
// @Summary Obtener una mascota por id
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/{id} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, found, err := svc.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		if !found {
			writeError(w, r, log, ErrNotFound)
			return
		}
		writeJSON(w, r, http.StatusOK, p)
	}
}

// listByPublishStatusHandler godoc
// @Summary Listar mascotas por estado de publicación
// @Description Ordenadas por última actualización, más recientes primero.
// @Tags pets
// @Produce json
// @Param isPublished path bool true "true = publicada, false = en edición"
// @Success 200 {array} Pet
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/published={isPublished} [get]
func listByPublishStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isPublished, ok := boolParam(w, r, "isPublished")
		if !ok {
			return
		}
		items, err := svc.FindAllByPublishStatus(r.Context(), isPublished)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

// listOrganizationByPublishStatusHandler godoc
// @Summary Listar mascotas de una organización por estado de publicación
// @Tags pets
// @Produce json
// @Param organizationId path string true "ID de la organización"
// @Param isPublished path bool true "true = publicada, false = en edición"
// @Success 200 {array} Pet
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/organization={organizationId}/published={isPublished} [get]
func listOrganizationByPublishStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isPublished, ok := boolParam(w, r, "isPublished")
		if !ok {
			return
		}
		items, err := svc.FindAllByPublishStatusOrg(r.Context(), chi.URLParam(r, "organizationID"), isPublished)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

// listByAdoptionStatusHandler godoc
// @Summary Listar mascotas por estado de adopción
// @Tags pets
// @Produce json
// @Param isAdopted path bool true "Estado de adopción"
// @Success 200 {array} Pet
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/adopted={isAdopted} [get]
func listByAdoptionStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isAdopted, ok := boolParam(w, r, "isAdopted")
		if !ok {
			return
		}
		items, err := svc.FindAllByAdoptionStatus(r.Context(), isAdopted)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

// listOrganizationByAdoptionStatusHandler godoc
// @Summary Listar mascotas de una organización por estado de adopción
// @Tags pets
// @Produce json
// @Param organizationId path string true "ID de la organización"
// @Param isAdopted path bool true "Estado de adopción"
// @Success 200 {array} Pet
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/organization={organizationId}/adopted={isAdopted} [get]
func listOrganizationByAdoptionStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isAdopted, ok := boolParam(w, r, "isAdopted")
		if !ok {
			return
		}
		items, err := svc.FindAllByAdoptionStatusOrg(r.Context(), chi.URLParam(r, "organizationID"), isAdopted)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body PetRequest true "Datos de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}

		p, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza todos los campos editables de la mascota.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "ID de la mascota"
// @Param payload body PetRequest true "Datos de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/{id} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {string} string "OK"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/{id} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, r, http.StatusOK, http.StatusText(http.StatusOK))
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (PetRequest, bool) {
	var req PetRequest
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, r, http.StatusRequestEntityTooLarge, errorResponse{Code: "PAYLOAD_TOO_LARGE", Message: "request body too large"})
			return PetRequest{}, false
		}
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: "invalid json"})
		return PetRequest{}, false
	}
	return req, true
}

// boolParam parsea un segmento booleano del path; responde 400 si no es válido.
func boolParam(w http.ResponseWriter, r *http.Request, name string) (bool, bool) {
	v, err := strconv.ParseBool(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    "BAD_REQUEST",
			Message: name + " must be true or false",
		})
		return false, false
	}
	return v, true
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	for _, e := range errorStatus {
		if !errors.Is(err, e.err) {
			continue
		}
		resp := errorResponse{Code: e.code, Message: e.message}
		var verr *ValidationError
		if errors.As(err, &verr) {
			resp.Errors = verr.Fields
		}
		writeJSON(w, r, e.status, resp)
		return
	}

	// El detalle solo va al log.
	log.Error("pets request failed", map[string]any{
		"error":      err.Error(),
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": chimw.GetReqID(r.Context()),
	})
	writeJSON(w, r, http.StatusInternalServerError, errorResponse{Code: "INTERNAL_ERROR", Message: "internal error"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}
