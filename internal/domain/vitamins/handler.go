package vitamins

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"vitamin-tracker/internal/middleware"
	"vitamin-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /vitamins sobre r. El router ya exige usuario (RequireUser).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vitamins", func(vr chi.Router) {
		vr.Get("/", listVitaminsHandler(svc))
		vr.Post("/", createVitaminHandler(svc))
		vr.Patch("/{vitaminID}", updateVitaminHandler(svc))
		vr.Delete("/{vitaminID}", deleteVitaminHandler(svc))
	})
}

type createVitaminRequest struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

type updateVitaminRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name   *string `json:"name"`
	Dosage *string `json:"dosage"`
}

// listVitaminsHandler godoc
// @Summary      Lista las vitaminas del usuario
// @Tags         vitamins
// @Produce      json
// @Param        X-User-ID  header  string  true  "user id"
// @Success      200  {array}   Vitamin
// @Failure      401  {object}  apperr.Error
// @Router       /vitamins [get]
func listVitaminsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			respond.Error(w, r, AsAppError(err))
			return
		}
		if items == nil {
			items = []Vitamin{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// createVitaminHandler godoc
// @Summary      Crea una vitamina
// @Tags         vitamins
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                true  "user id"
// @Param        body       body    createVitaminRequest  true  "vitamina"
// @Success      200  {object}  Vitamin
// @Failure      400  {object}  apperr.Error
// @Failure      401  {object}  apperr.Error
// @Router       /vitamins [post]
func createVitaminHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createVitaminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, AsAppError(Malformed("invalid json")))
			return
		}

		v, err := svc.Create(r.Context(), userID, InsertVitamin{
			Name:   req.Name,
			Dosage: req.Dosage,
		})
		if err != nil {
			respond.Error(w, r, AsAppError(err))
			return
		}

		respond.JSON(w, http.StatusOK, v)
	}
}

// updateVitaminHandler godoc
// @Summary      Actualiza parcialmente una vitamina
// @Tags         vitamins
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                true  "user id"
// @Param        id         path    int                   true  "vitamin id"
// @Param        body       body    updateVitaminRequest  true  "campos a cambiar"
// @Success      200  {object}  Vitamin
// @Failure      400  {object}  apperr.Error
// @Failure      401  {object}  apperr.Error
// @Failure      404  {object}  apperr.Error
// @Router       /vitamins/{id} [patch]
func updateVitaminHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		id, ok := parseID(chi.URLParam(r, "vitaminID"))
		if !ok {
			respond.Error(w, r, AsAppError(Malformed("id must be an integer")))
			return
		}

		var req updateVitaminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, AsAppError(Malformed("invalid json")))
			return
		}

		v, err := svc.Update(r.Context(), userID, id, VitaminPatch{
			Name:   req.Name,
			Dosage: req.Dosage,
		})
		if err != nil {
			respond.Error(w, r, AsAppError(err))
			return
		}

		respond.JSON(w, http.StatusOK, v)
	}
}

// deleteVitaminHandler godoc
// @Summary      Borra una vitamina (idempotente)
// @Tags         vitamins
// @Param        X-User-ID  header  string  true  "user id"
// @Param        id         path    int     true  "vitamin id"
// @Success      204
// @Failure      401  {object}  apperr.Error
// @Router       /vitamins/{id} [delete]
func deleteVitaminHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		// Un id que no es entero no puede existir: mismo 204 que un id ausente.
		id, ok := parseID(chi.URLParam(r, "vitaminID"))
		if ok {
			if err := svc.Delete(r.Context(), userID, id); err != nil {
				respond.Error(w, r, AsAppError(err))
				return
			}
		}

		respond.NoContent(w)
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
