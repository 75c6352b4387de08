package intake

import (
	"encoding/json"
	"net/http"

	"vitamin-tracker/internal/domain/vitamins"
	"vitamin-tracker/internal/middleware"
	"vitamin-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vitamin-intake", func(ir chi.Router) {
		ir.Get("/", listIntakeHandler(svc))
		ir.Post("/", upsertIntakeHandler(svc))
		ir.Get("/summary", summaryHandler(svc))
	})
}

type upsertIntakeRequest struct {
	VitaminID int64  `json:"vitaminId"`
	Date      string `json:"date"`
	Taken     *bool  `json:"taken"`
}

// listIntakeHandler godoc
// @Summary      Registros de intake del día
// @Tags         intake
// @Produce      json
// @Param        X-User-ID  header  string  true  "user id"
// @Param        date       query   string  true  "YYYY-MM-DD"
// @Success      200  {array}   VitaminIntake
// @Failure      400  {object}  apperr.Error
// @Failure      401  {object}  apperr.Error
// @Router       /vitamin-intake [get]
func listIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.ListByDate(r.Context(), userID, r.URL.Query().Get("date"))
		if err != nil {
			respond.Error(w, r, vitamins.AsAppError(err))
			return
		}
		if items == nil {
			items = []VitaminIntake{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// upsertIntakeHandler godoc
// @Summary      Marca una vitamina como tomada/no tomada en un día
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string               true  "user id"
// @Param        body       body    upsertIntakeRequest  true  "intake"
// @Success      200  {object}  VitaminIntake
// @Failure      400  {object}  apperr.Error
// @Failure      401  {object}  apperr.Error
// @Router       /vitamin-intake [post]
func upsertIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req upsertIntakeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, vitamins.AsAppError(vitamins.Malformed("invalid json")))
			return
		}

		in := InsertVitaminIntake{VitaminID: req.VitaminID, Date: req.Date}
		if req.Taken != nil {
			in.Taken = *req.Taken
		}

		rec, err := svc.Upsert(r.Context(), userID, in)
		if err != nil {
			respond.Error(w, r, vitamins.AsAppError(err))
			return
		}
		respond.JSON(w, http.StatusOK, rec)
	}
}

// summaryHandler godoc
// @Summary      Avance del día
// @Tags         intake
// @Produce      json
// @Param        X-User-ID  header  string  true  "user id"
// @Param        date       query   string  true  "YYYY-MM-DD"
// @Success      200  {object}  DailySummary
// @Failure      400  {object}  apperr.Error
// @Failure      401  {object}  apperr.Error
// @Router       /vitamin-intake/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		out, err := svc.Summary(r.Context(), userID, r.URL.Query().Get("date"))
		if err != nil {
			respond.Error(w, r, vitamins.AsAppError(err))
			return
		}
		respond.JSON(w, http.StatusOK, out)
	}
}
