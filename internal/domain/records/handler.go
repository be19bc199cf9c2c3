package records

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/records", func(rr chi.Router) {
		rr.Get("/", listRecordsHandler(svc))
		rr.Post("/vaccines", addVaccineHandler(svc))
		rr.Post("/allergies", addAllergyHandler(svc))
	})

	r.Get("/reactions", reactionsHandler())
}

// RecordResponse representa un registro médico devuelto por la API.
// Data es VaccinePayload o AllergyPayload según recordType.
type RecordResponse struct {
	ID         int64      `json:"id"`
	PetID      int64      `json:"petId"`
	RecordType RecordType `json:"recordType" enums:"vaccine,allergy,lab_result,vital"`
	Data       Payload    `json:"data" swaggertype:"object"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func ToResponse(rec MedicalRecord) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		PetID:      rec.PetID,
		RecordType: rec.Type,
		Data:       rec.Payload,
		CreatedAt:  rec.CreatedAt,
	}
}

func ToResponses(items []MedicalRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, ToResponse(rec))
	}
	return out
}

// listRecordsHandler godoc
// @Summary Listar registros médicos de una mascota
// @Description Devuelve vacunas y alergias de la mascota, más recientes primero. Filtro opcional por tipo.
// @Tags records
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param type query string false "vaccine | allergy | lab_result | vital"
// @Success 200 {object} respond.Envelope{data=[]RecordResponse}
// @Failure 400 {object} respond.ErrorEnvelope "id o tipo inválido"
// @Failure 404 {object} respond.ErrorEnvelope "Pet not found"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /pets/{petID}/records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := respond.PathID(r, "petID")
		if err != nil {
			respond.Err(w, err)
			return
		}

		items, err := svc.ListForPet(r.Context(), petID, r.URL.Query().Get("type"))
		if err != nil {
			writeErr(w, err)
			return
		}

		respond.OK(w, http.StatusOK, ToResponses(items))
	}
}

// addVaccineHandler godoc
// @Summary Registrar vacuna
// @Description Agrega una vacuna. administeredDate (YYYY-MM-DD) no puede ser futura ni anterior al nacimiento.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body VaccineInput true "Datos de la vacuna"
// @Success 201 {object} respond.Envelope{data=RecordResponse}
// @Failure 400 {object} respond.ErrorEnvelope "validación"
// @Failure 404 {object} respond.ErrorEnvelope "Pet not found"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /pets/{petID}/records/vaccines [post]
func addVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := respond.PathID(r, "petID")
		if err != nil {
			respond.Err(w, err)
			return
		}

		var in VaccineInput
		if err := respond.Decode(r, &in); err != nil {
			respond.Err(w, err)
			return
		}

		rec, err := svc.AddVaccine(r.Context(), petID, in)
		if err != nil {
			writeErr(w, err)
			return
		}

		respond.OK(w, http.StatusCreated, ToResponse(rec))
	}
}

// addAllergyHandler godoc
// @Summary Registrar alergia
// @Description Agrega una alergia con 1 a 10 reacciones y severidad mild|severe.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body AllergyInput true "Datos de la alergia"
// @Success 201 {object} respond.Envelope{data=RecordResponse}
// @Failure 400 {object} respond.ErrorEnvelope "validación"
// @Failure 404 {object} respond.ErrorEnvelope "Pet not found"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /pets/{petID}/records/allergies [post]
func addAllergyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := respond.PathID(r, "petID")
		if err != nil {
			respond.Err(w, err)
			return
		}

		var in AllergyInput
		if err := respond.Decode(r, &in); err != nil {
			respond.Err(w, err)
			return
		}

		rec, err := svc.AddAllergy(r.Context(), petID, in)
		if err != nil {
			writeErr(w, err)
			return
		}

		respond.OK(w, http.StatusCreated, ToResponse(rec))
	}
}

// reactionsHandler godoc
// @Summary Reacciones sugeridas
// @Description Lista de reacciones comunes para el formulario de alergias. Se aceptan otras en texto libre.
// @Tags records
// @Produce json
// @Success 200 {object} respond.Envelope{data=[]string}
// @Router /reactions [get]
func reactionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.OK(w, http.StatusOK, CommonReactions)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrPetNotFound) {
		respond.Fail(w, http.StatusNotFound, ErrPetNotFound.Error())
		return
	}
	respond.Err(w, err)
}
