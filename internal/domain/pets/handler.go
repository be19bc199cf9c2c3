package pets

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-records/internal/domain/records"
	"pet-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// Perfil + historial médico
		pr.Get("/{petID}", getPetHandler(svc))
	})

	// Vistas de clínica (sin auth, fuera de alcance)
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/pets", listPetsWithCountsHandler(svc))
		ar.Get("/stats", statsHandler(svc))
	})
}

// PetResponse representa una mascota devuelta por la API.
type PetResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	AnimalType  AnimalType `json:"animalType" enums:"dog,cat,bird,rabbit,other"`
	OwnerName   string     `json:"ownerName"`
	DateOfBirth string     `json:"dateOfBirth" example:"2020-03-15"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type petWithRecordsResponse struct {
	PetResponse
	Records []records.RecordResponse `json:"records"`
}

type petWithCountsResponse struct {
	PetResponse
	VaccineCount int `json:"vaccineCount"`
	AllergyCount int `json:"allergyCount"`
}

type statsResponse struct {
	TotalPets      int `json:"totalPets"`
	TotalVaccines  int `json:"totalVaccines"`
	TotalAllergies int `json:"totalAllergies"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Registra una mascota. dateOfBirth en formato YYYY-MM-DD y no puede ser futura.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos de la mascota"
// @Success 201 {object} respond.Envelope{data=PetResponse}
// @Failure 400 {object} respond.ErrorEnvelope "json inválido / validación"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := respond.Decode(r, &in); err != nil {
			respond.Err(w, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Err(w, err)
			return
		}

		respond.OK(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista mascotas, más recientes primero. Filtro opcional por dueño (match exacto).
// @Tags pets
// @Produce json
// @Param ownerName query string false "Nombre del dueño"
// @Success 200 {object} respond.Envelope{data=[]PetResponse}
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("ownerName"))
		if err != nil {
			respond.Err(w, err)
			return
		}

		out := make([]PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		respond.OK(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota con registros
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} respond.Envelope{data=petWithRecordsResponse}
// @Failure 400 {object} respond.ErrorEnvelope "id inválido"
// @Failure 404 {object} respond.ErrorEnvelope "Pet not found"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := respond.PathID(r, "petID")
		if err != nil {
			respond.Err(w, err)
			return
		}

		pr, err := svc.GetWithRecords(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Fail(w, http.StatusNotFound, ErrNotFound.Error())
				return
			}
			respond.Err(w, err)
			return
		}

		respond.OK(w, http.StatusOK, petWithRecordsResponse{
			PetResponse: toPetResponse(pr.Pet),
			Records:     records.ToResponses(pr.Records),
		})
	}
}

// listPetsWithCountsHandler godoc
// @Summary Listar mascotas con conteo de registros
// @Description Vista de clínica: cada mascota con su cantidad de vacunas y alergias.
// @Tags admin
// @Produce json
// @Param ownerName query string false "Nombre del dueño"
// @Success 200 {object} respond.Envelope{data=[]petWithCountsResponse}
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /admin/pets [get]
func listPetsWithCountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListWithRecordCounts(r.Context(), r.URL.Query().Get("ownerName"))
		if err != nil {
			respond.Err(w, err)
			return
		}

		out := make([]petWithCountsResponse, 0, len(items))
		for _, it := range items {
			out = append(out, petWithCountsResponse{
				PetResponse:  toPetResponse(it.Pet),
				VaccineCount: it.Counts.Vaccines,
				AllergyCount: it.Counts.Allergies,
			})
		}
		respond.OK(w, http.StatusOK, out)
	}
}

// statsHandler godoc
// @Summary Estadísticas globales
// @Tags admin
// @Produce json
// @Success 200 {object} respond.Envelope{data=statsResponse}
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /admin/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			respond.Err(w, err)
			return
		}
		respond.OK(w, http.StatusOK, statsResponse{
			TotalPets:      st.TotalPets,
			TotalVaccines:  st.TotalVaccines,
			TotalAllergies: st.TotalAllergies,
		})
	}
}

func toPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		AnimalType:  p.AnimalType,
		OwnerName:   p.OwnerName,
		DateOfBirth: p.DateOfBirth.Format(records.DateLayout),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
