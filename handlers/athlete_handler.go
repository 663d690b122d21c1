package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/workout-api/models"
	"github.com/Dosada05/workout-api/pagination"
	"github.com/Dosada05/workout-api/services"
)

type AthleteHandler struct {
	athleteService services.AthleteService
	conflictStatus int
}

// NewAthleteHandler builds the /atletas handlers. conflictStatus is the status
// written when a CPF is already registered.
func NewAthleteHandler(as services.AthleteService, conflictStatus int) *AthleteHandler {
	if conflictStatus == 0 {
		conflictStatus = http.StatusSeeOther
	}
	return &AthleteHandler{
		athleteService: as,
		conflictStatus: conflictStatus,
	}
}

// Pointers tell a missing key apart from an empty string; only the former is rejected.
type createAthleteRequest struct {
	Name           *string `json:"nome" validate:"required"`
	CPF            *string `json:"cpf" validate:"required"`
	TrainingCenter *string `json:"centro_treinamento" validate:"required"`
	Category       *string `json:"categoria" validate:"required"`
}

// CreateAthlete godoc
// @Summary Cadastrar atleta
// @Tags atletas
// @Description Registra um atleta. O CPF deve ser único.
// @Accept json
// @Produce json
// @Param athlete body createAthleteRequest true "Dados do atleta"
// @Success 201 {object} models.Athlete
// @Failure 303 {object} map[string]string "CPF já cadastrado"
// @Failure 400 {object} map[string]string "JSON inválido"
// @Failure 401 {object} map[string]string "Não autenticado"
// @Failure 403 {object} map[string]string "Sem permissão"
// @Failure 409 {object} map[string]string "CPF já cadastrado (CONFLICT_STATUS_CODE=409)"
// @Failure 422 {object} map[string]interface{} "Campos ausentes"
// @Security BearerAuth
// @Router /atletas [post]
func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req createAthleteRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if fields := validateStruct(req); fields != nil {
		failedValidationResponse(w, r, fields)
		return
	}

	athlete, err := h.athleteService.RegisterAthlete(r.Context(), services.CreateAthleteInput{
		Name:           *req.Name,
		CPF:            *req.CPF,
		TrainingCenter: *req.TrainingCenter,
		Category:       *req.Category,
	})
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, athlete, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListAthletes godoc
// @Summary Listar atletas
// @Tags atletas
// @Description Lista paginada de atletas (sem id e CPF), com filtros opcionais.
// @Produce json
// @Param nome query string false "Trecho do nome"
// @Param cpf query string false "CPF exato"
// @Param page query int false "Página (>= 1)"
// @Param size query int false "Itens por página (1..100)"
// @Success 200 {object} pagination.Page[models.AthleteView]
// @Failure 422 {object} map[string]interface{} "Paginação inválida"
// @Router /atletas [get]
func (h *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params, err := pagination.ParseParams(query.Get("page"), query.Get("size"))
	if err != nil {
		var validationErr *pagination.ValidationError
		if errors.As(err, &validationErr) {
			failedValidationResponse(w, r, validationErr.Fields)
			return
		}
		badRequestResponse(w, r, err)
		return
	}

	page, err := h.athleteService.ListAthletes(r.Context(), filterFromQuery(r), params)
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, page, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportAthletes godoc
// @Summary Exportar atletas
// @Tags atletas
// @Description Envia a lista filtrada de atletas para o armazenamento de objetos.
// @Produce json
// @Param nome query string false "Trecho do nome"
// @Param cpf query string false "CPF exato"
// @Success 201 {object} storage.UploadResult
// @Failure 401 {object} map[string]string "Não autenticado"
// @Failure 403 {object} map[string]string "Sem permissão"
// @Failure 503 {object} map[string]string "Armazenamento não configurado"
// @Security BearerAuth
// @Router /atletas/export [post]
func (h *AthleteHandler) ExportAthletes(w http.ResponseWriter, r *http.Request) {
	result, err := h.athleteService.ExportAthletes(r.Context(), filterFromQuery(r))
	if err != nil {
		h.serviceErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// serviceErrorResponse answers a duplicate CPF with the configured conflict
// status and leaves everything else to mapServiceErrorToHTTP.
func (h *AthleteHandler) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrDuplicateIdentifier) {
		errorResponse(w, r, h.conflictStatus, err.Error())
		return
	}
	mapServiceErrorToHTTP(w, r, err)
}

func filterFromQuery(r *http.Request) models.AthleteFilter {
	query := r.URL.Query()
	return models.AthleteFilter{
		Name: query.Get("nome"),
		CPF:  query.Get("cpf"),
	}
}
