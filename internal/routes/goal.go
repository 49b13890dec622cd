package routes

import (
	"net/http"
	"time"

	"Cofrinho/internal/contracts"
	domaincontracts "Cofrinho/internal/domain/contracts"
	appErrors "Cofrinho/internal/errors"

	"github.com/gin-gonic/gin"
)

// RegisterGoalRoutes monta as rotas de metas num grupo ja autenticado.
func (h *Handler) RegisterGoalRoutes(group *gin.RouterGroup) {
	goals := group.Group("/goals")
	{
		goals.GET("", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.GET("/:id", h.GetGoal)
		goals.PUT("/:id", h.UpdateGoal)
		goals.PATCH("/:id", h.UpdateGoal)
		goals.DELETE("/:id", h.DeleteGoal)
		goals.POST("/:id/contributions", h.AddContribution)
		goals.GET("/:id/contributions", h.ListContributions)
	}
}

// ListGoals godoc
// @Summary      Lista as metas do usuário
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contracts.GoalListResponse
// @Failure      401  {object}  contracts.ErrorResponse
// @Failure      500  {object}  contracts.ErrorResponse
// @Router       /goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goals, err := h.GoalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalListResponse{Goals: contracts.NewGoalPayloads(goals)})
}

// GetGoal godoc
// @Summary      Busca uma meta
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da meta (ULID)"
// @Success      200  {object}  contracts.GoalResponse
// @Failure      404  {object}  contracts.ErrorResponse
// @Failure      422  {object}  contracts.ErrorResponse
// @Router       /goals/{id} [get]
func (h *Handler) GetGoal(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalEntity, err := h.GoalService.GetGoal(c.Request.Context(), goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: contracts.NewGoalPayload(goalEntity)})
}

// CreateGoal godoc
// @Summary      Cria uma meta
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contracts.GoalCreateRequest  true  "Meta"
// @Success      201   {object}  contracts.GoalResponse
// @Failure      422   {object}  contracts.ErrorResponse
// @Router       /goals [post]
func (h *Handler) CreateGoal(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	endDate, err := parseDate("endDate", body.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.GoalCreateRequest{
		UserId:       userID,
		Name:         body.Name,
		TargetAmount: *body.TargetAmount,
		Description:  body.Description,
		EndDate:      endDate,
	}

	goalEntity, err := h.GoalService.CreateGoal(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalResponse{Goal: contracts.NewGoalPayload(goalEntity)})
}

// UpdateGoal godoc
// @Summary      Atualiza uma meta
// @Description  Campos ausentes não são alterados. endDate "" remove o prazo. O status é recalculado após a gravação.
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "ID da meta (ULID)"
// @Param        body  body      contracts.GoalUpdateRequest  true  "Campos a alterar"
// @Success      200   {object}  contracts.GoalResponse
// @Failure      404   {object}  contracts.ErrorResponse
// @Failure      422   {object}  contracts.ErrorResponse
// @Router       /goals/{id} [put]
func (h *Handler) UpdateGoal(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	clearEndDate := body.EndDate != nil && *body.EndDate == ""
	var endDate *time.Time
	if !clearEndDate {
		endDate, err = parseDate("endDate", body.EndDate)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}

	req := domaincontracts.GoalUpdateRequest{
		Id:           goalID,
		UserId:       userID,
		Name:         body.Name,
		TargetAmount: body.TargetAmount,
		Description:  body.Description,
		EndDate:      endDate,
		ClearEndDate: clearEndDate,
		Status:       body.Status,
	}

	goalEntity, err := h.GoalService.UpdateGoal(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: contracts.NewGoalPayload(goalEntity)})
}

// DeleteGoal godoc
// @Summary      Remove uma meta e suas contribuições
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da meta (ULID)"
// @Success      200  {object}  contracts.MessageResponse
// @Failure      404  {object}  contracts.ErrorResponse
// @Router       /goals/{id} [delete]
func (h *Handler) DeleteGoal(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.GoalService.DeleteGoal(c.Request.Context(), goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta removida com sucesso"})
}

// AddContribution godoc
// @Summary      Registra uma contribuição
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                             true  "ID da meta (ULID)"
// @Param        body  body      contracts.GoalContributionRequest  true  "Contribuição"
// @Success      201   {object}  contracts.GoalResponse
// @Failure      404   {object}  contracts.ErrorResponse
// @Failure      422   {object}  contracts.ErrorResponse
// @Router       /goals/{id}/contributions [post]
func (h *Handler) AddContribution(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalContributionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	contributionDate, err := parseDate("contributionDate", body.ContributionDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.GoalContributionRequest{
		GoalId:           goalID,
		UserId:           userID,
		Amount:           *body.Amount,
		ContributionDate: contributionDate,
	}

	goalEntity, err := h.GoalService.AddContribution(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalResponse{Goal: contracts.NewGoalPayload(goalEntity)})
}

// ListContributions godoc
// @Summary      Lista as contribuições de uma meta
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da meta (ULID)"
// @Success      200  {object}  contracts.GoalContributionListResponse
// @Failure      404  {object}  contracts.ErrorResponse
// @Router       /goals/{id}/contributions [get]
func (h *Handler) ListContributions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	contributions, err := h.GoalService.ListContributions(c.Request.Context(), goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalContributionListResponse{
		Contributions: contracts.NewContributionPayloads(contributions),
	})
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(contracts.DateLayout, *value)
	if err != nil {
		return nil, appErrors.NewValidationError(field, "deve ser uma data no formato "+contracts.DateLayout)
	}
	return &t, nil
}
