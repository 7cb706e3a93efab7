package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guidebot/internal/models/request_models"
	"guidebot/internal/models/response_models"
	"guidebot/internal/services"
	"guidebot/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Ask godoc
// @Summary Ask the guide assistant
// @Description Resolve a user message into one or more reply chunks
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.AskRequest true "User message"
// @Success 200 {object} response_models.AskResponse
// @Failure 400 {object} utils.APIResponse
// @Router /assistant/ask [post]
func (a *AssistantController) Ask(c *gin.Context) {
	var req request_models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	answers, err := a.assistantService.Answer(c.Request.Context(), req.UserID, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if answers == nil {
		answers = []string{}
	}

	utils.RespondSuccess(c, response_models.AskResponse{Answers: answers}, "Answer composed successfully")
}

// Reset godoc
// @Summary Reset conversation history
// @Description Clear the stored conversation window of a user
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ResetRequest true "User to reset"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /assistant/reset [post]
func (a *AssistantController) Reset(c *gin.Context) {
	var req request_models.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a.assistantService.Reset(req.UserID)
	utils.RespondSuccess(c, nil, "Conversation reset successfully")
}
