package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	cmds commands.ChatCommands
	q    queries.ChatQueries
}

func NewChatHandler(cmds commands.ChatCommands, q queries.ChatQueries) *ChatHandler {
	return &ChatHandler{cmds: cmds, q: q}
}

// @Summary Send chat message
// @Description Send a message to the assistant and receive the canned reply
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client identifier (UUID)"
// @Param request body reqdto.ChatMessageRequest true "Message"
// @Success 200 {object} resdto.ChatReplyResponse
// @Failure 400 {object} map[string]string
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("client identity missing"), "Internal error", nil)
		return
	}

	var req reqdto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	reply, err := h.cmds.RecordMessage(c.Request.Context(), clientID, req.Message)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromChatReply(reply))
}

// @Summary List contact leads
// @Description Return contact requests captured by the chat assistant
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.ContactLeadResponse
// @Router /admin/contacts [get]
func (h *ChatHandler) ListContacts(c *gin.Context) {
	views, err := h.q.ListContactLeads(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.ContactLeadResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromContactLeadView(view)
	}
	c.JSON(http.StatusOK, response)
}
