package controllers

import (
	"log"
	"net/http"
	"strconv"

	"hostel-backend/chat"
	"hostel-backend/middleware"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer; the socket carries a verified token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ChatController struct {
	Hub *chat.Hub
}

func NewChatController(hub *chat.Hub) *ChatController {
	return &ChatController{Hub: hub}
}

// Connect — GET /chat/ws (websocket upgrade)
func (cc *ChatController) Connect(c *gin.Context) {
	userID := middleware.CallerID(c)
	if userID == 0 {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ websocket upgrade failed for user %d: %v", userID, err)
		return
	}

	cc.Hub.Register(userID, conn)
}

// History — GET /chat/history/:userID (messages between caller and peer)
func (cc *ChatController) History(c *gin.Context) {
	peer, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil || peer == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			limit = n
		}
	}

	msgs, err := cc.Hub.History(middleware.CallerID(c), uint(peer), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve messages", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Messages retrieved", gin.H{"messages": msgs})
}

// Online — GET /chat/online/:userID
func (cc *ChatController) Online(c *gin.Context) {
	peer, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil || peer == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Presence retrieved", gin.H{"online": cc.Hub.IsOnline(uint(peer))})
}
