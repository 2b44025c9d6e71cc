package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/aaronzipp/party-rooms/internal/game"
)

// RoomInfo is a public summary of a live room
type RoomInfo struct {
	Code      string    `json:"code"`
	Players   int       `json:"players"`
	Started   bool      `json:"started"`
	CreatedAt time.Time `json:"createdAt"`
}

// QRSize is the edge length of generated join codes, in pixels
const QRSize = 256

// HandleHealth reports liveness and how many rooms each mode hosts
func (ctx *Context) HandleHealth(c *gin.Context) {
	rooms := make(map[string]int, len(ctx.Engines))
	for mode, e := range ctx.Engines {
		rooms[string(mode)] = e.Rooms().Len()
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": rooms})
}

// HandleListRooms lists the live rooms of a mode
func (ctx *Context) HandleListRooms(c *gin.Context) {
	e, ok := ctx.engine(c.Param("mode"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mode"})
		return
	}
	rooms := e.Rooms().List()
	infos := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		room.Lock()
		if !room.Closed {
			infos = append(infos, RoomInfo{
				Code:      room.Code,
				Players:   len(room.Players),
				Started:   room.Started,
				CreatedAt: room.CreatedAt,
			})
		}
		room.Unlock()
	}
	c.JSON(http.StatusOK, infos)
}

// JoinURL is the link a QR code points at
func (ctx *Context) JoinURL(mode, code string) string {
	return fmt.Sprintf("%s/%s/?room=%s", strings.TrimRight(ctx.PublicURL, "/"), mode, code)
}

// HandleRoomQR renders a PNG QR code linking to the room's join page
func (ctx *Context) HandleRoomQR(c *gin.Context) {
	mode := c.Param("mode")
	e, ok := ctx.engine(mode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mode"})
		return
	}
	code := game.NormalizeCode(c.Param("code"))
	if !e.Rooms().Exists(code) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	png, err := qrcode.Encode(ctx.JoinURL(mode, code), qrcode.Medium, QRSize)
	if err != nil {
		log.Error().Err(err).Str("room", code).Msg("qr encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "qr encode failed"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
