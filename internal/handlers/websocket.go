package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/aaronzipp/party-rooms/internal/protocol"
	"github.com/aaronzipp/party-rooms/internal/session"
)

const (
	maxMessageSize = 64 * 1024
	pingInterval   = 25 * time.Second
	readTimeout    = 60 * time.Second
	writeTimeout   = 10 * time.Second

	// Inbound throttle per connection. Strokes arrive in bursts while drawing.
	messagesPerSecond = 60
	messageBurst      = 120
)

// client pumps frames between one websocket and its session
type client struct {
	conn    *websocket.Conn
	sess    *session.Session
	engine  session.Engine
	limiter *rate.Limiter
}

// HandleWebsocket upgrades the request and serves the game of :mode until
// the connection drops
func (ctx *Context) HandleWebsocket(c *gin.Context) {
	mode := c.Param("mode")
	engine, ok := ctx.engine(mode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mode"})
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return ctx.originAllowed(r.Header.Get("Origin"))
		},
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("mode", mode).Msg("websocket upgrade failed")
		return
	}

	cl := &client{
		conn:    conn,
		sess:    session.New(),
		engine:  engine,
		limiter: rate.NewLimiter(messagesPerSecond, messageBurst),
	}
	log.Debug().Str("mode", mode).Str("session", cl.sess.ID).Str("ip", c.ClientIP()).Msg("client connected")

	go cl.writePump()
	cl.readPump()
}

// readPump feeds inbound frames to the engine. When the socket dies the
// player leaves their room and the outbox is closed, which stops writePump.
func (cl *client) readPump() {
	defer func() {
		cl.engine.Disconnect(cl.sess)
		close(cl.sess.Outbox)
		log.Debug().Str("session", cl.sess.ID).Msg("client disconnected")
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	cl.conn.SetReadDeadline(time.Now().Add(readTimeout))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("session", cl.sess.ID).Msg("read failed")
			}
			return
		}
		if !cl.limiter.Allow() {
			log.Debug().Str("session", cl.sess.ID).Msg("rate limited, dropping frame")
			continue
		}
		env, err := protocol.DecodeEnvelope(data)
		if err != nil {
			cl.sendError(err)
			continue
		}
		cl.engine.Handle(cl.sess, env)
	}
}

func (cl *client) sendError(err error) {
	msg, encErr := protocol.Encode(protocol.EvtError, protocol.Error{Code: protocol.CodeBadRequest, Message: err.Error()})
	if encErr != nil {
		return
	}
	select {
	case cl.sess.Outbox <- msg:
	default:
	}
}

// writePump is the only writer of the connection
func (cl *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.sess.Outbox:
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
