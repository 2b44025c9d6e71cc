package handlers

import (
	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/session"
)

// Context holds shared application dependencies
type Context struct {
	Engines        map[models.Mode]session.Engine
	AllowedOrigins []string
	PublicURL      string
}

// NewContext indexes the engines by the mode they serve
func NewContext(publicURL string, allowedOrigins []string, engines ...session.Engine) *Context {
	ctx := &Context{
		Engines:        make(map[models.Mode]session.Engine, len(engines)),
		AllowedOrigins: allowedOrigins,
		PublicURL:      publicURL,
	}
	for _, e := range engines {
		ctx.Engines[e.Mode()] = e
	}
	return ctx
}

func (ctx *Context) engine(mode string) (session.Engine, bool) {
	e, ok := ctx.Engines[models.Mode(mode)]
	return e, ok
}

func (ctx *Context) originAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range ctx.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
