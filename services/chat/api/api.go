package api

import (
	"github.com/filingsight/filingsight/services/chat/agent"
	"github.com/filingsight/filingsight/services/chat/api/chat"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type API struct {
	logger *zap.Logger
	agent  *agent.Service
}

func New(logger *zap.Logger, agentService *agent.Service) *API {
	return &API{
		logger: logger.Named("api"),
		agent:  agentService,
	}
}

func (api *API) Register(e *echo.Echo) {
	h := chat.New(api.logger, api.agent)
	h.Register(e.Group(""))
}
