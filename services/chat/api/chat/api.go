package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/filingsight/filingsight/services/chat/agent"
	"github.com/filingsight/filingsight/services/chat/api/entity"
	"github.com/filingsight/filingsight/services/chat/view"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const noReplySentinel = "(No assistant reply found.)"

type API struct {
	tracer trace.Tracer
	logger *zap.Logger
	agent  *agent.Service
}

func New(logger *zap.Logger, agentService *agent.Service) API {
	return API{
		tracer: otel.GetTracerProvider().Tracer("chat.http"),
		logger: logger.Named("chat"),
		agent:  agentService,
	}
}

// Index serves the empty question form.
func (s API) Index(c echo.Context) error {
	ctx := otel.GetTextMapPropagator().Extract(c.Request().Context(), propagation.HeaderCarrier(c.Request().Header))

	_, span := s.tracer.Start(ctx, "index")
	defer span.End()

	return c.HTML(http.StatusOK, view.Render("", ""))
}

// Ask relays the submitted question to the agent and re-renders the form with
// the answer block. Agent-side failures are rendered into the page; the
// response status is 200 either way.
func (s API) Ask(c echo.Context) error {
	ctx := otel.GetTextMapPropagator().Extract(c.Request().Context(), propagation.HeaderCarrier(c.Request().Header))

	ctx, span := s.tracer.Start(ctx, "ask")
	defer span.End()

	var req entity.AskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	answer := s.ask(ctx, req.Message)

	return c.HTML(http.StatusOK, view.Render(req.Message, answer))
}

// ask maps every relay outcome to a displayable string.
func (s API) ask(ctx context.Context, message string) string {
	reply, err := s.agent.Ask(ctx, message)
	if err != nil {
		var runErr *agent.RunError
		if errors.As(err, &runErr) {
			s.logger.Warn("agent run failed", zap.String("status", string(runErr.Status)), zap.Error(err))
			return fmt.Sprintf("Run failed: %s", runErr.Detail())
		}
		s.logger.Error("failed to call agent", zap.Error(err))
		return fmt.Sprintf("Error calling agent: %v", err)
	}
	if reply == "" {
		return noReplySentinel
	}
	return reply
}

func (s API) Register(g *echo.Group) {
	g.GET("/", s.Index)
	g.POST("/chat", s.Ask)
}
