// Package handler processes address events pushed by Pub/Sub.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"adresses/config"
	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/constants"
	"adresses/internal/domain/entity"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	"adresses/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Outcomes reported to EventRecorder.
const (
	OutcomeOK      = "ok"
	OutcomeRetry   = "retry"
	OutcomeDropped = "dropped"
)

// EventRecorder counts handled events.
type EventRecorder interface {
	EventProcessed(eventType, outcome string)
}

// retryableError asks Pub/Sub to redeliver the message.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// TokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// EventHandler handles Pub/Sub push messages carrying address events.
// Deleting an address sweeps the images the API could not remove.
type EventHandler struct {
	verifyPushAuth bool
	validate       TokenValidator
	objectStore    service.ObjectStore
	recorder       EventRecorder
	logger         *slog.Logger
}

// EventHandlerParams holds dependencies for the EventHandler.
type EventHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ObjectStore service.ObjectStore
	Recorder    EventRecorder
}

func NewEventHandler(params EventHandlerParams) *EventHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &EventHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		objectStore:    params.ObjectStore,
		recorder:       params.Recorder,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges with 200 unless the event should be redelivered, which answers 503.
// Malformed messages are acknowledged so they are not redelivered forever.
func (h *EventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.AddressEvent
	if err := json.Unmarshal(data, &event); err != nil || event.Type == "" {
		h.logger.Error("[Worker] Failed to parse address event", slog.Any("error", err))
		h.recorder.EventProcessed("unknown", OutcomeDropped)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("address_id", event.AddressID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.process(ctx, &event); err != nil {
		retry := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process address event", slog.Any("error", err), slog.Bool("retryable", retry))
		if retry {
			h.recorder.EventProcessed(string(event.Type), OutcomeRetry)

			return c.NoContent(http.StatusServiceUnavailable)
		}
		h.recorder.EventProcessed(string(event.Type), OutcomeDropped)

		return c.NoContent(http.StatusOK)
	}

	h.recorder.EventProcessed(string(event.Type), OutcomeOK)
	reqLogger.Debug("[Worker] Address event processed")

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the request header.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *entity.AddressEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *EventHandler) process(ctx context.Context, event *entity.AddressEvent) error {
	switch event.Type {
	case entity.AddressDeleted:
		return h.sweepImages(ctx, event.AddressID)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Address event received",
			slog.String("actor_uid", event.ActorUID),
			slog.Bool("is_public", event.IsPublic),
		)

		return nil
	}
}

// sweepImages removes the objects still stored under a deleted address.
func (h *EventHandler) sweepImages(ctx context.Context, addressID string) error {
	if strings.TrimSpace(addressID) == "" || strings.Contains(addressID, "/") {
		return errors.Errorf("invalid address id %q", addressID)
	}

	prefix := constants.AddressImagePrefix + "/" + addressID + "/"
	keys, err := h.objectStore.List(ctx, prefix)
	if err != nil {
		return &retryableError{err: err}
	}

	var failed []error
	for _, key := range keys {
		if err := h.objectStore.Delete(ctx, key); err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return &retryableError{err: errors.Join(failed...)}
	}

	if len(keys) > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Swept orphaned images", slog.Int("count", len(keys)))
	}

	return nil
}

func (h *EventHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
