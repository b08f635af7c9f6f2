package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"custodian/internal/distribution"
	"custodian/internal/http/handler/middleware"
	"custodian/internal/http/payload"

	"github.com/gorilla/websocket"
)

const (
	socketWriteWait = 10 * time.Second
	socketReadLimit = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleDistributeStream runs a distribution and pushes every progress event
// as a server-sent event. Closing the connection cancels the recipients not
// yet attempted.
func (h *CustodianHandler) HandleDistributeStream(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	var payload payload.DistributeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Distribution failed", err, DistributeStream, requestId)
		return
	}

	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sink := &sseSink{w: w, rc: rc}
	if err := rc.Flush(); err != nil {
		h.logs.Errorw("streaming not supported",
			"error", err,
			"handler", DistributeStream,
			"request_id", requestId)
		return
	}

	_, err := h.custodian.Distribute(r.Context(), userId, payload.ToMessage(), sink)
	if err != nil {
		h.logs.Errorw("distribution stream failed",
			"error", err,
			"handler", DistributeStream,
			"request_id", requestId)
		if errors.Is(err, context.Canceled) {
			return
		}
		if sendErr := sink.Send(errorEvent(err)); sendErr != nil {
			h.logs.Errorw("failed to deliver error event",
				"error", sendErr,
				"request_id", requestId)
		}
	}
}

// HandleDistributeSocket upgrades to a websocket, reads one distribution
// request as the first message and answers with progress events. The
// connection is closed once the complete or error event has been sent.
func (h *CustodianHandler) HandleDistributeSocket(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		h.logs.Errorw("failed to upgrade websocket connection",
			"error", err,
			"handler", DistributeSocket,
			"request_id", requestId)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(socketReadLimit)

	sink := &socketSink{conn: conn}

	var req payload.DistributeRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.sendSocketError(sink, fmt.Errorf("invalid request payload: %w", err), requestId)
		h.closeSocket(sink, requestId)
		return
	}
	if err := payload.Validate(req); err != nil {
		h.sendSocketError(sink, fmt.Errorf("invalid request payload: %w", err), requestId)
		h.closeSocket(sink, requestId)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the client sends nothing after the request; a failed read means it left
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	_, err = h.custodian.Distribute(ctx, userId, req.ToMessage(), sink)
	if err != nil {
		h.logs.Errorw("distribution socket failed",
			"error", err,
			"handler", DistributeSocket,
			"request_id", requestId)
		if errors.Is(err, context.Canceled) {
			return
		}
		h.sendSocketError(sink, err, requestId)
	}

	h.closeSocket(sink, requestId)
}

func (h *CustodianHandler) sendSocketError(sink *socketSink, err error, requestId string) {
	if sendErr := sink.Send(errorEvent(err)); sendErr != nil {
		h.logs.Errorw("failed to deliver error event",
			"error", sendErr,
			"request_id", requestId)
	}
}

func (h *CustodianHandler) closeSocket(sink *socketSink, requestId string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := sink.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(socketWriteWait)); err != nil {
		h.logs.Errorw("failed to close websocket", "error", err, "request_id", requestId)
	}
}

func errorEvent(err error) distribution.Event {
	return distribution.Event{
		Type:  distribution.EventError,
		Error: err.Error(),
	}
}

type sseSink struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func (s *sseSink) Send(event distribution.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	return s.rc.Flush()
}

type socketSink struct {
	conn *websocket.Conn
}

func (s *socketSink) Send(event distribution.Event) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(socketWriteWait)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	return s.conn.WriteJSON(event)
}
