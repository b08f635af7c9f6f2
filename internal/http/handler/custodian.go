package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"custodian/internal/core"
	"custodian/internal/distribution"
	"custodian/internal/ethereum"
	"custodian/internal/http/handler/middleware"
	"custodian/internal/http/payload"
	"custodian/internal/secret"
	"custodian/internal/wallet"

	"go.uber.org/zap"
)

var (
	Register         = "POST /api/auth/register"
	Authenticate     = "POST /api/auth/login"
	CreateAPIKey     = "POST /api/keys"
	GetWallet        = "GET /api/wallet"
	GetBalance       = "GET /api/wallet/balance"
	Withdraw         = "POST /api/wallet/withdraw"
	Distribute       = "POST /api/distribute"
	DistributeSingle = "POST /api/distribute/single"
	DistributeStream = "POST /api/distribute/stream"
	DistributeSocket = "GET /api/distribute/ws"
	GetTransactions  = "GET /api/transactions"
)

type CustodianHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	custodian        CustodianService
}

func NewCustodianHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, custodianService CustodianService) *CustodianHandler {
	return &CustodianHandler{
		logs:             logger,
		requestValidator: requestValidator,
		custodian:        custodianService,
	}
}

func (h *CustodianHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not register", err, Register, requestId)
		return
	}

	account, err := h.custodian.Register(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
			Error:   "unexpected error occurred",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, account, http.StatusCreated, requestId)
}

func (h *CustodianHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not authenticate", err, Authenticate, requestId)
		return
	}

	token, err := h.custodian.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = "invalid username or password"
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CustodianHandler) HandleCreateAPIKey(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	var payload payload.APIKeyRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not create api key", err, CreateAPIKey, requestId)
		return
	}

	key, err := h.custodian.CreateAPIKey(r.Context(), userId, payload.Label)
	if err != nil {
		h.fail(w, "Could not create api key", err, CreateAPIKey, requestId)
		return
	}

	h.respond(w, key, http.StatusCreated, requestId)
}

func (h *CustodianHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	info, err := h.custodian.Wallet(r.Context(), userId)
	if err != nil {
		h.fail(w, "Could not retrieve wallet", err, GetWallet, requestId)
		return
	}

	h.respond(w, info, http.StatusOK, requestId)
}

func (h *CustodianHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	token := r.URL.Query().Get("token")
	if token != "" && !ethereum.IsValidAddress(token) {
		h.badRequest(w, "Could not retrieve balance", fmt.Errorf("token: %w", wallet.ErrInvalidAddress), GetBalance, requestId)
		return
	}

	balances, err := h.custodian.Balances(r.Context(), userId, token)
	if err != nil {
		h.fail(w, "Could not retrieve balance", err, GetBalance, requestId)
		return
	}

	h.respond(w, balances, http.StatusOK, requestId)
}

func (h *CustodianHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	var payload payload.WithdrawRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Withdrawal failed", err, Withdraw, requestId)
		return
	}

	h.logs.Infow("withdrawal request received",
		"to", payload.ToAddress,
		"amount", payload.Amount,
		"kind", payload.Kind,
		"handler", Withdraw,
		"request_id", requestId)

	tx, err := h.custodian.Withdraw(r.Context(), userId, payload.ToMessage())
	if err != nil {
		code, resp := errorResponse("Withdrawal failed", err)
		// a hash means the transaction reached the network
		if tx.TransactionHash != "" {
			resp.Data = tx
		}
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("withdrawal failed",
			"error", err,
			"transaction", tx.TransactionHash,
			"handler", Withdraw,
			"request_id", requestId)
		return
	}

	h.respond(w, tx, http.StatusOK, requestId)
}

func (h *CustodianHandler) HandleDistribute(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	var payload payload.DistributeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Distribution failed", err, Distribute, requestId)
		return
	}

	batch, err := h.custodian.Distribute(r.Context(), userId, payload.ToMessage(), nil)
	if err != nil {
		code, resp := errorResponse("Distribution failed", err)
		// recipients already attempted before a cancellation
		if len(batch.Results) > 0 {
			resp.Data = batch
		}
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("distribution failed",
			"error", err,
			"status", code,
			"attempted", len(batch.Results),
			"handler", Distribute,
			"request_id", requestId)
		return
	}

	h.logs.Infow("distribution finished",
		"total", batch.Total,
		"successful", batch.Successful,
		"failed", batch.Failed,
		"handler", Distribute,
		"request_id", requestId)

	h.respond(w, batch, http.StatusOK, requestId)
}

func (h *CustodianHandler) HandleDistributeSingle(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userId, _ := middleware.UserIDFrom(r.Context())

	var payload payload.SingleRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Transfer failed", err, DistributeSingle, requestId)
		return
	}

	result, err := h.custodian.WithdrawSingle(r.Context(), userId, payload.ToMessage())
	if err != nil {
		h.fail(w, "Transfer failed", err, DistributeSingle, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

// HandleGetTransactions is a placeholder; transfer history is not kept.
func (h *CustodianHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	resp := map[string][]wallet.Transaction{
		"transactions": {},
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CustodianHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *CustodianHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code, resp := errorResponse(message, err)
	h.respond(w, resp, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func (h *CustodianHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// errorResponse maps a failure to its status code. Details of internal
// failures are logged, never returned.
func errorResponse(message string, err error) (int, Response) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}

	var insufficient *wallet.InsufficientBalanceError
	var chainErr *ethereum.ChainError

	switch {
	case errors.As(err, &insufficient):
		return http.StatusPaymentRequired, resp
	case errors.Is(err, wallet.ErrInvalidAddress),
		errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, core.ErrUnsupportedKind),
		errors.Is(err, distribution.ErrNoRecipients),
		errors.Is(err, distribution.ErrInvalidRecipient),
		errors.Is(err, distribution.ErrNothingToDistribute):
		return http.StatusBadRequest, resp
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized, resp
	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound, resp
	case errors.Is(err, ethereum.ErrConfirmationTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, resp
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, resp
	case errors.As(err, &chainErr):
		return http.StatusBadGateway, resp
	case errors.Is(err, secret.ErrDecryption):
		resp.Error = "wallet secret could not be read"
		return http.StatusInternalServerError, resp
	default:
		resp.Error = "unexpected error occurred"
		return http.StatusInternalServerError, resp
	}
}
