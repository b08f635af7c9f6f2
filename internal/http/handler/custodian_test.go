package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"custodian/internal/core"
	"custodian/internal/distribution"
	"custodian/internal/ethereum"
	"custodian/internal/http/handler"
	"custodian/internal/http/handler/fake"
	"custodian/internal/http/payload"
	"custodian/internal/secret"
	"custodian/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const recipientAddress = "0x00000000000000000000000000000000000000dd"

var _ = Describe("CustodianHandler", func() {
	var (
		ch            *handler.CustodianHandler
		fakeService   *fake.CustodianService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.CustodianService)
		fakeService.AuthenticateReturns(testToken, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		ch = handler.NewCustodianHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"test","password":"pass"}`)
			req = httptest.NewRequest("POST", "/api/auth/login", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			ch.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "test", Password: "pass"}))

				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"test"}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("password"))
			})
		})

		When("authentication fails due to incorrect credentials", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("invalid username or password"))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should hide the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/auth/register",
				strings.NewReader(`{"username":"alice","password":"long-enough"}`))
			fakeService.RegisterReturns(core.Account{UserID: "u-1", Username: "alice", Address: recipientAddress}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleRegister(w, req)
		})

		It("should return the new account", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			var account core.Account
			Expect(json.NewDecoder(w.Body).Decode(&account)).To(Succeed())
			Expect(account.UserID).To(Equal("u-1"))
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Account{}, core.ErrUserExists)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/auth/register",
					strings.NewReader(`{"username":"alice","password":"short"}`))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleWithdraw", func() {
		var body string

		BeforeEach(func() {
			body = fmt.Sprintf(`{"toAddress":"%s","amount":"2.5","kind":"native"}`, recipientAddress)
			fakeService.WithdrawReturns(wallet.Transaction{TransactionHash: "0xabc", Amount: "2.5"}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/wallet/withdraw", strings.NewReader(body))
			ch.HandleWithdraw(w, req)
		})

		It("should return the confirmed transaction", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var tx wallet.Transaction
			Expect(json.NewDecoder(w.Body).Decode(&tx)).To(Succeed())
			Expect(tx.TransactionHash).To(Equal("0xabc"))

			_, _, msg := fakeService.WithdrawArgsForCall(0)
			Expect(msg.Kind).To(Equal(wallet.KindNative))
			Expect(msg.Amount).To(Equal("2.5"))
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				body = `{"toAddress":"0x123","amount":"1"}`
			})

			It("should not call the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.WithdrawCallCount()).To(BeZero())
			})
		})

		When("the kind is unknown", func() {
			BeforeEach(func() {
				body = fmt.Sprintf(`{"toAddress":"%s","amount":"1","kind":"nft"}`, recipientAddress)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		DescribeTable("maps failures to status codes",
			func(serviceErr error, code int) {
				fakeService.WithdrawReturns(wallet.Transaction{}, serviceErr)
				w = httptest.NewRecorder()
				ch.HandleWithdraw(w, httptest.NewRequest("POST", "/api/wallet/withdraw", strings.NewReader(body)))
				Expect(w.Code).To(Equal(code))
			},
			Entry("insufficient balance", &wallet.InsufficientBalanceError{Asset: wallet.KindNative, Available: "1", Required: "2.5"}, http.StatusPaymentRequired),
			Entry("invalid amount", fmt.Errorf("withdraw native: %w", wallet.ErrInvalidAmount), http.StatusBadRequest),
			Entry("chain failure", &ethereum.ChainError{Op: "send transaction", Err: fakeErr}, http.StatusBadGateway),
			Entry("confirmation timeout", &ethereum.ChainError{Op: "wait for confirmation", Err: ethereum.ErrConfirmationTimeout}, http.StatusGatewayTimeout),
			Entry("undecryptable secret", fmt.Errorf("decrypt private key: %w", secret.ErrDecryption), http.StatusInternalServerError),
			Entry("unknown user", core.ErrUserNotFound, http.StatusNotFound),
		)

		When("the transaction was sent but not confirmed", func() {
			BeforeEach(func() {
				fakeService.WithdrawReturns(wallet.Transaction{TransactionHash: "0xpending"},
					&ethereum.ChainError{Op: "wait for confirmation", Err: ethereum.ErrConfirmationTimeout})
			})

			It("should report the hash with the error", func() {
				Expect(w.Code).To(Equal(http.StatusGatewayTimeout))
				Expect(w.Body.String()).To(ContainSubstring("0xpending"))
			})
		})
	})

	Describe("HandleGetBalance", func() {
		It("should pass the token query parameter", func() {
			token := "0x00000000000000000000000000000000000000bb"
			fakeService.BalancesReturns(core.Balances{Native: "1", Token: "2", TokenContract: token}, nil)

			ch.HandleGetBalance(w, httptest.NewRequest("GET", "/api/wallet/balance?token="+token, nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, contract := fakeService.BalancesArgsForCall(0)
			Expect(contract).To(Equal(token))
		})

		It("should reject a malformed token", func() {
			ch.HandleGetBalance(w, httptest.NewRequest("GET", "/api/wallet/balance?token=nope", nil))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.BalancesCallCount()).To(BeZero())
		})
	})

	Describe("HandleDistribute", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"recipients":[{"name":"bob","walletAddress":"%s","hoursWorked":8.5},{"name":"eve","walletAddress":"bad","hoursWorked":3}]}`, recipientAddress)
			req = httptest.NewRequest("POST", "/api/distribute", strings.NewReader(body))
			fakeService.DistributeReturns(distribution.Batch{Total: 2, Successful: 1, Failed: 1}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleDistribute(w, req)
		})

		It("should leave per recipient checks to the distribution", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, _, msg, sink := fakeService.DistributeArgsForCall(0)
			Expect(sink).To(BeNil())
			Expect(msg.Recipients).To(HaveLen(2))
			Expect(msg.Recipients[1].WalletAddress).To(Equal("bad"))

			var batch distribution.Batch
			Expect(json.NewDecoder(w.Body).Decode(&batch)).To(Succeed())
			Expect(batch.Failed).To(Equal(1))
		})

		When("the distribution is cancelled part way", func() {
			BeforeEach(func() {
				partial := distribution.Batch{
					Results: []distribution.TransferResult{{
						Success:     true,
						Recipient:   distribution.Recipient{Name: "bob", WalletAddress: recipientAddress, HoursWorked: 8.5},
						Transaction: &wallet.Transaction{TransactionHash: "0xdone"},
					}},
					Total:      2,
					Successful: 1,
				}
				fakeService.DistributeReturns(partial, fmt.Errorf("distribute: %w", context.Canceled))
			})

			It("should return 503 with the recipients already attempted", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))

				var resp struct {
					Message string             `json:"message"`
					Data    distribution.Batch `json:"data"`
					Error   string             `json:"error"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Error).To(ContainSubstring("context canceled"))
				Expect(resp.Data.Total).To(Equal(2))
				Expect(resp.Data.Results).To(HaveLen(1))
				Expect(resp.Data.Results[0].Transaction.TransactionHash).To(Equal("0xdone"))
			})
		})

		When("the distribution fails before any recipient", func() {
			BeforeEach(func() {
				fakeService.DistributeReturns(distribution.Batch{}, core.ErrUserNotFound)
			})

			It("should return the error without data", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).NotTo(ContainSubstring(`"data"`))
			})
		})

		When("the recipient list is empty", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/distribute", strings.NewReader(`{"recipients":[]}`))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DistributeCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleDistributeStream", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"recipients":[{"name":"bob","walletAddress":"%s","hoursWorked":2}]}`, recipientAddress)
			req = httptest.NewRequest("POST", "/api/distribute/stream", strings.NewReader(body))

			fakeService.DistributeStub = func(_ context.Context, _ string, _ core.DistributeMessage, sink distribution.ProgressSink) (distribution.Batch, error) {
				recipient := distribution.Recipient{Name: "bob", WalletAddress: recipientAddress, HoursWorked: 2}
				Expect(sink.Send(distribution.Event{Type: distribution.EventStart, Total: 1})).To(Succeed())
				Expect(sink.Send(distribution.Event{Type: distribution.EventProgress, Recipient: recipient, Status: distribution.StatusProcessing})).To(Succeed())
				Expect(sink.Send(distribution.Event{Type: distribution.EventProgress, Recipient: recipient, Status: distribution.StatusSuccess})).To(Succeed())
				Expect(sink.Send(distribution.Event{Type: distribution.EventComplete, Total: 1, Successful: 1})).To(Succeed())
				return distribution.Batch{Total: 1, Successful: 1}, nil
			}
		})

		JustBeforeEach(func() {
			ch.HandleDistributeStream(w, req)
		})

		It("should stream the events in order", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))
			Expect(w.Flushed).To(BeTrue())

			events := strings.Split(strings.TrimSpace(w.Body.String()), "\n\n")
			Expect(events).To(HaveLen(4))
			Expect(events[0]).To(Equal(`data: {"type":"start","total":1}`))
			Expect(events[1]).To(ContainSubstring(`"status":"processing"`))
			Expect(events[2]).To(ContainSubstring(`"status":"success"`))
			Expect(events[3]).To(Equal(`data: {"type":"complete","total":1,"successful":1,"failed":0}`))
		})

		When("the call itself fails", func() {
			BeforeEach(func() {
				fakeService.DistributeStub = nil
				fakeService.DistributeReturns(distribution.Batch{}, core.ErrUserNotFound)
			})

			It("should send an error event", func() {
				Expect(w.Body.String()).To(Equal(`data: {"type":"error","error":"user not found"}` + "\n\n"))
			})
		})
	})

	Describe("HandleGetTransactions", func() {
		It("should return an empty list", func() {
			ch.HandleGetTransactions(w, httptest.NewRequest("GET", "/api/transactions", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal(`{"transactions":[]}`))
		})
	})
})
