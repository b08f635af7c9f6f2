package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"custodian/internal/core"
	"custodian/internal/distribution"
	"custodian/internal/http/handler"
	"custodian/internal/http/handler/fake"
	"custodian/internal/http/payload"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HandleDistributeSocket", func() {
	var (
		fakeService *fake.CustodianService
		srv         *httptest.Server
		conn        *websocket.Conn
	)

	BeforeEach(func() {
		fakeService = new(fake.CustodianService)
		ch := handler.NewCustodianHandler(zap.NewNop().Sugar(), payload.Decoder{}, fakeService)

		mux := http.NewServeMux()
		mux.HandleFunc(handler.DistributeSocket, ch.HandleDistributeSocket)
		srv = httptest.NewServer(mux)

		var err error
		conn, _, err = websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/distribute/ws", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		conn.Close()
		srv.Close()
	})

	readAll := func() []map[string]any {
		var events []map[string]any
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		for {
			var event map[string]any
			if err := conn.ReadJSON(&event); err != nil {
				Expect(websocket.IsCloseError(err, websocket.CloseNormalClosure)).To(BeTrue(), err.Error())
				return events
			}
			events = append(events, event)
		}
	}

	It("streams progress and closes normally", func() {
		fakeService.DistributeStub = func(_ context.Context, _ string, msg core.DistributeMessage, sink distribution.ProgressSink) (distribution.Batch, error) {
			defer GinkgoRecover()
			Expect(msg.Recipients).To(HaveLen(1))
			Expect(sink.Send(distribution.Event{Type: distribution.EventStart, Total: 1})).To(Succeed())
			Expect(sink.Send(distribution.Event{Type: distribution.EventComplete, Total: 1, Failed: 1})).To(Succeed())
			return distribution.Batch{Total: 1, Failed: 1}, nil
		}

		Expect(conn.WriteJSON(map[string]any{
			"recipients": []map[string]any{
				{"name": "bob", "walletAddress": recipientAddress, "hoursWorked": 0.5},
			},
		})).To(Succeed())

		events := readAll()
		Expect(events).To(HaveLen(2))
		Expect(events[0]["type"]).To(Equal("start"))
		Expect(events[1]["type"]).To(Equal("complete"))
		Expect(events[1]["failed"]).To(BeEquivalentTo(1))
	})

	It("answers an invalid request with an error event", func() {
		Expect(conn.WriteJSON(map[string]any{"recipients": []any{}})).To(Succeed())

		events := readAll()
		Expect(events).To(HaveLen(1))
		Expect(events[0]["type"]).To(Equal("error"))
		Expect(fakeService.DistributeCallCount()).To(BeZero())
	})

	It("cancels the distribution when the client leaves", func() {
		cancelled := make(chan struct{})
		fakeService.DistributeStub = func(ctx context.Context, _ string, _ core.DistributeMessage, sink distribution.ProgressSink) (distribution.Batch, error) {
			_ = sink.Send(distribution.Event{Type: distribution.EventStart, Total: 1})
			<-ctx.Done()
			close(cancelled)
			return distribution.Batch{}, ctx.Err()
		}

		Expect(conn.WriteJSON(map[string]any{
			"recipients": []map[string]any{
				{"name": "bob", "walletAddress": recipientAddress, "hoursWorked": 3},
			},
		})).To(Succeed())

		var first map[string]any
		Expect(conn.ReadJSON(&first)).To(Succeed())
		Expect(conn.Close()).To(Succeed())

		Eventually(cancelled).WithTimeout(5 * time.Second).Should(BeClosed())
	})
})
