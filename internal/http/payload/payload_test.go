package payload_test

import (
	"net/http/httptest"
	"strings"

	"custodian/internal/http/payload"
	"custodian/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const address = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

var _ = Describe("Decoder", func() {
	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		return payload.Decoder{}.DecodeJSONPayload(req, object)
	}

	It("decodes and validates", func() {
		var req payload.AuthRequest
		Expect(decode(`{"username":"a","password":"b"}`, &req)).To(Succeed())
		Expect(req.ToMessage().Username).To(Equal("a"))
	})

	It("rejects unknown fields", func() {
		var req payload.AuthRequest
		Expect(decode(`{"username":"a","password":"b","admin":true}`, &req)).To(MatchError(ContainSubstring("unknown field")))
	})

	It("rejects malformed json", func() {
		var req payload.AuthRequest
		Expect(decode(`{"username":`, &req)).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("reports failed rules", func() {
		var req payload.AuthRequest
		Expect(decode(`{"username":"a"}`, &req)).To(MatchError(ContainSubstring("validating payload")))
	})
})

var _ = Describe("WithdrawRequest", func() {
	DescribeTable("validation",
		func(req payload.WithdrawRequest, valid bool) {
			if valid {
				Expect(req.Validate()).To(Succeed())
			} else {
				Expect(req.Validate()).NotTo(Succeed())
			}
		},
		Entry("tokens by default", payload.WithdrawRequest{ToAddress: address, Amount: "10"}, true),
		Entry("native", payload.WithdrawRequest{ToAddress: address, Amount: "0.25", Kind: "native"}, true),
		Entry("short address", payload.WithdrawRequest{ToAddress: "0x1234", Amount: "1"}, false),
		Entry("missing amount", payload.WithdrawRequest{ToAddress: address}, false),
		Entry("negative amount", payload.WithdrawRequest{ToAddress: address, Amount: "-1"}, false),
		Entry("exponent amount", payload.WithdrawRequest{ToAddress: address, Amount: "1e18"}, false),
		Entry("unknown kind", payload.WithdrawRequest{ToAddress: address, Amount: "1", Kind: "nft"}, false),
		Entry("bad token contract", payload.WithdrawRequest{ToAddress: address, Amount: "1", TokenContract: "usdt"}, false),
	)

	It("converts the kind", func() {
		msg := payload.WithdrawRequest{ToAddress: address, Amount: "1", Kind: "native"}.ToMessage()
		Expect(msg.Kind).To(Equal(wallet.KindNative))
	})
})

var _ = Describe("DistributeRequest", func() {
	It("checks every recipient's shape", func() {
		req := payload.DistributeRequest{
			Recipients: []payload.RecipientRequest{
				{Name: "bob", WalletAddress: address, HoursWorked: 8},
				{Name: "", WalletAddress: address, HoursWorked: 1},
			},
		}
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("accepts addresses it cannot pay", func() {
		req := payload.DistributeRequest{
			Recipients: []payload.RecipientRequest{
				{Name: "bob", WalletAddress: "not-an-address", HoursWorked: 0.5},
			},
		}
		Expect(req.Validate()).To(Succeed())
	})

	It("rejects negative hours", func() {
		req := payload.DistributeRequest{
			Recipients: []payload.RecipientRequest{{Name: "bob", WalletAddress: address, HoursWorked: -2}},
		}
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects hours that cannot be paid as whole tokens", func() {
		req := payload.DistributeRequest{
			Recipients: []payload.RecipientRequest{{Name: "bob", WalletAddress: address, HoursWorked: 1e19}},
		}
		Expect(req.Validate()).To(MatchError(ContainSubstring("hoursWorked")))

		single := payload.SingleRequest{
			Recipient: payload.RecipientRequest{Name: "bob", WalletAddress: address, HoursWorked: 1e19},
		}
		Expect(single.Validate()).NotTo(Succeed())
	})

	It("rejects an empty list", func() {
		Expect(payload.DistributeRequest{}.Validate()).NotTo(Succeed())
	})

	It("keeps recipient order", func() {
		msg := payload.DistributeRequest{
			Recipients: []payload.RecipientRequest{
				{Name: "a", WalletAddress: address, HoursWorked: 1},
				{Name: "b", WalletAddress: address, HoursWorked: 2},
			},
		}.ToMessage()
		Expect(msg.Recipients[0].Name).To(Equal("a"))
		Expect(msg.Recipients[1].HoursWorked).To(Equal(2.0))
	})
})
