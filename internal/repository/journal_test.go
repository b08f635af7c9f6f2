package repository_test

import (
	"context"
	"errors"

	"custodian/internal/repository"
	"custodian/internal/repository/fake"
	"custodian/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TransferJournal", func() {
	var (
		journal     *repository.TransferJournal
		fakeStorage *fake.Storage
		ctx         context.Context
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		journal = repository.NewTransferJournal(fakeStorage)
		ctx = context.Background()
	})

	It("records a submission as pending", func() {
		err := journal.Submitted(ctx, wallet.Submission{
			TransactionHash: "0xabc",
			From:            "0x01",
			To:              "0x02",
			Kind:            wallet.KindToken,
			Amount:          "8",
		})
		Expect(err).NotTo(HaveOccurred())

		_, record := fakeStorage.CreateArgsForCall(0)
		Expect(record).To(Equal(&repository.TransferRecord{
			TransactionHash: "0xabc",
			From:            "0x01",
			To:              "0x02",
			Kind:            "tokens",
			Amount:          "8",
			Status:          repository.TransferSubmitted,
		}))
	})

	It("marks a confirmation with its block", func() {
		Expect(journal.Confirmed(ctx, "0xabc", 42)).To(Succeed())

		_, model, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
		Expect(model).To(BeAssignableToTypeOf(&repository.TransferRecord{}))
		Expect(column).To(Equal("transaction_hash"))
		Expect(value).To(Equal("0xabc"))
		Expect(updates).To(Equal(map[string]any{
			"status":       repository.TransferConfirmed,
			"block_number": uint64(42),
		}))
	})

	It("marks a failure with the reason", func() {
		fakeStorage.UpdateByReturns(errors.New("db down"))

		err := journal.Failed(ctx, "0xabc", "timed out")
		Expect(err).To(MatchError(ContainSubstring("record failed transfer")))

		_, _, _, _, updates := fakeStorage.UpdateByArgsForCall(0)
		Expect(updates).To(HaveKeyWithValue("error", "timed out"))
		Expect(updates).To(HaveKeyWithValue("status", repository.TransferFailed))
	})

	It("marks a wait without an answer as unconfirmed", func() {
		Expect(journal.Unconfirmed(ctx, "0xabc", "timed out waiting for confirmation")).To(Succeed())

		_, _, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
		Expect(column).To(Equal("transaction_hash"))
		Expect(value).To(Equal("0xabc"))
		Expect(updates).To(Equal(map[string]any{
			"status": repository.TransferUnconfirmed,
			"error":  "timed out waiting for confirmation",
		}))
	})

	It("wraps unconfirmed update errors", func() {
		fakeStorage.UpdateByReturns(errors.New("db down"))
		Expect(journal.Unconfirmed(ctx, "0xabc", "cancelled")).To(MatchError(ContainSubstring("record unconfirmed transfer")))
	})

	It("lists submitted and unconfirmed transfers as pending", func() {
		fakeStorage.GetAllByStub = func(_ context.Context, column string, value any, dest any) error {
			Expect(column).To(Equal("status"))
			Expect(value).To(ConsistOf(repository.TransferSubmitted, repository.TransferUnconfirmed))
			*dest.(*[]repository.TransferRecord) = []repository.TransferRecord{{TransactionHash: "0x1"}, {TransactionHash: "0x2"}}
			return nil
		}

		records, err := journal.Pending(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
	})

	It("wraps pending lookup errors", func() {
		fakeStorage.GetAllByReturns(errors.New("db down"))
		_, err := journal.Pending(ctx)
		Expect(err).To(MatchError(ContainSubstring("get pending transfers")))
	})
})
