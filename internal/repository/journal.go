package repository

import (
	"context"
	"fmt"

	"custodian/internal/wallet"
)

// TransferJournal persists the lifecycle of every submitted transfer. Rows
// left in TransferSubmitted or TransferUnconfirmed need reconciliation.
type TransferJournal struct {
	db Storage
}

func NewTransferJournal(db Storage) *TransferJournal {
	return &TransferJournal{
		db: db,
	}
}

func (j *TransferJournal) Submitted(ctx context.Context, sub wallet.Submission) error {
	record := TransferRecord{
		TransactionHash: sub.TransactionHash,
		From:            sub.From,
		To:              sub.To,
		Kind:            string(sub.Kind),
		Amount:          sub.Amount,
		Status:          TransferSubmitted,
	}

	if err := j.db.Create(ctx, &record); err != nil {
		return fmt.Errorf("record submitted transfer: %w", err)
	}
	return nil
}

func (j *TransferJournal) Confirmed(ctx context.Context, hash string, blockNumber uint64) error {
	err := j.db.UpdateBy(ctx, &TransferRecord{}, "transaction_hash", hash, map[string]any{
		"status":       TransferConfirmed,
		"block_number": blockNumber,
	})
	if err != nil {
		return fmt.Errorf("record confirmed transfer: %w", err)
	}
	return nil
}

func (j *TransferJournal) Failed(ctx context.Context, hash string, reason string) error {
	err := j.db.UpdateBy(ctx, &TransferRecord{}, "transaction_hash", hash, map[string]any{
		"status": TransferFailed,
		"error":  reason,
	})
	if err != nil {
		return fmt.Errorf("record failed transfer: %w", err)
	}
	return nil
}

// Unconfirmed marks a transfer whose confirmation wait ended without an
// answer. It may still be mined.
func (j *TransferJournal) Unconfirmed(ctx context.Context, hash string, reason string) error {
	err := j.db.UpdateBy(ctx, &TransferRecord{}, "transaction_hash", hash, map[string]any{
		"status": TransferUnconfirmed,
		"error":  reason,
	})
	if err != nil {
		return fmt.Errorf("record unconfirmed transfer: %w", err)
	}
	return nil
}

// Pending lists transfers whose outcome was never observed.
func (j *TransferJournal) Pending(ctx context.Context) ([]TransferRecord, error) {
	var records []TransferRecord

	err := j.db.GetAllBy(ctx, "status", []TransferStatus{TransferSubmitted, TransferUnconfirmed}, &records)
	if err != nil {
		return nil, fmt.Errorf("get pending transfers: %w", err)
	}
	return records, nil
}
