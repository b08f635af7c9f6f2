package distribution

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"custodian/internal/ethereum"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	ErrNoRecipients        error = errors.New("recipient list is empty")
	ErrMissingPrivateKey   error = errors.New("private key is required")
	ErrInvalidRecipient    error = errors.New("invalid recipient")
	ErrNothingToDistribute error = errors.New("no whole hours to pay")
)

// MaxHoursWorked bounds a single allocation so the token count always fits
// in an int64.
const MaxHoursWorked float64 = 1 << 53

// TokensForHours converts hours worked into whole tokens, rounding down.
// Hours outside (0, MaxHoursWorked] yield zero.
func TokensForHours(hours float64) int64 {
	if !(hours > 0) || hours > MaxHoursWorked {
		return 0
	}
	return int64(math.Floor(hours)) * TokensPerHour
}

// Distributor pays recipients from a single custodial signer. Transfers
// within a batch run strictly one after another.
type Distributor struct {
	logs       *zap.SugaredLogger
	transferer Transferer
	metrics    *Metrics
}

func NewDistributor(logger *zap.SugaredLogger, transferer Transferer, metrics *Metrics) *Distributor {
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}

	return &Distributor{
		logs:       logger,
		transferer: transferer,
		metrics:    metrics,
	}
}

// Distribute attempts one transfer per recipient in input order. A failed
// recipient is recorded in the batch and never stops the loop. Only input
// shape violations and cancellation return an error; on cancellation the
// batch holds the recipients attempted so far.
func (d *Distributor) Distribute(ctx context.Context, privateKey string, recipients []Recipient, tokenContract string, sink ProgressSink) (Batch, error) {
	if err := validateShape(privateKey, recipients, tokenContract); err != nil {
		return Batch{}, err
	}

	d.metrics.inFlight.Inc()
	defer d.metrics.inFlight.Dec()
	timer := prometheus.NewTimer(d.metrics.batchDuration)
	defer timer.ObserveDuration()

	started := time.Now()
	batch := Batch{
		Results: make([]TransferResult, 0, len(recipients)),
		Total:   len(recipients),
	}

	d.emit(sink, Event{Type: EventStart, Total: len(recipients)})

	for i, recipient := range recipients {
		if err := ctx.Err(); err != nil {
			d.logs.Errorw("distribution cancelled",
				"error", err,
				"attempted", len(batch.Results),
				"total", len(recipients))
			return batch, err
		}

		d.emit(sink, Event{
			Type:      EventProgress,
			Index:     i,
			Recipient: recipient,
			Status:    StatusProcessing,
		})

		result := d.transfer(ctx, privateKey, recipient, tokenContract)
		batch.append(result)
		d.metrics.observeResult(result)

		event := Event{
			Type:        EventProgress,
			Index:       i,
			Recipient:   recipient,
			Status:      StatusSuccess,
			Transaction: result.Transaction,
		}
		if !result.Success {
			event.Status = StatusFailed
			event.Error = result.Error
			d.logs.Errorw("recipient transfer failed",
				"index", i,
				"recipient", recipient.Name,
				"address", recipient.WalletAddress,
				"error", result.Error)
		}
		d.emit(sink, event)
	}

	d.emit(sink, Event{
		Type:       EventComplete,
		Total:      batch.Total,
		Successful: batch.Successful,
		Failed:     batch.Failed,
	})

	d.logs.Infow("distribution complete",
		"total", batch.Total,
		"successful", batch.Successful,
		"failed", batch.Failed,
		"duration", time.Since(started))

	return batch, nil
}

// WithdrawSingle pays one recipient. Unlike Distribute, every failure is
// returned to the caller.
func (d *Distributor) WithdrawSingle(ctx context.Context, privateKey string, recipient Recipient, tokenContract string) (TransferResult, error) {
	if privateKey == "" {
		return TransferResult{}, ErrMissingPrivateKey
	}
	if err := validateRecipient(recipient); err != nil {
		return TransferResult{}, err
	}

	tokens := TokensForHours(recipient.HoursWorked)
	if tokens < 1 {
		return TransferResult{}, ErrNothingToDistribute
	}

	tx, err := d.transferer.WithdrawTokens(ctx, privateKey, recipient.WalletAddress, strconv.FormatInt(tokens, 10), tokenContract)
	if err != nil {
		d.metrics.observeResult(TransferResult{})
		return TransferResult{}, fmt.Errorf("withdraw tokens: %w", err)
	}

	result := TransferResult{
		Success:      true,
		Recipient:    recipient,
		Distribution: allocation(recipient),
		Transaction:  &tx,
	}
	d.metrics.observeResult(result)
	return result, nil
}

func (d *Distributor) transfer(ctx context.Context, privateKey string, recipient Recipient, tokenContract string) TransferResult {
	result := TransferResult{
		Recipient:    recipient,
		Distribution: allocation(recipient),
	}

	if err := validateRecipient(recipient); err != nil {
		result.Error = err.Error()
		return result
	}

	tokens := result.Distribution.TokensDistributed
	if tokens < 1 {
		result.Error = ErrNothingToDistribute.Error()
		return result
	}

	tx, err := d.transferer.WithdrawTokens(ctx, privateKey, recipient.WalletAddress, strconv.FormatInt(tokens, 10), tokenContract)
	if err != nil {
		result.Error = err.Error()
		// the transaction reached the network; its hash is needed to reconcile
		if tx.TransactionHash != "" {
			result.Error = fmt.Sprintf("transaction %s not confirmed: %v", tx.TransactionHash, err)
		}
		return result
	}

	result.Success = true
	result.Transaction = &tx
	return result
}

func (d *Distributor) emit(sink ProgressSink, event Event) {
	if sink == nil {
		return
	}
	if err := sink.Send(event); err != nil {
		d.logs.Errorw("failed to deliver progress event", "error", err, "type", event.Type)
	}
}

func allocation(recipient Recipient) Allocation {
	return Allocation{
		HoursWorked:       recipient.HoursWorked,
		TokensDistributed: TokensForHours(recipient.HoursWorked),
		Rate:              TokensPerHour,
	}
}

func validateShape(privateKey string, recipients []Recipient, tokenContract string) error {
	if len(recipients) == 0 {
		return ErrNoRecipients
	}
	if privateKey == "" {
		return ErrMissingPrivateKey
	}
	if !ethereum.IsValidAddress(tokenContract) {
		return fmt.Errorf("token contract: %w: %q", ethereum.ErrInvalidAddress, tokenContract)
	}
	return nil
}

func validateRecipient(r Recipient) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecipient)
	}
	if !ethereum.IsValidAddress(r.WalletAddress) {
		return fmt.Errorf("%w: malformed wallet address %q", ErrInvalidRecipient, r.WalletAddress)
	}
	if !(r.HoursWorked > 0) {
		return fmt.Errorf("%w: hours worked must be positive", ErrInvalidRecipient)
	}
	if r.HoursWorked > MaxHoursWorked {
		return fmt.Errorf("%w: hours worked exceeds %.0f", ErrInvalidRecipient, MaxHoursWorked)
	}
	return nil
}
