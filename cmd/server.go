package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"custodian/internal/config"
	"custodian/internal/core"
	"custodian/internal/db"
	"custodian/internal/distribution"
	"custodian/internal/ethereum"
	"custodian/internal/http/handler"
	"custodian/internal/http/handler/middleware"
	"custodian/internal/http/payload"
	"custodian/internal/http/server"
	"custodian/internal/repository"
	"custodian/internal/secret"
	"custodian/internal/wallet"
	"custodian/pkg/jwt"
	"custodian/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("custodian", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if config.LogFile != "" {
		logger = log.NewZapFileLogger("custodian", config.LogFile, zapcore.InfoLevel)
	}
	defer logger.Sync()

	codec, err := secret.NewCodec(config.EncryptionKey)
	if err != nil {
		logger.Errorw("failed to create secret codec", "error", err)
		return err
	}
	if codec.Weak() {
		logger.Warnw("ENCRYPTION_KEY is shorter than 32 bytes; it has been stretched, use a 32 byte key")
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewUserRepository(dbConn, codec)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	journal := repository.NewTransferJournal(dbConn)
	reportPending(logger, journal)

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(client, ethereum.Options{
		ChainID:        config.ChainID,
		ConfirmTimeout: config.ConfirmTimeout,
		PollInterval:   config.ConfirmPollInterval,
	})

	locker, closeLocker, err := newSignerLocker(logger, config)
	if err != nil {
		logger.Errorw("failed to create signer locker", "error", err)
		return err
	}
	defer closeLocker()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	custodialWallet := wallet.NewWallet(logger, ethService, locker, journal, config.ExplorerURL)
	distributor := distribution.NewDistributor(logger, custodialWallet, distribution.NewMetrics(registry))

	// custodian
	custodian := core.NewCustodian(
		logger,
		repo,
		jwtService,
		custodialWallet,
		distributor,
		config.TokenContract)

	// handler
	custodianHlr := handler.NewCustodianHandler(
		logger,
		payload.Decoder{},
		custodian)

	auth := middleware.NewAuthMiddleware(logger, custodian)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, custodianHlr.HandleRegister)
	mux.HandleFunc(handler.Authenticate, custodianHlr.HandleAuthenticate)
	mux.HandleFunc(handler.CreateAPIKey, auth.Authenticate(custodianHlr.HandleCreateAPIKey))
	mux.HandleFunc(handler.GetWallet, auth.Authenticate(custodianHlr.HandleGetWallet))
	mux.HandleFunc(handler.GetBalance, auth.Authenticate(custodianHlr.HandleGetBalance))
	mux.HandleFunc(handler.Withdraw, auth.Authenticate(custodianHlr.HandleWithdraw))
	mux.HandleFunc(handler.Distribute, auth.Authenticate(custodianHlr.HandleDistribute))
	mux.HandleFunc(handler.DistributeSingle, auth.Authenticate(custodianHlr.HandleDistributeSingle))
	mux.HandleFunc(handler.DistributeStream, auth.Authenticate(custodianHlr.HandleDistributeStream))
	mux.HandleFunc(handler.DistributeSocket, auth.AuthenticateSocket(custodianHlr.HandleDistributeSocket))
	mux.HandleFunc(handler.GetTransactions, auth.Authenticate(custodianHlr.HandleGetTransactions))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// middleware
	hdlr := middleware.NewMetricsMiddleware(registry).Instrument(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// newSignerLocker serializes submissions per signer across instances when
// redis is configured, and within this process otherwise.
func newSignerLocker(logger *zap.SugaredLogger, cfg config.App) (wallet.SignerLocker, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Infow("REDIS_ADDR not set, signer lock is local to this process")
		return wallet.NewMemoryLocker(), func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Errorw("failed to close redis client", "error", err)
		}
	}
	return wallet.NewRedisLocker(logger, client, cfg.SignerLockTTL), closeFn, nil
}

func reportPending(logger *zap.SugaredLogger, journal *repository.TransferJournal) {
	records, err := journal.Pending(context.Background())
	if err != nil {
		logger.Errorw("failed to read transfer journal", "error", err)
		return
	}

	for _, rec := range records {
		logger.Warnw("transfer submitted but never resolved",
			"transaction", rec.TransactionHash,
			"status", rec.Status,
			"reason", rec.Error,
			"from", rec.From,
			"to", rec.To,
			"kind", rec.Kind,
			"amount", rec.Amount,
			"submitted_at", rec.CreatedAt)
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
