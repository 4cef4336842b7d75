package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/clock"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/kaspa"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/repository/clickhouse"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/service"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/tip"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/metrics"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var config struct {
	Addr     string `long:"addr" env:"API_SERVER_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr string `long:"rest-addr" env:"API_SERVER_REST_ADDR" description:"REST listen address" default:":8001"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"clickhouse dsn" required:"true"`
	Network       string `long:"network" env:"NETWORK" description:"kaspa network" choice:"mainnet" choice:"testnet" choice:"simnet" choice:"devnet" default:"mainnet"`
	BPS           uint64 `long:"bps" env:"BPS" description:"network blocks per second" choice:"1" choice:"10" default:"10"`

	NodeAddr        string        `long:"node-addr" env:"KASPAD_ADDR" description:"kaspad gRPC address" default:"localhost:16110"`
	NodeConnections int           `long:"node-connections" env:"KASPAD_CONNECTIONS" description:"concurrent kaspad connections" default:"4"`
	NodeTimeout     time.Duration `long:"node-timeout" env:"KASPAD_TIMEOUT" description:"kaspad call timeout" default:"10s"`
	NodeRPS         int           `long:"node-rps" env:"KASPAD_RPS" description:"accepting block fallback calls per second, 0 for unlimited" default:"20"`

	TipInterval         time.Duration `long:"tip-interval" env:"TIP_REFRESH_INTERVAL" description:"chain tip refresh interval" default:"5s"`
	IDSearchLimit       int           `long:"id-search-limit" env:"ID_SEARCH_LIMIT" description:"max transaction ids per search" default:"1000"`
	ResolveLimit        int           `long:"resolve-limit" env:"RESOLVE_LIMIT" description:"max transactions per request when resolving previous outpoints" default:"50"`
	BlueScoreRangeLimit uint64        `long:"blue-score-range-limit" env:"BLUE_SCORE_RANGE_LIMIT" description:"max accepting blue score range per search" default:"2000"`
	GenesisTimestamp    int64         `long:"genesis-timestamp" env:"GENESIS_TIMESTAMP" description:"genesis block time in epoch milliseconds, 0 for the network default"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	network, err := model.ParseNetwork(config.Network)
	if err != nil {
		logger.Fatal("Parse network", zap.Error(err))
	}
	logger = logger.With(zap.String("network", string(network)))

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Create clickhouse repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Close clickhouse repository", zap.Error(err))
		}
	}()

	caps, err := repo.ProbeCapabilities(ctx, network)
	if err != nil {
		logger.Fatal("Probe clickhouse capabilities", zap.Error(err))
	}
	logger.Info("Storage capabilities", zap.Bool("address_index", caps.AddressIndex))

	rawClients, closeNode, err := kaspa.Dial(config.NodeAddr, config.NodeConnections, config.NodeTimeout)
	if err != nil {
		logger.Fatal("Connect to kaspad", zap.Error(err), zap.String("addr", config.NodeAddr))
	}
	defer closeNode()
	node := kaspa.NewRPCClient(rawClients, metrics.NewRPCClient(network))

	decoder, err := kaspa.NewScriptDecoder(network)
	if err != nil {
		logger.Fatal("Create script decoder", zap.Error(err))
	}

	tracker, err := tip.NewTracker(node, metrics.NewTipTracker(network), config.TipInterval, logger)
	if err != nil {
		logger.Fatal("Create tip tracker", zap.Error(err))
	}
	go func() {
		if err := tracker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Tip tracker stopped", zap.Error(err))
		}
	}()

	genesis := config.GenesisTimestamp
	if genesis == 0 {
		genesis = kaspa.GenesisTimestamp(network)
	}

	explorer, err := service.NewExplorer(service.Config{
		Network:             network,
		IDSearchLimit:       config.IDSearchLimit,
		ResolveLimit:        config.ResolveLimit,
		BlueScoreRangeLimit: config.BlueScoreRangeLimit,
		NodeTimeout:         config.NodeTimeout,
	}, service.Dependencies{
		Transactions: repo,
		Node:         node,
		Decoder:      decoder,
		Tip:          tracker,
		Paginator:    service.NewAddressPaginator(repo.AddressIndex(caps), network, genesis, clock.System{}),
		Outpoints:    service.NewPreviousOutpointResolver(repo, decoder, network, logger),
		Acceptances: service.NewBlockAcceptanceResolver(repo, node, network, service.AcceptanceResolverConfig{
			NodeRPS:     config.NodeRPS,
			NodeWorkers: config.NodeConnections,
			NodeTimeout: config.NodeTimeout,
		}, logger),
		Cache:   service.NewTipCachePolicy(tracker, config.BPS, clock.System{}),
		Metrics: metrics.NewExplorer(network),
	}, logger)
	if err != nil {
		logger.Fatal("Create explorer", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(repo, node, logger))

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}

	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	router := transport.NewRESTHandler(explorer, logger).Router(mux)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: append([]string{"Cache-Control"}, transport.ExposedHeaders...),
	})

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           corsHandler.Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
