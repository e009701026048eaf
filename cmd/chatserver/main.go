// Package main provides the chat server. It registers player sessions and
// team membership on behalf of the world servers that dial its gRPC link.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/chat/team"
	"github.com/cory-johannsen/chatd/internal/chatserver"
	chatv1 "github.com/cory-johannsen/chatd/internal/chatserver/chatv1"
	"github.com/cory-johannsen/chatd/internal/config"
	"github.com/cory-johannsen/chatd/internal/observability"
	"github.com/cory-johannsen/chatd/internal/server"
	"github.com/cory-johannsen/chatd/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting chatd",
		zap.String("worldlink_addr", cfg.WorldLink.Addr()),
		zap.Duration("logout_grace_period", cfg.Chat.LogoutGracePeriod),
	)

	// Connect to PostgreSQL
	ctx := context.Background()
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Name),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	// Build services
	activity := postgres.NewActivityLogRepository(pool.DB())
	notifier := chatserver.NewStreamNotifier(cfg.WorldLink.SendBuffer, observability.ComponentLogger(logger, "notifier"))
	players := player.NewRegistry(cfg.Chat, notifier, activity, observability.ComponentLogger(logger, "players"))
	teams := team.NewRegistry(cfg.Chat, players, notifier, observability.ComponentLogger(logger, "teams"))
	players.SetTeams(teams)
	notifier.SetDirectory(players)

	service := chatserver.NewService(players, teams, observability.ComponentLogger(logger, "chatserver"))
	linkServer := chatserver.NewLinkServer(service, notifier, observability.ComponentLogger(logger, "worldlink"))
	ticker := chatserver.NewTicker(service, cfg.Chat.TickInterval, observability.ComponentLogger(logger, "ticker"))

	grpcServer := grpc.NewServer()
	chatv1.RegisterChatLinkServiceServer(grpcServer, linkServer)

	// Wire lifecycle
	lifecycle := server.NewLifecycle(logger)

	lifecycle.Add("postgres", &server.FuncService{
		StartFn: func() error {
			for {
				time.Sleep(30 * time.Second)
				if err := pool.Health(ctx, 5*time.Second); err != nil {
					logger.Warn("database health check failed", zap.Error(err))
				}
			}
		},
		StopFn: func() {
			pool.Close()
		},
	})

	lifecycle.Add("ticker", ticker)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.WorldLink.Addr())
			if err != nil {
				return err
			}
			logger.Info("world link listening", zap.String("addr", cfg.WorldLink.Addr()))
			return grpcServer.Serve(lis)
		},
		StopFn: func() {
			grpcServer.GracefulStop()
			service.Shutdown(ctx)
		},
	})

	logger.Info("chatd initialized", zap.Duration("startup", time.Since(start)))

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
