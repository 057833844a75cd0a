package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/itinerary-planner/internal/config"
	"github.com/Leganyst/itinerary-planner/internal/db"
	"github.com/Leganyst/itinerary-planner/internal/handler"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
	"github.com/Leganyst/itinerary-planner/internal/service"
)

func main() {
	// 1. .env (optional) and config.
	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("load env file: %v", err)
	}
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	srvCfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatalf("load server config: %v", err)
	}

	// 2. Database.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 3. Services.
	elements := service.NewElementService(gormDB, service.NewPassengerLookup(repository.NewGormPassengerRepository(gormDB)))
	options := service.NewOptionService(gormDB, elements)
	sections := service.NewSectionService(gormDB, options)
	trips := service.NewTripService(gormDB, sections)
	access := service.NewAccess(repository.NewGormTripRepository(gormDB))

	// 4. HTTP API.
	if srvCfg.GinMode != "" {
		gin.SetMode(srvCfg.GinMode)
	}
	h := handler.New(trips, sections, options, elements, access, sqlDB)
	httpServer := &http.Server{
		Addr: srvCfg.HTTPAddr,
		Handler: handler.NewRouter(h, handler.RouterConfig{
			JWTSecret:   srvCfg.JWTSecret,
			CORSOrigins: srvCfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. gRPC health + reflection.
	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", srvCfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", srvCfg.GRPCAddr, err)
	}

	go func() {
		log.Printf("gRPC health server listening on %s", srvCfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	go func() {
		log.Printf("HTTP API listening on %s", srvCfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.Printf("database ping failed, health stays NOT_SERVING: %v", err)
	} else {
		healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	}
	cancelPing()

	// 6. Graceful shutdown on signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")
	healthSrv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	grpcServer.GracefulStop()
}
