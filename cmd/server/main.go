package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"likelemba/internal/audit"
	auditrepo "likelemba/internal/audit/repository"
	"likelemba/internal/config"
	"likelemba/internal/db"
	"likelemba/internal/devotp"
	devhandler "likelemba/internal/devotp/handler"
	identityservice "likelemba/internal/identity/service"
	otprepo "likelemba/internal/otp/repository"
	"likelemba/internal/otp/sms"
	policyengine "likelemba/internal/policy/engine"
	policyrepo "likelemba/internal/policy/repository"
	"likelemba/internal/security"
	"likelemba/internal/server"
	"likelemba/internal/server/interceptors"
	sessionrepo "likelemba/internal/session/repository"
	"likelemba/internal/telemetry"
	telemetryotel "likelemba/internal/telemetry/otel"
	"likelemba/internal/telemetry/producer"
	tontinerepo "likelemba/internal/tontine/repository"
	tontineservice "likelemba/internal/tontine/service"
	userrepo "likelemba/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	providers, err := telemetryotel.NewProviders(ctx, telemetryotel.Settings{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Environment: cfg.Env,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()

	var database *sql.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer database.Close()
	} else {
		log.Println("DATABASE_URL not set; using in-memory repositories")
	}

	tokens, err := newTokenProvider(cfg)
	if err != nil {
		log.Fatalf("tokens: %v", err)
	}

	challenges, closeChallenges, err := newChallengeStore(ctx, cfg, database)
	if err != nil {
		log.Fatalf("otp store: %v", err)
	}
	defer closeChallenges()

	emitters := []telemetry.EventEmitter{telemetryotel.NewEventEmitter(providers.LoggerProvider)}
	kafkaProducer, err := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.KafkaTopic)
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if kafkaProducer != nil {
		emitters = append(emitters, kafkaProducer)
		defer kafkaProducer.Close()
		log.Printf("telemetry: producing events to kafka topic %s", cfg.KafkaTopic)
	}
	emitter := telemetry.Multi(emitters...)

	metrics, err := telemetryotel.NewAuthMetrics(providers.MeterProvider)
	if err != nil {
		log.Fatalf("metrics: %v", err)
	}

	otpCfg := identityservice.Config{
		Digits:        cfg.OTPDigits,
		TTL:           cfg.OTPTTL,
		MaxAttempts:   cfg.OTPMaxAttempts,
		SendLimit:     cfg.OTPSendLimit,
		SendWindow:    cfg.OTPSendWindow,
		AllowedPrefix: cfg.OTPAllowedPrefix,
		DevMode:       cfg.OTPReturnToClient,
	}
	deps := identityservice.Deps{
		Challenges: challenges,
		Tokens:     tokens,
		Telemetry:  emitter,
		Metrics:    metrics,
	}
	var (
		auditRepo   auditrepo.Repository
		policyStore policyrepo.Repository
		tontineRepo tontinerepo.Store
		devStore    *devotp.MemoryStore
	)
	if database != nil {
		deps.Users = userrepo.NewPostgresRepository(database)
		deps.Sessions = sessionrepo.NewPostgresRepository(database)
		auditRepo = auditrepo.NewPostgresRepository(database)
		policyStore = policyrepo.NewPostgresRepository(database)
		tontineRepo = tontinerepo.NewPostgresRepository(database)
		deps.Audit = audit.NewLogger(auditRepo, interceptors.ClientIP)
	} else {
		deps.Users = userrepo.NewMemoryRepository()
		deps.Sessions = sessionrepo.NewMemoryRepository()
		tontineRepo = tontinerepo.NewMemoryRepository(cfg.OTPReturnToClient)
	}
	policy := policyengine.NewOPAEvaluator(policyStore)
	deps.Policy = policy

	if cfg.OTPReturnToClient {
		devStore = devotp.NewMemoryStore()
		deps.DevOTP = devStore
		log.Println("WARNING: dev OTP mode enabled; codes are not sent by SMS and are readable via DevService")
	} else if cfg.SMSLocalAPIKey != "" {
		deps.SMS = sms.NewSMSLocalClient(cfg.SMSLocalAPIKey, cfg.SMSLocalBaseURL, cfg.SMSLocalSender)
	} else {
		log.Println("WARNING: no SMS_LOCAL_API_KEY and dev OTP disabled; SendCode will fail")
	}

	authSvc := identityservice.NewAuthService(deps, otpCfg)

	srvDeps := server.Deps{
		Auth:                authSvc,
		Tontine:             tontineservice.NewService(tontineRepo, deps.Users),
		HealthPolicyChecker: policy,
	}
	if database != nil {
		srvDeps.HealthPinger = database
	}
	if devStore != nil {
		srvDeps.DevOTPHandler = devhandler.NewServer(devStore)
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	skip := server.UnauditedMethods()
	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.AuthUnary(tokens, server.PublicMethods(), authSvc.SessionActive),
			interceptors.AuditUnary(auditRepo, skip),
			interceptors.TelemetryUnary(emitter, skip),
		),
	)
	server.RegisterServices(s, srvDeps)

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	s.GracefulStop()
	time.Sleep(telemetry.ShutdownDrainDuration)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("otel shutdown: %v", err)
	}
	log.Println("gRPC server stopped")
}

// newTokenProvider loads the configured signing key. Without one, development servers
// sign with an ephemeral key; production refuses to start.
func newTokenProvider(cfg *config.Config) (*security.TokenProvider, error) {
	privatePEM, publicPEM := cfg.JWTPrivateKey, cfg.JWTPublicKey
	if privatePEM == "" {
		if cfg.Env == "production" {
			return nil, errors.New("JWT_PRIVATE_KEY is required in production")
		}
		log.Println("WARNING: JWT_PRIVATE_KEY not set; signing with an ephemeral key, sessions end on restart")
		var err error
		privatePEM, publicPEM, err = security.GenerateTestKeyPEM()
		if err != nil {
			return nil, err
		}
	}
	signer, pub, err := security.LoadKeyPair(privatePEM, publicPEM)
	if err != nil {
		return nil, err
	}
	return security.NewTokenProvider(signer, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
}

// newChallengeStore selects the OTP challenge store named by OTP_STORE.
func newChallengeStore(ctx context.Context, cfg *config.Config, database *sql.DB) (otprepo.Repository, func(), error) {
	switch cfg.OTPStore {
	case config.OTPStoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Printf("otp: challenges stored in redis at %s", opts.Addr)
		return otprepo.NewRedisRepository(client, ""), func() { _ = client.Close() }, nil
	case config.OTPStorePostgres:
		if database == nil {
			return nil, nil, db.ErrNoDSN
		}
		return otprepo.NewPostgresRepository(database), func() {}, nil
	default:
		return otprepo.NewMemoryRepository(), func() {}, nil
	}
}
