package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/loopgrid/api"
	gameapi "github.com/beka-birhanu/loopgrid/api/game"
	api_i "github.com/beka-birhanu/loopgrid/api/i"
	"github.com/beka-birhanu/loopgrid/api/identity"
	"github.com/beka-birhanu/loopgrid/config"
	logger "github.com/beka-birhanu/loopgrid/infrastruture/log"
	"github.com/beka-birhanu/loopgrid/infrastruture/repo"
	"github.com/beka-birhanu/loopgrid/infrastruture/sortedstorage"
	"github.com/beka-birhanu/loopgrid/infrastruture/token"
	"github.com/beka-birhanu/loopgrid/service"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         *repo.UserRepo
	solveRepo        *repo.SolveRepo
	leaderboard      i.Leaderboard
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	puzzleService    i.PuzzleService
	solveService     i.SolveService
	authController   api_i.Controller
	puzzleController api_i.Controller
	solveController  api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func mustLogger(name, color string) i.Logger {
	l, err := logger.New(name, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", name, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}

	solveRepo = repo.NewSolveRepo(mongoClient, config.Envs.DBName, "solves")
	if err := solveRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
}

func initLeaderboard() {
	leaderboard = sortedstorage.NewRedisLeaderboard(redisClient, config.Envs.DBName)
	appLogger.Info("Leaderboard initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initServices() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer, mustLogger("AUTH", config.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}

	puzzleService = service.NewPuzzleService(config.Envs.MinDimension, config.Envs.MaxDimension)

	solveService, err = service.NewSolveService(solveRepo, leaderboard, mustLogger("SOLVES", config.ColorMagenta), &service.SolveOptions{
		MinDimension:    config.Envs.MinDimension,
		MaxDimension:    config.Envs.MaxDimension,
		LeaderboardSize: int64(config.Envs.LeaderboardSize),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Services initialized")
}

func initControllers() {
	var err error
	authController = identity.NewIdentityServer(authService)

	puzzleController, err = gameapi.NewPuzzleController(puzzleService, solveService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle controller: %v", err))
		os.Exit(1)
	}

	solveController, err = gameapi.NewSolveController(solveService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, puzzleController, solveController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.MustLoad()
	appLogger = mustLogger("APP", config.ColorGreen)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx)
	initLeaderboard()
	initJWTTokenizer()
	initServices()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
