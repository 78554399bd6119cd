package router

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// New wires the whole application together and returns the root handler
// along with the mongo client so the caller controls its lifecycle.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, *mongo.Client, error) {
	// 1. Open the datastore connection; fail fast on a bad URI.
	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return nil, nil, err
	}
	logger.Info().Str("database", cfg.MongoDB).Msg("Database connection successful")

	// 2. Initialize the S3 client for course image uploads.
	s3Config, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})

	// 3. Initialize validator; report json field names in validation details.
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 4. Initialize repositories & services & handlers.
	userRepo := repository.NewUserRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	userSvc := service.NewUserService(userRepo, cfg.UserJWTSecret, tokenTTL, logger)
	adminSvc := service.NewAdminService(adminRepo, cfg.AdminJWTSecret, tokenTTL, logger)
	courseSvc := service.NewCourseService(courseRepo, s3Client, cfg.S3URL, cfg.S3Bucket, logger)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, courseRepo, logger)

	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	adminHandler := handler.NewAdminHandler(adminSvc, courseSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, purchaseSvc, validate, logger)

	// 5. Auth gates, one per realm.
	userGate := middleware.RequireUser(cfg.UserJWTSecret, logger)
	adminGate := middleware.RequireAdmin(cfg.AdminJWTSecret, logger)

	// 6. Mount the three route groups.
	mux := http.NewServeMux()
	userHandler.RegisterRoutes(mux)
	adminHandler.RegisterRoutes(mux, adminGate)
	courseHandler.RegisterRoutes(mux, userGate)

	// 7. CORS + request logging around everything.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.Logger(logger)(c.Handler(mux)), client, nil
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services when presigning URLs.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
