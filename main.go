package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/melaverse-glitch/Mirror-Dashboard/api"
	"github.com/melaverse-glitch/Mirror-Dashboard/blob"
	"github.com/melaverse-glitch/Mirror-Dashboard/config"
	"github.com/melaverse-glitch/Mirror-Dashboard/gemini"
	"github.com/melaverse-glitch/Mirror-Dashboard/store"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	mongoClient, err := store.ConnectMongo(config.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	sessions, err := store.NewMongoStore(mongoClient.Database(config.DBName))
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Initialize S3
	blobs, err := blob.NewS3Store(context.Background(), config.AWSRegion, config.AWSBucketName)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	generator := gemini.NewClient(config.GeminiAPIKey, config.SwatchDir)

	handler := api.NewHandler(sessions, blobs, generator)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Kiosk routes
	http.HandleFunc("POST /derender", corsMiddleware(handler.DerenderHandler))
	http.HandleFunc("POST /apply-foundation", corsMiddleware(handler.ApplyFoundationHandler))

	// Dashboard routes
	http.HandleFunc("POST /admin/login", corsMiddleware(api.AdminLoginHandler))
	http.HandleFunc("GET /sessions", corsMiddleware(api.AdminAuthMiddleware(handler.SessionsHandler)))
	http.HandleFunc("GET /sessions/{id}", corsMiddleware(api.AdminAuthMiddleware(handler.SessionDetailHandler)))
	http.HandleFunc("POST /sessions/{id}/share", corsMiddleware(api.AdminAuthMiddleware(handler.ShareSessionHandler)))

	// Serve shade swatches for the client-side picker
	http.Handle("/swatches/", http.StripPrefix("/swatches/", http.FileServer(http.Dir(config.SwatchDir))))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
