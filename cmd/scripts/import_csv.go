package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/K227-arch/home-solutions/internal/models"
	mongorepo "github.com/K227-arch/home-solutions/internal/repositories/mongodb"
	"github.com/K227-arch/home-solutions/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Imports historic payment rows from a CSV file with columns:
// userId,amount,status,date (YYYY-MM-DD). Used to backfill the payments
// collection when migrating from the hosted backend.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "home-solutions"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	if err := importPayments(db, csvFilePath); err != nil {
		log.Fatalf("Failed to import payments: %v", err)
	}

	log.Println("Payments imported successfully")
}

func importPayments(db *mongo.Database, csvFilePath string) error {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV file: %w", err)
	}

	if len(records) < 2 {
		return fmt.Errorf("CSV file is empty or has only a header")
	}

	paymentRepo := mongorepo.NewPaymentRepository(db)
	imported := 0

	for i, record := range records {
		// Skip header
		if i == 0 {
			continue
		}

		if len(record) < 4 {
			log.Printf("Warning: Record %d has less than 4 fields, skipping", i)
			continue
		}

		userID, err := primitive.ObjectIDFromHex(record[0])
		if err != nil {
			log.Printf("Warning: Record %d has invalid user id, skipping", i)
			continue
		}
		amount, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			log.Printf("Warning: Record %d has invalid amount, skipping", i)
			continue
		}
		status := record[2]
		date, err := time.Parse("2006-01-02", record[3])
		if err != nil {
			log.Printf("Warning: Record %d has invalid date format, skipping", i)
			continue
		}

		payment := &models.Payment{
			UserID:    userID,
			Amount:    amount,
			Status:    status,
			CreatedAt: date,
		}
		if err := paymentRepo.Create(context.Background(), payment); err != nil {
			log.Printf("Warning: Record %d could not be inserted: %v", i, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d payment records", imported, len(records)-1)
	return nil
}
