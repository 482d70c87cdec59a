package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lalith66-code/RevWheels.co/auth"
	"github.com/lalith66-code/RevWheels.co/routes"
	"github.com/lalith66-code/RevWheels.co/session"
	"github.com/lalith66-code/RevWheels.co/store"
)

func main() {
	log.Println("✅ Starting RevWheels.co...")

	// Load environment variables
	_ = godotenv.Load()

	dataDir := envOr("DATA_DIR", "data")
	uploadsDir := envOr("UPLOADS_DIR", filepath.Join("static", "uploads"))
	backupDir := envOr("BACKUP_DIR", filepath.Join("backup", "data"))

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create uploads dir: %v", err)
	}

	// Init document store
	st, err := store.New(dataDir)
	if err != nil {
		log.Fatalf("❌ Failed to init document store: %v", err)
	}

	session.Init(envOr("SESSION_SECRET", "dev-session-secret"))

	admins := auth.LoadAdmins()
	if len(admins) == 0 {
		log.Println("⚠️ ADMIN_CREDENTIALS is empty, admin console is locked out")
	}

	// Gin setup
	r := gin.Default()

	// Payment screenshots and shirt prints stay small
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded assets
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, st, admins, uploadsDir)

	// Snapshot the JSON documents daily at 2 AM, keep 4 days of backups
	go startDailyBackupAtFixedTime(dataDir, backupDir, 4*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// startDailyBackupAtFixedTime snapshots the data documents daily at a
// fixed hour and removes backups past the retention window.
func startDailyBackupAtFixedTime(dataDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next data backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDocuments(dataDir, destDir); err != nil {
			log.Printf("❌ Failed to back up documents: %v", err)
		} else {
			log.Printf("✅ Documents backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDocuments copies the JSON documents out of dataDir.
func copyDocuments(dataDir, destDir string) error {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		src := filepath.Join(dataDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		if err := copyFile(src, dest); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
