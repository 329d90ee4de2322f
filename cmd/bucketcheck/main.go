package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tendant/simple-photos/pkg/simplephotos/config"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", config.DefaultPath, "Path to the photoapp config file")
	command := flag.String("command", "help", "Command to execute: upload, download, delete, list, help")
	objectKey := flag.String("key", "", "Object key for operations")
	filePath := flag.String("file", "", "File path for upload/download")

	flag.Parse()

	if *command == "" || strings.ToLower(*command) == "help" {
		printHelp()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	fmt.Println("Checking the object store with the following configuration:")
	fmt.Printf("  Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("  Bucket: %s\n", cfg.Storage.BucketName)
	if cfg.Storage.Endpoint != "" {
		fmt.Printf("  Endpoint: %s\n", cfg.Storage.Endpoint)
	}
	fmt.Println()

	store, err := cfg.BuildObjectStore()
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	ctx := context.Background()

	switch strings.ToLower(*command) {
	case "upload":
		if *objectKey == "" || *filePath == "" {
			log.Fatal("Object key and file path are required for upload")
		}

		file, err := os.Open(*filePath)
		if err != nil {
			log.Fatalf("Failed to open file: %v", err)
		}
		defer file.Close()

		fmt.Printf("Uploading %s as %s...\n", *filePath, *objectKey)
		startTime := time.Now()
		err = store.Upload(ctx, *objectKey, file)
		duration := time.Since(startTime)
		if err != nil {
			log.Fatalf("Upload failed: %v", err)
		}
		fmt.Printf("Upload successful (took %v)\n", duration)

	case "download":
		if *objectKey == "" || *filePath == "" {
			log.Fatal("Object key and file path are required for download")
		}

		fmt.Printf("Downloading %s to %s...\n", *objectKey, *filePath)
		startTime := time.Now()
		reader, err := store.Download(ctx, *objectKey)
		if err != nil {
			log.Fatalf("Download failed: %v", err)
		}
		defer reader.Close()

		file, err := os.Create(*filePath)
		if err != nil {
			log.Fatalf("Failed to create file: %v", err)
		}
		defer file.Close()

		bytesWritten, err := io.Copy(file, reader)
		duration := time.Since(startTime)
		if err != nil {
			log.Fatalf("Failed to write file: %v", err)
		}
		fmt.Printf("Download successful: %d bytes (took %v)\n", bytesWritten, duration)

	case "delete":
		if *objectKey == "" {
			log.Fatal("Object key is required for delete")
		}

		fmt.Printf("Deleting %s...\n", *objectKey)
		startTime := time.Now()
		err := store.Delete(ctx, *objectKey)
		duration := time.Since(startTime)
		if err != nil {
			log.Fatalf("Delete failed: %v", err)
		}
		fmt.Printf("Delete successful (took %v)\n", duration)

	case "list":
		startTime := time.Now()
		keys, err := store.ListKeys(ctx)
		duration := time.Since(startTime)
		if err != nil {
			log.Fatalf("List failed: %v", err)
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		fmt.Printf("%d objects (took %v)\n", len(keys), duration)

	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}

func printHelp() {
	fmt.Println("Object Store Check Tool")
	fmt.Println("\nVerifies the bucket configured for photoapp is reachable and usable.")
	fmt.Println("\nCommands:")
	fmt.Println("  upload    Upload a file to the bucket")
	fmt.Println("  download  Download an object to a local file")
	fmt.Println("  delete    Delete an object from the bucket")
	fmt.Println("  list      List all object keys in the bucket")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nFlags:")
	flag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  Round-trip a file through the configured bucket:")
	fmt.Println("    bucketcheck -config photoapp.yaml -command upload -key smoke/test.jpg -file ./photo.jpg")
	fmt.Println("    bucketcheck -config photoapp.yaml -command download -key smoke/test.jpg -file ./photo-copy.jpg")
	fmt.Println("    bucketcheck -config photoapp.yaml -command delete -key smoke/test.jpg")
}
