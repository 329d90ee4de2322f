package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tendant/simple-photos/internal/logger"
	"github.com/tendant/simple-photos/internal/shell"
	"github.com/tendant/simple-photos/internal/ui"
	"github.com/tendant/simple-photos/pkg/simplephotos/config"
)

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	fmt.Println(ui.FormatTitle("** Welcome to PhotoApp **"))
	fmt.Println()

	// The config prompt and the command loop share one buffered reader so
	// piped input is not lost between them.
	in := bufio.NewReader(os.Stdin)

	configPath, err := promptConfigPath(in)
	if err != nil {
		fmt.Println("**ERROR: unable to read config file name, exiting")
		os.Exit(1)
	}

	if _, err := os.Stat(configPath); err != nil {
		fmt.Printf("**ERROR: config file ' %s ' does not exist, exiting\n", configPath)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("**ERROR: %v, exiting\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("**ERROR: %v, exiting\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	svc, err := cfg.BuildService(ctx, log)
	if err != nil {
		fmt.Printf("**ERROR: %v, exiting\n", err)
		os.Exit(1)
	}

	sh, err := shell.New(svc,
		shell.WithInput(in),
		shell.WithLogger(log),
	)
	if err != nil {
		fmt.Printf("**ERROR: %v, exiting\n", err)
		os.Exit(1)
	}

	if err := sh.Run(ctx); err != nil {
		fmt.Printf("**ERROR: %v\n", err)
		os.Exit(1)
	}
}

func promptConfigPath(in *bufio.Reader) (string, error) {
	fmt.Println("What config file to use for this session?")
	fmt.Printf("Press ENTER to use default (%s),\n", config.DefaultPath)
	fmt.Println("otherwise enter name of config file>")

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return config.DefaultPath, nil
	}
	return line, nil
}
