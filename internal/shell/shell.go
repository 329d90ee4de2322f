// Package shell implements the interactive photo console.
//
// A Shell owns one session: the wired service, the console streams, and
// the download directory. Commands are read as menu numbers and dispatched
// one at a time; a command runs to completion before the next prompt.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tendant/simple-photos/internal/preview"
	"github.com/tendant/simple-photos/internal/ui"
	"github.com/tendant/simple-photos/pkg/simplephotos"
)

// Shell is an interactive session over a photo service.
type Shell struct {
	svc         simplephotos.Service
	input       io.Reader
	out         io.Writer
	downloadDir string
	renderImage func(out io.Writer, path string) error
	logger      *zap.SugaredLogger

	in       *bufio.Reader
	commands map[int]command
}

type command struct {
	label   string
	handler func(ctx context.Context) error
}

// Option configures the shell
type Option func(*Shell)

// WithInput sets the console input stream (default os.Stdin)
func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.input = r
	}
}

// WithOutput sets the console output stream (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithDownloadDir sets the directory downloaded assets are saved into
// (default the current directory)
func WithDownloadDir(dir string) Option {
	return func(s *Shell) {
		s.downloadDir = dir
	}
}

// WithImageRenderer replaces the terminal image renderer used by the
// download-and-display command
func WithImageRenderer(render func(out io.Writer, path string) error) Option {
	return func(s *Shell) {
		s.renderImage = render
	}
}

// WithLogger sets the logger for suppressed error detail
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New creates a shell session around the given service.
func New(svc simplephotos.Service, opts ...Option) (*Shell, error) {
	if svc == nil {
		return nil, fmt.Errorf("service is required")
	}

	s := &Shell{
		svc:         svc,
		input:       os.Stdin,
		out:         os.Stdout,
		downloadDir: ".",
		logger:      zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderImage == nil {
		s.renderImage = func(out io.Writer, path string) error {
			return preview.RenderFile(out, path, preview.DefaultWidth)
		}
	}

	s.in = bufio.NewReader(s.input)
	s.commands = map[int]command{
		1: {"stats", s.handleStats},
		2: {"users", s.handleUsers},
		3: {"assets", s.handleAssets},
		4: {"download", func(ctx context.Context) error { return s.handleDownload(ctx, false) }},
		5: {"download and display", func(ctx context.Context) error { return s.handleDownload(ctx, true) }},
		6: {"upload", s.handleUpload},
		7: {"add user", s.handleAddUser},
	}

	return s, nil
}

// Run executes the command loop until the end command, end of input, or a
// failure no handler claims. Handler-level misses and precondition failures
// are reported on the console and the loop continues; anything else is
// returned to the caller.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()

		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		code, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("unrecognized command %q", line)
		}

		if code == 0 {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "** done **")
			return nil
		}

		cmd, ok := s.commands[code]
		if !ok {
			fmt.Fprintln(s.out, ui.FormatWarning("** Unknown command, try again..."))
			continue
		}

		if err := cmd.handler(ctx); err != nil {
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ">> Enter a command:")
	fmt.Fprintln(s.out, "   0 => end")

	codes := make([]int, 0, len(s.commands))
	for code := range s.commands {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(s.out, "   %d => %s\n", code, s.commands[code].label)
	}
}

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline still counts.
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) promptLine(label string) (string, error) {
	fmt.Fprintln(s.out, label)
	line, err := s.readLine()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// promptID reads a numeric identifier. A non-numeric entry is reported as
// a console warning and ok is false; the command gives up without running.
func (s *Shell) promptID(label string) (id int64, ok bool, err error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return 0, false, err
	}

	id, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		fmt.Fprintln(s.out, ui.FormatWarning("** Invalid id, try again..."))
		return 0, false, nil
	}
	return id, true, nil
}

func (s *Shell) handleStats(ctx context.Context) error {
	stats, err := s.svc.GetStats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, ui.RenderKeyValue("Bucket name", stats.BucketName))
	fmt.Fprintln(s.out, ui.RenderKeyValue("Bucket objects", stats.ObjectCount))
	fmt.Fprintln(s.out, ui.RenderKeyValue("Database endpoint", stats.DatabaseEndpoint))
	fmt.Fprintln(s.out, ui.RenderKeyValue("# of users", stats.UserCount))
	fmt.Fprintln(s.out, ui.RenderKeyValue("# of assets", stats.AssetCount))
	return nil
}

func (s *Shell) handleUsers(ctx context.Context) error {
	users, err := s.svc.ListUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		fmt.Fprintln(s.out, ui.RenderKeyValue("User Id", user.UserID))
		fmt.Fprintln(s.out, "  "+ui.RenderKeyValue("Email", user.Email))
		fmt.Fprintln(s.out, "  "+ui.RenderKeyValue("Name", user.LastName+" , "+user.FirstName))
		fmt.Fprintln(s.out, "  "+ui.RenderKeyValue("Folder", user.BucketFolder))
	}
	return nil
}

func (s *Shell) handleAssets(ctx context.Context) error {
	assets, err := s.svc.ListAssets(ctx)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		fmt.Fprintln(s.out, ui.RenderKeyValue("Asset id", asset.AssetID))
		fmt.Fprintln(s.out, "  "+ui.RenderKeyValue("User id", asset.UserID))
		fmt.Fprintln(s.out, "  "+ui.RenderKeyValue("Original name", asset.AssetName))
		fmt.Fprintln(s.out, "  "+ui.RenderKeyValue("Key name", asset.BucketKey))
	}
	return nil
}

func (s *Shell) handleDownload(ctx context.Context, display bool) error {
	assetID, ok, err := s.promptID("Enter asset id>")
	if err != nil || !ok {
		return err
	}

	result, err := s.svc.DownloadAsset(ctx, simplephotos.DownloadAssetRequest{
		AssetID: assetID,
		Dir:     s.downloadDir,
	})
	switch {
	case err == nil:
	case errors.Is(err, simplephotos.ErrAssetNotFound):
		fmt.Fprintln(s.out, ui.FormatError("No such asset..."))
		s.logger.Debugw("download refused", "asset_id", assetID, "error", err)
		return nil
	case errors.Is(err, simplephotos.ErrObjectNotFound):
		fmt.Fprintln(s.out, ui.FormatError("Asset file is missing from the bucket..."))
		s.logger.Debugw("download refused", "asset_id", assetID, "error", err)
		return nil
	default:
		return err
	}

	fmt.Fprintln(s.out, ui.FormatSuccess(fmt.Sprintf("Downloaded and saved as ' %s '", result.SavedPath)))

	if display {
		if err := s.renderImage(s.out, result.SavedPath); err != nil {
			fmt.Fprintln(s.out, ui.FormatWarning(fmt.Sprintf("Could not display image: %v", err)))
			s.logger.Debugw("display failed", "path", result.SavedPath, "error", err)
		}
	}
	return nil
}

func (s *Shell) handleUpload(ctx context.Context) error {
	localPath, err := s.promptLine("Enter local filename>")
	if err != nil {
		return err
	}
	userID, ok, err := s.promptID("Enter user id>")
	if err != nil || !ok {
		return err
	}

	asset, err := s.svc.UploadAsset(ctx, simplephotos.UploadAssetRequest{
		LocalPath: localPath,
		UserID:    userID,
	})

	var storageErr *simplephotos.StorageError
	var storeErr *simplephotos.StoreError
	switch {
	case err == nil:
	case errors.Is(err, simplephotos.ErrLocalFileNotFound):
		fmt.Fprintln(s.out, ui.FormatError(fmt.Sprintf("Local file ' %s ' does not exist...", localPath)))
		return nil
	case errors.Is(err, simplephotos.ErrUserNotFound):
		fmt.Fprintln(s.out, ui.FormatError("No such user..."))
		return nil
	case errors.As(err, &storageErr):
		fmt.Fprintln(s.out, ui.FormatError("Failed to upload the file to the bucket."))
		s.logger.Debugw("upload failed", "local_path", localPath, "error", err)
		return nil
	case errors.As(err, &storeErr):
		fmt.Fprintln(s.out, ui.FormatError("Failed to insert asset info into the database."))
		s.logger.Debugw("asset insert failed", "local_path", localPath, "error", err)
		return nil
	default:
		return err
	}

	fmt.Fprintln(s.out, ui.FormatSuccess(fmt.Sprintf("Uploaded and stored in the bucket as ' %s '", asset.BucketKey)))
	fmt.Fprintln(s.out, ui.FormatSuccess(fmt.Sprintf("Recorded in the database under asset id %d", asset.AssetID)))
	return nil
}

func (s *Shell) handleAddUser(ctx context.Context) error {
	email, err := s.promptLine("Enter user's email>")
	if err != nil {
		return err
	}
	lastName, err := s.promptLine("Enter user's last (family) name>")
	if err != nil {
		return err
	}
	firstName, err := s.promptLine("Enter user's first (given) name>")
	if err != nil {
		return err
	}

	user, err := s.svc.AddUser(ctx, simplephotos.AddUserRequest{
		Email:     email,
		LastName:  lastName,
		FirstName: firstName,
	})

	var storeErr *simplephotos.StoreError
	switch {
	case err == nil:
	case errors.As(err, &storeErr):
		fmt.Fprintln(s.out, ui.FormatError("Failed to insert user info into the database."))
		s.logger.Debugw("user insert failed", "email", email, "error", err)
		return nil
	default:
		return err
	}

	fmt.Fprintln(s.out, ui.FormatSuccess(fmt.Sprintf("Recorded in the database under user id %d", user.UserID)))
	return nil
}
