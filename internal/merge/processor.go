package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"craigmix/internal/config"
	"craigmix/internal/deps"
	"craigmix/internal/logging"
	"craigmix/internal/scanner"
	"craigmix/internal/services/ffmpeg"
	"craigmix/internal/services/ffprobe"
)

// lockFileName guards an output directory against concurrent runs.
const lockFileName = ".craigmix.lock"

// Prober reads a file's container duration. Failures are soft.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Runner executes one ffmpeg merge invocation.
type Runner interface {
	Merge(ctx context.Context, args []string, totalSeconds float64, onProgress func(ffmpeg.ProgressUpdate)) error
}

// Confirmer answers the delete-originals prompt. Implementations that cannot
// ask (no TTY) should return false.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Progress renders updates for one folder's merge.
type Progress interface {
	Update(update ffmpeg.ProgressUpdate)
	Finish()
}

// ProgressFactory creates a Progress for a folder. totalSeconds is zero when
// the duration estimate is unknown. A nil factory disables rendering.
type ProgressFactory func(folderName string, totalSeconds float64) Progress

// Option configures the processor.
type Option func(*Processor)

// WithProber injects a duration prober.
func WithProber(prober Prober) Option {
	return func(p *Processor) {
		p.prober = prober
	}
}

// WithRunner injects an ffmpeg runner.
func WithRunner(runner Runner) Option {
	return func(p *Processor) {
		if runner != nil {
			p.runner = runner
		}
	}
}

// WithConfirmer injects the delete prompt implementation.
func WithConfirmer(confirm Confirmer) Option {
	return func(p *Processor) {
		p.confirm = confirm
	}
}

// WithProgress injects the progress renderer factory.
func WithProgress(factory ProgressFactory) Option {
	return func(p *Processor) {
		p.progress = factory
	}
}

// WithClock overrides the timestamp source (tests).
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// WithVersionCheck overrides the ffmpeg version gate (tests).
func WithVersionCheck(check func(ctx context.Context, binary string) (string, error)) Option {
	return func(p *Processor) {
		if check != nil {
			p.verify = check
		}
	}
}

// Processor drives merges for every Craig folder under the configured base
// directory.
type Processor struct {
	cfg     *config.Config
	logger  *slog.Logger
	format  ffmpeg.Format
	quality ffmpeg.Quality

	prober   Prober
	runner   Runner
	confirm  Confirmer
	progress ProgressFactory
	now      func() time.Time
	verify   func(ctx context.Context, binary string) (string, error)
}

// New constructs a processor from resolved configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Processor, error) {
	if cfg == nil {
		return nil, errors.New("config required")
	}
	format, err := ffmpeg.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	quality, err := ffmpeg.ParseQuality(cfg.Output.Quality)
	if err != nil {
		return nil, err
	}

	runner, err := ffmpeg.NewRunner(cfg.FFmpegBinary())
	if err != nil {
		return nil, err
	}
	prober, err := ffprobe.New(cfg.FFprobeBinary())
	if err != nil {
		return nil, err
	}

	p := &Processor{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "merge"),
		format:  format,
		quality: quality,
		prober:  prober,
		runner:  runner,
		now:     time.Now,
		verify:  deps.VerifyFFmpeg,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Plan performs the dry-run path: tool check, folder discovery, and a
// per-folder preview without touching ffmpeg.
func (p *Processor) Plan(ctx context.Context) ([]FolderPlan, error) {
	folders, err := p.prepare(ctx)
	if err != nil {
		return nil, err
	}

	plans := make([]FolderPlan, 0, len(folders))
	for _, folder := range folders {
		files, err := scanner.AudioFiles(folder.Path)
		if err != nil {
			p.logger.Warn("cannot list folder", logging.String("folder", folder.Name), logging.Error(err))
		}
		plans = append(plans, FolderPlan{
			Folder:     folder,
			FileCount:  len(files),
			OutputName: OutputFileName(folder, p.format, p.now()),
		})
	}
	return plans, nil
}

// Run merges every discovered folder sequentially and returns the summary.
// The error return is non-nil only for run-aborting conditions.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	folders, err := p.prepare(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	if len(folders) == 0 {
		return summary, nil
	}

	if err := os.MkdirAll(p.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(p.cfg.Paths.OutputDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("output directory %s is in use by another craigmix run", p.cfg.Paths.OutputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	for _, folder := range folders {
		p.logger.Info("processing folder", logging.String("folder", folder.Name))
		outputPath, err := p.processFolder(ctx, folder)
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				// Nothing else can succeed without the tool.
				return nil, err
			}
			p.logger.Error("merge failed", logging.String("folder", folder.Name), logging.Error(err))
		}
		summary.record(Result{Folder: folder, OutputPath: outputPath, Err: err})
	}

	p.logger.Info("run complete",
		logging.Int("folders", summary.Total()),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

// prepare runs the shared tool check and discovery steps.
func (p *Processor) prepare(ctx context.Context) ([]scanner.Folder, error) {
	p.logger = p.logger.With(logging.String("run_id", uuid.NewString()))

	banner, err := p.verify(ctx, p.cfg.FFmpegBinary())
	if err != nil {
		return nil, err
	}
	if banner != "" {
		p.logger.Debug("ffmpeg available", logging.String("version", banner))
	}

	p.logger.Info("scanning for craig folders", logging.String("directory", p.cfg.Paths.BaseDirectory))
	folders, err := scanner.DetectFolders(p.cfg.Paths.BaseDirectory)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		p.logger.Info("no craig folders found",
			logging.String("hint", "session folders match "+scanner.FolderPrefix+"<identifier>"))
		return nil, nil
	}
	for _, folder := range folders {
		p.logger.Debug("matched folder", logging.String("folder", folder.Name))
	}
	return folders, nil
}

func (p *Processor) processFolder(ctx context.Context, folder scanner.Folder) (string, error) {
	files, err := scanner.AudioFiles(folder.Path)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.New("no supported audio files found")
	}

	p.logger.Info("found audio files",
		logging.String("folder", folder.Name),
		logging.Int("count", len(files)),
	)
	for i, file := range files {
		p.logger.Debug("input track", logging.Int("position", i), logging.String("file", filepath.Base(file)))
	}

	outputName := OutputFileName(folder, p.format, p.now())
	outputPath := filepath.Join(p.cfg.Paths.OutputDir, outputName)
	p.logger.Info("output file", logging.String("name", outputName))

	totalSeconds := p.estimateTotal(ctx, files)

	args, err := ffmpeg.BuildMergeArgs(ffmpeg.MergeRequest{
		Inputs:     files,
		OutputPath: outputPath,
		Format:     p.format,
		Quality:    p.quality,
		Date:       p.now(),
	})
	if err != nil {
		return "", err
	}

	var progress Progress
	if p.progress != nil {
		progress = p.progress(folder.Name, totalSeconds)
	}
	err = p.runner.Merge(ctx, args, totalSeconds, func(update ffmpeg.ProgressUpdate) {
		if progress != nil {
			progress.Update(update)
		}
	})
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return "", err
	}

	p.reportOutput(ctx, outputPath)
	p.cleanupOriginals(files)
	return outputPath, nil
}

// estimateTotal returns the longest input duration, the best available guess
// for the merged length. Probe failures leave the total unknown.
func (p *Processor) estimateTotal(ctx context.Context, files []string) float64 {
	if p.prober == nil {
		return 0
	}
	var longest float64
	for _, file := range files {
		seconds, err := p.prober.Duration(ctx, file)
		if err != nil {
			p.logger.Debug("probe failed", logging.String("file", filepath.Base(file)), logging.Error(err))
			continue
		}
		if seconds > longest {
			longest = seconds
		}
	}
	return longest
}

func (p *Processor) reportOutput(ctx context.Context, outputPath string) {
	info, err := os.Stat(outputPath)
	if err != nil {
		p.logger.Warn("output file missing after merge", logging.String("path", outputPath), logging.Error(err))
		return
	}
	attrs := []any{
		logging.String("path", outputPath),
		logging.String("size", fmt.Sprintf("%.2f MiB", float64(info.Size())/(1024*1024))),
	}
	if p.prober != nil {
		if seconds, err := p.prober.Duration(ctx, outputPath); err == nil {
			attrs = append(attrs, logging.String("duration", fmt.Sprintf("%.2f min", seconds/60)))
		}
	}
	p.logger.Info("merge complete", attrs...)
}
