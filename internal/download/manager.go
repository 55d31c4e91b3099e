package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/ikirmitz/mixcloud-backup/internal/audio"
	"github.com/ikirmitz/mixcloud-backup/internal/config"
	"github.com/ikirmitz/mixcloud-backup/internal/http"
	ioutils "github.com/ikirmitz/mixcloud-backup/internal/io"
	"github.com/ikirmitz/mixcloud-backup/internal/mixcloud"
	"github.com/ikirmitz/mixcloud-backup/internal/pipeline"
	"github.com/ikirmitz/mixcloud-backup/internal/ytdlp"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Job is one cloudcast queued for download, grouped under a playlist
// name that becomes its output subdirectory.
type Job struct {
	Upload   mixcloud.Upload
	Playlist string
}

// RunOptions narrows one backup run.
type RunOptions struct {
	// IncludePlaylists groups downloads by the account's playlists;
	// uploads outside every playlist land under "Uploads".
	IncludePlaylists bool
	// Limit caps the number of downloads; zero means unlimited.
	Limit int
	// Since skips cloudcasts uploaded before the given day; the zero
	// time disables the filter.
	Since time.Time
	// DryRun lists what would be downloaded without touching the
	// network beyond the listing calls.
	DryRun bool
}

// Manager coordinates an account backup: enumerate cloudcasts,
// download each through yt-dlp, embed artwork and resolve tracklists.
//
// Files are downloaded one at a time. Mixcloud throttles aggressively
// and yt-dlp's own sleep intervals pace the requests, so parallel
// downloads would only trade bans for speed.
type Manager struct {
	settings     *config.Settings
	client       *mixcloud.Client
	httpClient   *http.Client
	runner       *ytdlp.Runner
	processor    *pipeline.Processor
	imageService *ioutils.ImageService

	username        string
	jobs            []Job
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := mixcloud.NewClient(mixcloud.Config{
		Endpoint:  settings.Endpoint,
		UserAgent: settings.UserAgent,
		Timeout:   settings.Timeout(),
	})

	return &Manager{
		settings:   settings,
		client:     client,
		httpClient: http.NewClient(settings.UserAgent, settings.Timeout()),
		runner:     ytdlp.NewRunner(settings.YtdlpPath),
		processor: pipeline.NewProcessor(client, nil, pipeline.Options{
			Embed:    settings.EmbedLyrics,
			WriteLRC: settings.WriteLRC,
		}),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Initialize enumerates the account and builds the job list.
func (m *Manager) Initialize(ctx context.Context, username string, opts RunOptions) error {
	m.username = username

	jobs, err := m.buildJobs(ctx, username, opts.IncludePlaylists)
	if err != nil {
		return err
	}

	if opts.Limit > 0 && len(jobs) > opts.Limit {
		jobs = jobs[:opts.Limit]
	}

	m.jobs = jobs
	m.totalFiles = int32(len(jobs))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Queued %d cloudcast(s) for %s", len(jobs), username), Level: LevelInfo})
	return nil
}

// Jobs returns the queued downloads after Initialize.
func (m *Manager) Jobs() []Job {
	return m.jobs
}

// StartDownloads processes the queued jobs sequentially. Per-job
// failures are reported and skipped; only a cancelled context aborts
// the run.
func (m *Manager) StartDownloads(ctx context.Context, opts RunOptions) error {
	for _, job := range m.jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.downloadOne(ctx, job, opts); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error on %s: %v", job.Upload.Name, err), Level: LevelError})
		}
	}
	return nil
}

// GetProgress returns current download progress as file counts.
func (m *Manager) GetProgress() (filesReceived, filesTotal int32) {
	return atomic.LoadInt32(&m.downloadedFiles), m.totalFiles
}

// DownloadUploads queues the given uploads under one playlist group
// and downloads them sequentially.
func (m *Manager) DownloadUploads(ctx context.Context, uploads []mixcloud.Upload, playlist string) error {
	m.jobs = m.jobs[:0]
	for _, u := range uploads {
		m.jobs = append(m.jobs, Job{Upload: u, Playlist: playlist})
	}
	m.totalFiles = int32(len(m.jobs))
	atomic.StoreInt32(&m.downloadedFiles, 0)
	return m.StartDownloads(ctx, RunOptions{})
}

// FindOrphans returns the account's uploads that are not part of any
// playlist, alongside the full upload list and the number of distinct
// cloudcasts found in playlists.
func (m *Manager) FindOrphans(ctx context.Context, username string) (uploads, orphans []mixcloud.Upload, inPlaylists int, err error) {
	m.username = username

	playlists, err := m.client.UserPlaylists(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}

	playlisted := map[string]bool{}
	for _, pl := range playlists {
		items, err := m.client.PlaylistItems(ctx, username, pl.Slug)
		if err != nil {
			return nil, nil, 0, err
		}
		for _, item := range items {
			playlisted[item.Slug] = true
		}
	}

	uploads, err = m.client.UserUploads(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}

	for _, u := range uploads {
		if !playlisted[u.Slug] {
			orphans = append(orphans, u)
		}
	}
	return uploads, orphans, len(playlisted), nil
}

// buildJobs groups the account's cloudcasts for download.
func (m *Manager) buildJobs(ctx context.Context, username string, includePlaylists bool) ([]Job, error) {
	if !includePlaylists {
		uploads, err := m.client.UserUploads(ctx, username)
		if err != nil {
			return nil, err
		}
		jobs := make([]Job, 0, len(uploads))
		for _, u := range uploads {
			jobs = append(jobs, Job{Upload: u, Playlist: "Uploads"})
		}
		return jobs, nil
	}

	playlists, err := m.client.UserPlaylists(ctx, username)
	if err != nil {
		return nil, err
	}

	var jobs []Job
	playlisted := map[string]bool{}
	for _, pl := range playlists {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Listing playlist %q", pl.Name), Level: LevelVerbose})
		items, err := m.client.PlaylistItems(ctx, username, pl.Slug)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if playlisted[item.Slug] {
				continue
			}
			playlisted[item.Slug] = true
			jobs = append(jobs, Job{Upload: item, Playlist: pl.Name})
		}
	}

	// Uploads outside every playlist still belong in the backup.
	uploads, err := m.client.UserUploads(ctx, username)
	if err != nil {
		return nil, err
	}
	for _, u := range uploads {
		if !playlisted[u.Slug] {
			jobs = append(jobs, Job{Upload: u, Playlist: "Uploads"})
		}
	}

	return jobs, nil
}

func (m *Manager) downloadOne(ctx context.Context, job Job, opts RunOptions) error {
	info, err := m.runner.ExtractInfo(ctx, job.Upload.URL)
	if err != nil {
		return err
	}

	if !opts.Since.IsZero() {
		uploaded, err := time.Parse("20060102", info.UploadDate)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("No upload date for %s, ignoring --since", job.Upload.Name), Level: LevelWarning})
		} else if uploaded.Before(opts.Since) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s (uploaded %s)", job.Upload.Name, uploaded.Format("2006-01-02")), Level: LevelVerbose})
			atomic.AddInt32(&m.downloadedFiles, 1)
			return nil
		}
	}

	if opts.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would download %s -> %s/", job.Upload.Name, job.Playlist), Level: LevelInfo})
		atomic.AddInt32(&m.downloadedFiles, 1)
		return nil
	}

	codec := ytdlp.CodecFromInfo(info)
	dlOpts := ytdlp.Options{
		OutputDir:        m.settings.OutputPathFor(m.username),
		ArchivePath:      m.settings.ArchivePath,
		Playlist:         job.Playlist,
		SleepInterval:    m.settings.SleepInterval,
		MaxSleepInterval: m.settings.MaxSleepInterval,
		ToMP3:            m.settings.ConvertToMP3,
		Codec:            codec,
	}

	path, err := m.runner.Download(ctx, job.Upload.URL, dlOpts)
	switch {
	case err == nil:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", filepath.Base(path)), Level: LevelSuccess})
	case errors.Is(err, ytdlp.ErrAlreadyArchived):
		existing, ok := ytdlp.ExpectedPath(info, dlOpts)
		if !ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Already archived, file not found: %s", job.Upload.Name), Level: LevelWarning})
			atomic.AddInt32(&m.downloadedFiles, 1)
			return nil
		}
		path = existing
		m.progress(ProgressEvent{Message: fmt.Sprintf("Already downloaded: %s", filepath.Base(path)), Level: LevelVerbose})
	default:
		return err
	}

	if m.settings.SaveCoverArtInTags && job.Upload.PictureURL != "" {
		if err := m.embedArtwork(ctx, path, job.Upload.PictureURL); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error embedding artwork for %s: %v", job.Upload.Name, err), Level: LevelWarning})
		}
	}

	if m.settings.EmbedLyrics || m.settings.WriteLRC {
		r := m.processor.ProcessWithLookup(ctx, path, job.Upload.Lookup())
		switch r.Outcome {
		case pipeline.OutcomeFailed:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Tracklist failed for %s: %v", job.Upload.Name, r.Err), Level: LevelWarning})
		case pipeline.OutcomeSkipped:
			m.progress(ProgressEvent{Message: fmt.Sprintf("No tracklist for %s: %s", job.Upload.Name, r.Detail), Level: LevelVerbose})
		default:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Tracklist %s: %s", r.Detail, filepath.Base(path)), Level: LevelVerbose})
		}
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	return nil
}

// embedArtwork fetches, resizes and embeds cloudcast artwork.
func (m *Manager) embedArtwork(ctx context.Context, path, pictureURL string) error {
	artwork, err := m.httpClient.Get(ctx, pictureURL)
	if err != nil {
		return err
	}

	if m.settings.CoverArtInTagsResize {
		max := m.settings.CoverArtInTagsMaxSize
		if resized, err := m.imageService.ResizeImage(ctx, artwork, max, max); err == nil {
			artwork = resized
		}
	} else {
		if converted, err := m.imageService.ConvertToJPEG(ctx, artwork); err == nil {
			artwork = converted
		}
	}

	return audio.EmbedArtwork(path, artwork)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
