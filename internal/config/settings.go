package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// API settings
	Endpoint       string  `json:"endpoint"`
	UserAgent      string  `json:"user_agent"`
	TimeoutSeconds float64 `json:"timeout_seconds"`

	// Download settings
	OutputPath       string  `json:"output_path"`
	ArchivePath      string  `json:"archive_path"`
	YtdlpPath        string  `json:"ytdlp_path"`
	SleepInterval    float64 `json:"sleep_interval"`
	MaxSleepInterval float64 `json:"max_sleep_interval"`
	ConvertToMP3     bool    `json:"convert_to_mp3"`

	// Tracklist settings
	EmbedLyrics bool `json:"embed_lyrics"`
	WriteLRC    bool `json:"write_lrc"`

	// Cover art settings
	SaveCoverArtInTags    bool `json:"save_cover_art_in_tags"`
	CoverArtInTagsResize  bool `json:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `json:"cover_art_in_tags_max_size"`

	// Walk settings
	AudioExtensions []string `json:"audio_extensions"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		Endpoint:       "", // mixcloud.DefaultEndpoint when empty
		UserAgent:      "mixcloud-backup",
		TimeoutSeconds: 30,

		OutputPath:       filepath.Join(homeDir, "Music", "Mixcloud", "{username}"),
		ArchivePath:      filepath.Join(homeDir, "Music", "Mixcloud", ".archive.txt"),
		YtdlpPath:        "yt-dlp",
		SleepInterval:    5,
		MaxSleepInterval: 30,
		ConvertToMP3:     false,

		EmbedLyrics: true,
		WriteLRC:    true,

		SaveCoverArtInTags:    true,
		CoverArtInTagsResize:  true,
		CoverArtInTagsMaxSize: 1024,

		AudioExtensions: []string{".mp3", ".m4a", ".m4b", ".mp4", ".flac", ".ogg", ".opus", ".webm"},
	}
}

// Timeout returns the API timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// OutputPathFor resolves the {username} placeholder in the output
// path. Paths without the placeholder are returned unchanged.
func (s *Settings) OutputPathFor(username string) string {
	return strings.ReplaceAll(s.OutputPath, "{username}", username)
}

// Load reads settings from a JSON file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default settings file location under the
// user's config directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "mixcloud-backup.json"
	}
	return filepath.Join(configDir, "mixcloud-backup", "settings.json")
}
