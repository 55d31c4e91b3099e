package audio

import "testing"

func TestView_LocateSourceURL(t *testing.T) {
	tests := []struct {
		name   string
		slots  map[string]string
		want   string
		wantOK bool
	}{
		{
			name:   "txxx wins over everything",
			slots:  map[string]string{"TXXX:purl": "url-a", "purl": "url-b", "WPUB": "url-c", "comment": "url-d"},
			want:   "url-a",
			wantOK: true,
		},
		{
			name:   "bare purl wins over url frames",
			slots:  map[string]string{"purl": "url-b", "WXXX:purl": "url-c", "WOAS": "url-d"},
			want:   "url-b",
			wantOK: true,
		},
		{
			name:   "wxxx wins over wpub",
			slots:  map[string]string{"WXXX:purl": "url-c", "WPUB": "url-d"},
			want:   "url-c",
			wantOK: true,
		},
		{
			name:   "wpub wins over woas",
			slots:  map[string]string{"WPUB": "url-d", "WOAS": "url-e"},
			want:   "url-d",
			wantOK: true,
		},
		{
			name:   "woas wins over comment",
			slots:  map[string]string{"WOAS": "url-e", "comment": "url-f"},
			want:   "url-e",
			wantOK: true,
		},
		{
			name:   "comment as last resort",
			slots:  map[string]string{"comment": "https://www.mixcloud.com/user/mix/"},
			want:   "https://www.mixcloud.com/user/mix/",
			wantOK: true,
		},
		{
			name:   "whitespace-only slot is shadowed",
			slots:  map[string]string{"TXXX:purl": "   ", "WPUB": "url-d"},
			want:   "url-d",
			wantOK: true,
		},
		{
			name:   "nothing populated",
			slots:  map[string]string{"TIT2": "Some Title"},
			wantOK: false,
		},
		{
			name:   "empty view",
			slots:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := View{Slots: tt.slots}
			got, ok := view.LocateSourceURL()

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCapabilityForPath(t *testing.T) {
	tests := []struct {
		path string
		want Capability
	}{
		{path: "mix.mp3", want: CapabilityID3},
		{path: "MIX.MP3", want: CapabilityID3},
		{path: "mix.m4a", want: CapabilityMP4},
		{path: "book.m4b", want: CapabilityMP4},
		{path: "mix.mp4", want: CapabilityMP4},
		{path: "mix.flac", want: CapabilityXiph},
		{path: "mix.ogg", want: CapabilityNone},
		{path: "mix.opus", want: CapabilityNone},
		{path: "mix.webm", want: CapabilityNone},
		{path: "mix.wav", want: CapabilityNone},
		{path: "noext", want: CapabilityNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := CapabilityForPath(tt.path); got != tt.want {
				t.Errorf("CapabilityForPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "dir/mix.mp3", want: "dir/mix.lrc"},
		{path: "dir/mix.tape.flac", want: "dir/mix.tape.lrc"},
		{path: "noext", want: "noext.lrc"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := SidecarPath(tt.path, ".lrc"); got != tt.want {
				t.Errorf("SidecarPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
