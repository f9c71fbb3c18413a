package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	base := Info{Version: "1.2.3", GoVersion: "go1.25.1", Platform: "linux/amd64"}

	tests := []struct {
		name   string
		commit string
		date   string
		dirty  bool
		want   string
	}{
		{
			name:   "no build stamp",
			commit: unknown,
			date:   unknown,
			want:   "colortools version 1.2.3 (go1.25.1, linux/amd64)",
		},
		{
			name:   "commit without date",
			commit: "0123456789abcdef",
			date:   unknown,
			want:   "colortools version 1.2.3 (go1.25.1, linux/amd64)",
		},
		{
			name:   "long commit truncated",
			commit: "0123456789abcdef",
			date:   "2026-01-02T03:04:05Z",
			want:   "colortools version 1.2.3 (commit: 01234567, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)",
		},
		{
			name:   "short commit kept",
			commit: "abc",
			date:   "2026-01-02T03:04:05Z",
			want:   "colortools version 1.2.3 (commit: abc, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)",
		},
		{
			name:   "modified tree",
			commit: "0123456789abcdef",
			date:   "2026-01-02T03:04:05Z",
			dirty:  true,
			want:   "colortools version 1.2.3 (commit: 01234567-dirty, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := base
			info.Commit, info.Date, info.Modified = tt.commit, tt.date, tt.dirty
			if got := format(info); got != tt.want {
				t.Errorf("format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyBuildSettings(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "feedface"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	info := Info{Commit: unknown, Date: unknown}
	applyBuildSettings(&info, settings)
	if info.Commit != "feedface" || info.Date != "2026-03-04T05:06:07Z" || !info.Modified {
		t.Errorf("stamp not applied: %+v", info)
	}

	// ldflags values take precedence over the VCS stamp.
	info = Info{Commit: "cafebabe", Date: "2025-12-31T00:00:00Z"}
	applyBuildSettings(&info, settings)
	if info.Commit != "cafebabe" || info.Date != "2025-12-31T00:00:00Z" {
		t.Errorf("injected values overwritten: %+v", info)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
	if !strings.HasPrefix(String(), "colortools version "+Version) {
		t.Errorf("String() = %q", String())
	}
}
