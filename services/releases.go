package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Release is one published mobile client release.
type Release struct {
	TagName     string         `json:"tag_name"`
	Name        string         `json:"name"`
	PublishedAt string         `json:"published_at"`
	Assets      []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is one downloadable file attached to a release.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
	DownloadCount      int64  `json:"download_count"`
}

// APK returns the installable Android asset of the release. Unsigned
// builds are never served.
func (r Release) APK() (ReleaseAsset, bool) {
	for _, asset := range r.Assets {
		if strings.Contains(asset.Name, ".apk") && !strings.Contains(asset.Name, "unsigned") {
			return asset, true
		}
	}
	return ReleaseAsset{}, false
}

// ReleaseService proxies the GitHub releases of the mobile client so
// players fetch the current APK from the API itself.
type ReleaseService struct {
	client *resty.Client
	owner  string
	repo   string
	log    *logrus.Logger
}

func NewReleaseService(baseURL, owner, repo string, log *logrus.Logger) *ReleaseService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "guildtrivia-api").
		SetHeader("Accept", "application/vnd.github.v3+json")

	return &ReleaseService{client: client, owner: owner, repo: repo, log: log}
}

// Latest fetches the most recent release.
func (s *ReleaseService) Latest(ctx context.Context) (Release, error) {
	return s.fetch(ctx, fmt.Sprintf("/repos/%s/%s/releases/latest", s.owner, s.repo))
}

// ByTag fetches the release published under a specific version tag.
func (s *ReleaseService) ByTag(ctx context.Context, tag string) (Release, error) {
	return s.fetch(ctx, fmt.Sprintf("/repos/%s/%s/releases/tags/%s", s.owner, s.repo, tag))
}

func (s *ReleaseService) fetch(ctx context.Context, path string) (Release, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return Release{}, fmt.Errorf("fetch release: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return Release{}, ErrReleaseNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		s.log.WithFields(logrus.Fields{
			"status": resp.StatusCode(),
			"path":   path,
		}).Warn("Unexpected release API response")
		return Release{}, fmt.Errorf("release API responded %d", resp.StatusCode())
	}

	var release Release
	if err := json.Unmarshal(resp.Body(), &release); err != nil {
		return Release{}, fmt.Errorf("parse release: %w", err)
	}
	return release, nil
}
