package schemas

// AssetInfo describes one downloadable release file. Keys stay snake_case
// to match the upstream release metadata clients already parse.
type AssetInfo struct {
	Name          string `json:"name" validate:"required"`
	DownloadURL   string `json:"download_url" validate:"required"`
	Size          int64  `json:"size" validate:"gte=0"`
	DownloadCount int64  `json:"download_count" validate:"gte=0"`
}

// ReleaseInfo is the release metadata payload of the download endpoints.
type ReleaseInfo struct {
	TagName      string      `json:"tag_name" validate:"required"`
	Name         string      `json:"name"`
	PublishedAt  string      `json:"published_at"`
	APKAvailable bool        `json:"apk_available"`
	APKInfo      *AssetInfo  `json:"apk_info"`
	AllAssets    []AssetInfo `json:"all_assets"`
}

// ReleaseVersion validates the :version path parameter.
type ReleaseVersion struct {
	Version string `json:"version" validate:"required"`
}
