package downloadController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
	"guildtrivia/services"
)

type Controller struct {
	releases *services.ReleaseService
	log      *logrus.Logger
}

func New(releases *services.ReleaseService, log *logrus.Logger) *Controller {
	return &Controller{releases: releases, log: log}
}

// Info returns metadata about the latest mobile client release.
func (ctl *Controller) Info(c *fiber.Ctx) error {
	release, err := ctl.releases.Latest(c.UserContext())
	if err != nil {
		return ctl.fail(c, err, "Failed to fetch latest release")
	}
	return middleware.Success(c, fiber.StatusOK, "Release fetched", releaseInfo(release))
}

// Latest redirects to the APK of the latest release.
func (ctl *Controller) Latest(c *fiber.Ctx) error {
	release, err := ctl.releases.Latest(c.UserContext())
	if err != nil {
		return ctl.fail(c, err, "Failed to fetch latest release")
	}

	apk, ok := release.APK()
	if !ok {
		return ctl.fail(c, services.ErrAssetNotFound, "No APK in latest release")
	}

	ctl.log.WithFields(logrus.Fields{
		"version": release.TagName,
		"apk":     apk.Name,
	}).Info("Redirecting to latest APK")
	return c.Redirect(apk.BrowserDownloadURL, fiber.StatusFound)
}

// ByVersion redirects to the APK of a specific version tag.
func (ctl *Controller) ByVersion(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.ReleaseVersion)

	release, err := ctl.releases.ByTag(c.UserContext(), params.Version)
	if err != nil {
		return ctl.fail(c, err, "Failed to fetch release")
	}

	apk, ok := release.APK()
	if !ok {
		return ctl.fail(c, services.ErrAssetNotFound, "No APK in requested release")
	}

	ctl.log.WithFields(logrus.Fields{
		"version": release.TagName,
		"apk":     apk.Name,
	}).Info("Redirecting to versioned APK")
	return c.Redirect(apk.BrowserDownloadURL, fiber.StatusFound)
}

func releaseInfo(release services.Release) schemas.ReleaseInfo {
	info := schemas.ReleaseInfo{
		TagName:     release.TagName,
		Name:        release.Name,
		PublishedAt: release.PublishedAt,
	}
	for _, asset := range release.Assets {
		info.AllAssets = append(info.AllAssets, schemas.AssetInfo{
			Name:          asset.Name,
			DownloadURL:   asset.BrowserDownloadURL,
			Size:          asset.Size,
			DownloadCount: asset.DownloadCount,
		})
	}
	if apk, ok := release.APK(); ok {
		info.APKAvailable = true
		info.APKInfo = &schemas.AssetInfo{
			Name:          apk.Name,
			DownloadURL:   apk.BrowserDownloadURL,
			Size:          apk.Size,
			DownloadCount: apk.DownloadCount,
		}
	}
	return info
}

func (ctl *Controller) fail(c *fiber.Ctx, err error, message string) error {
	ctl.log.WithError(err).Warn(message)

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return middleware.Failure(c, svcErr.Status, svcErr.Message, nil)
	}
	return middleware.Failure(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
