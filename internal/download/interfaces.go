package download

import (
	"context"

	"github.com/xscribe/xscribe/internal/model"
)

// Prober enumerates candidate media entries at a URL without transferring
// any payload.
type Prober interface {
	Probe(ctx context.Context, url string) (*model.ProbeReport, error)
}

// Downloader fetches exactly one local media file according to a plan.
// The file is written under destDir; the caller owns it afterwards.
type Downloader interface {
	Download(ctx context.Context, url string, plan model.AcquisitionPlan, destDir string) (model.DownloadResult, error)
}
