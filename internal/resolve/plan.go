package resolve

import "github.com/xscribe/xscribe/internal/model"

// PlanAcquisition builds a download specification from the resolved entry
// and user flags. entry is nil when the URL itself is the sole stream.
//
// An explicit audio format together with video mode is rejected: the
// conversion step only exists on the audio path. Video plans carry no audio
// format at all so the invariant holds by construction.
func PlanAcquisition(entry *model.ProbedEntry, mode model.DownloadMode, audioFormat model.AudioFormat, cookiesFromBrowser string) (model.AcquisitionPlan, error) {
	if mode == model.ModeVideo {
		if audioFormat != "" && audioFormat != model.FormatBest {
			return model.AcquisitionPlan{}, &model.IncompatibleOptionsError{Mode: mode, AudioFormat: audioFormat}
		}
		return model.AcquisitionPlan{
			Entry:              entry,
			Mode:               model.ModeVideo,
			CookiesFromBrowser: cookiesFromBrowser,
		}, nil
	}

	if audioFormat == "" {
		audioFormat = model.FormatBest
	}
	return model.AcquisitionPlan{
		Entry:              entry,
		Mode:               model.ModeAudio,
		AudioFormat:        audioFormat,
		CookiesFromBrowser: cookiesFromBrowser,
	}, nil
}
