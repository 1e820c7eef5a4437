package resolve

import (
	"errors"
	"testing"

	"github.com/xscribe/xscribe/internal/model"
)

func TestPlanAcquisition_DefaultsToAudioBest(t *testing.T) {
	plan, err := PlanAcquisition(nil, model.ModeAudio, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plan.Mode != model.ModeAudio {
		t.Errorf("Expected audio mode, got %s", plan.Mode)
	}
	if plan.AudioFormat != model.FormatBest {
		t.Errorf("Expected best format, got %s", plan.AudioFormat)
	}
	if plan.Entry != nil {
		t.Error("Expected no entry for a direct single-stream URL")
	}
}

func TestPlanAcquisition_VideoWithExplicitAudioFormatIsRejected(t *testing.T) {
	_, err := PlanAcquisition(nil, model.ModeVideo, model.FormatMP3, "")

	var incompatible *model.IncompatibleOptionsError
	if !errors.As(err, &incompatible) {
		t.Fatalf("Expected IncompatibleOptionsError, got %v", err)
	}
	if incompatible.AudioFormat != model.FormatMP3 {
		t.Errorf("Expected the offending format in the error, got %s", incompatible.AudioFormat)
	}
}

func TestPlanAcquisition_VideoPlanCarriesNoAudioFormat(t *testing.T) {
	for _, format := range []model.AudioFormat{"", model.FormatBest} {
		plan, err := PlanAcquisition(nil, model.ModeVideo, format, "")
		if err != nil {
			t.Fatalf("Expected no error for format %q, got %v", format, err)
		}
		if plan.AudioFormat != "" {
			t.Errorf("Video plan carries audio format %q, expected none", plan.AudioFormat)
		}
	}
}

func TestPlanAcquisition_CarriesEntryAndCookies(t *testing.T) {
	entry := &model.ProbedEntry{Index: 2, Title: "Second"}

	plan, err := PlanAcquisition(entry, model.ModeAudio, model.FormatFLAC, "firefox")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plan.Entry != entry {
		t.Error("Expected the chosen entry on the plan")
	}
	if plan.AudioFormat != model.FormatFLAC {
		t.Errorf("Expected flac, got %s", plan.AudioFormat)
	}
	if plan.CookiesFromBrowser != "firefox" {
		t.Errorf("Expected cookie source carried opaquely, got %q", plan.CookiesFromBrowser)
	}
}
