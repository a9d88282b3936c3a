package checks

import "fmt"

// Flash thresholds from 2.3.1 / 2.3.2.
const (
	maxFlashesPerSecond  = 3
	maxFlashAreaFraction = 0.25
)

// CaptionsInput describes synchronized-media caption provisioning.
type CaptionsInput struct {
	MediaType   string `json:"media_type" doc:"One of video, audio-video, audio-only, video-only"`
	IsLive      bool   `json:"is_live" doc:"Whether the media is a live presentation"`
	HasCaptions bool   `json:"has_captions" doc:"Whether synchronized captions are provided"`
}

// mediaHasAudioTrack reports whether captions can apply at all.
func mediaHasAudioTrack(mediaType string) bool {
	return mediaType != "video-only"
}

// CheckCaptions evaluates 1.2.2 for prerecorded and 1.2.4 for live media.
func CheckCaptions(in CaptionsInput) []Verdict {
	if !mediaHasAudioTrack(in.MediaType) {
		return []Verdict{
			verdict("1.2.2", StatusInfo, "Media has no audio track; captions do not apply"),
		}
	}
	if in.IsLive {
		if in.HasCaptions {
			return []Verdict{verdict("1.2.4", StatusPass, "Live media provides synchronized captions")}
		}
		return []Verdict{
			verdict("1.2.4", StatusFail, "Live media lacks synchronized captions").
				withRecommendation("Provide live captioning for the audio content"),
		}
	}
	if in.HasCaptions {
		return []Verdict{verdict("1.2.2", StatusPass, "Prerecorded media provides synchronized captions")}
	}
	return []Verdict{
		verdict("1.2.2", StatusFail, "Prerecorded media lacks synchronized captions").
			withRecommendation("Provide synchronized captions for all prerecorded audio content"),
	}
}

// AudioDescriptionInput describes audio-description provisioning for video.
type AudioDescriptionInput struct {
	HasVideo            bool `json:"has_video" doc:"Whether the media contains video"`
	IsLive              bool `json:"is_live" doc:"Whether the media is live"`
	HasAudioDescription bool `json:"has_audio_description" doc:"Whether an audio description track exists"`
	HasMediaAlternative bool `json:"has_media_alternative" doc:"Whether a text alternative for the media exists"`
}

// CheckAudioDescription evaluates 1.2.3 (A, alternative acceptable) and
// 1.2.5 (AA, audio description required). Live media is out of scope for
// both.
func CheckAudioDescription(in AudioDescriptionInput) []Verdict {
	if !in.HasVideo {
		return []Verdict{verdict("1.2.3", StatusInfo, "Media contains no video; audio description does not apply")}
	}
	if in.IsLive {
		return []Verdict{verdict("1.2.3", StatusInfo, "Live media is out of scope for audio description")}
	}
	var out []Verdict
	if in.HasAudioDescription || in.HasMediaAlternative {
		out = append(out, verdict("1.2.3", StatusPass, "Video provides an audio description or media alternative"))
	} else {
		out = append(out, verdict("1.2.3", StatusFail, "Video provides neither an audio description nor a media alternative").
			withRecommendation("Add an audio description track or a full text alternative"))
	}
	if in.HasAudioDescription {
		out = append(out, verdict("1.2.5", StatusPass, "Video provides an audio description"))
	} else {
		out = append(out, verdict("1.2.5", StatusFail, "Video lacks an audio description").
			withRecommendation("Add an audio description track for all prerecorded video"))
	}
	return out
}

// TranscriptInput describes text-alternative provisioning for media.
type TranscriptInput struct {
	MediaType     string `json:"media_type" doc:"One of audio-only, video-only, audio-video"`
	IsLive        bool   `json:"is_live" doc:"Whether the media is live"`
	HasTranscript bool   `json:"has_transcript" doc:"Whether a descriptive transcript exists"`
}

// CheckTranscript evaluates 1.2.1 for audio-only and video-only media, and
// the AAA transcript criteria 1.2.8 and 1.2.9 where they apply.
func CheckTranscript(in TranscriptInput) []Verdict {
	if in.IsLive {
		if in.MediaType == "audio-only" {
			if in.HasTranscript {
				return []Verdict{verdict("1.2.9", StatusPass, "Live audio provides a text alternative")}
			}
			return []Verdict{
				verdict("1.2.9", StatusWarning, "Live audio has no text alternative").
					withRecommendation("Provide live text, e.g. CART transcription, for live audio"),
			}
		}
		return []Verdict{verdict("1.2.1", StatusInfo, "Live media is out of scope for prerecorded alternatives")}
	}
	var out []Verdict
	switch in.MediaType {
	case "audio-only", "video-only":
		if in.HasTranscript {
			out = append(out, verdict("1.2.1", StatusPass,
				fmt.Sprintf("Prerecorded %s media provides a text alternative", in.MediaType)))
		} else {
			out = append(out, verdict("1.2.1", StatusFail,
				fmt.Sprintf("Prerecorded %s media lacks a text alternative", in.MediaType)).
				withRecommendation("Provide a descriptive transcript"))
		}
	default:
		out = append(out, verdict("1.2.1", StatusInfo,
			"Media combines audio and video; the alternative criterion targets single-track media"))
	}
	if in.HasTranscript {
		out = append(out, verdict("1.2.8", StatusPass, "A full text alternative is provided"))
	} else {
		out = append(out, verdict("1.2.8", StatusWarning, "No full text alternative is provided").
			withRecommendation("Provide a descriptive transcript covering dialogue and important visuals"))
	}
	return out
}

// MediaControlsInput describes auto-playing content behavior.
type MediaControlsInput struct {
	AutoplaysAudio     bool  `json:"autoplays_audio" doc:"Whether audio plays automatically for more than 3 seconds"`
	CanPauseOrStop     bool  `json:"can_pause_or_stop" doc:"Whether a pause or stop mechanism exists"`
	CanControlVolume   bool  `json:"can_control_volume" doc:"Whether volume can be controlled independently"`
	HasMovingContent   bool  `json:"has_moving_content" doc:"Whether content moves, blinks, or scrolls for more than 5 seconds"`
	MovingContentPause *bool `json:"moving_content_pausable,omitempty" doc:"Whether the moving content can be paused, stopped, or hidden"`
}

// CheckMediaControls evaluates 1.4.2 for auto-playing audio and 2.2.2 for
// moving content.
func CheckMediaControls(in MediaControlsInput) []Verdict {
	var out []Verdict
	if in.AutoplaysAudio {
		if in.CanPauseOrStop || in.CanControlVolume {
			out = append(out, verdict("1.4.2", StatusPass, "Auto-playing audio can be paused, stopped, or its volume controlled"))
		} else {
			out = append(out, verdict("1.4.2", StatusFail, "Audio plays automatically with no pause, stop, or volume control").
				withRecommendation("Provide a mechanism to pause or stop the audio, or control its volume"))
		}
	} else {
		out = append(out, verdict("1.4.2", StatusPass, "No audio plays automatically"))
	}
	if in.HasMovingContent {
		if in.MovingContentPause != nil && *in.MovingContentPause {
			out = append(out, verdict("2.2.2", StatusPass, "Moving content can be paused, stopped, or hidden"))
		} else {
			out = append(out, verdict("2.2.2", StatusFail, "Moving content cannot be paused, stopped, or hidden").
				withRecommendation("Provide a mechanism to pause, stop, or hide moving content"))
		}
	}
	return out
}

// AnimationInput describes interaction-triggered animation.
type AnimationInput struct {
	HasMotionAnimation bool  `json:"has_motion_animation" doc:"Whether interactions trigger motion animation"`
	IsEssential        *bool `json:"is_essential,omitempty" doc:"Whether the animation is essential to the function (exempt)"`
	RespectsReduced    bool  `json:"respects_reduced_motion" doc:"Whether the prefers-reduced-motion setting is honored"`
}

// CheckAnimation evaluates 2.3.3. An AAA criterion, so an unhonored
// preference warns rather than fails.
func CheckAnimation(in AnimationInput) []Verdict {
	if !in.HasMotionAnimation {
		return []Verdict{verdict("2.3.3", StatusPass, "Interactions trigger no motion animation")}
	}
	if in.IsEssential != nil && *in.IsEssential {
		return []Verdict{verdict("2.3.3", StatusPass, "Motion animation is essential to the function and exempt")}
	}
	if in.RespectsReduced {
		return []Verdict{verdict("2.3.3", StatusPass, "Motion animation honors the reduced-motion preference")}
	}
	return []Verdict{
		verdict("2.3.3", StatusWarning, "Interaction-triggered animation ignores the reduced-motion preference").
			withRecommendation("Disable non-essential animation when prefers-reduced-motion is set"),
	}
}

// FlashingInput describes flashing content.
type FlashingInput struct {
	HasFlashing      bool     `json:"has_flashing" doc:"Whether any content flashes"`
	FlashesPerSecond *float64 `json:"flashes_per_second,omitempty" doc:"Measured flash frequency"`
	AreaFraction     *float64 `json:"area_fraction,omitempty" doc:"Flashing area as a fraction of the viewport"`
}

// CheckFlashing evaluates 2.3.1 (three flashes or below threshold) and
// 2.3.2 (AAA, three flashes). At most three flashes per second is safe for
// both; above that 2.3.1 fails and 2.3.2 warns. A flashing area over a
// quarter of the viewport earns an extra warning at any frequency.
func CheckFlashing(in FlashingInput) []Verdict {
	if !in.HasFlashing {
		return []Verdict{verdict("2.3.1", StatusPass, "No content flashes")}
	}
	freq := 0.0
	if in.FlashesPerSecond != nil {
		freq = *in.FlashesPerSecond
	}
	var out []Verdict
	if freq <= maxFlashesPerSecond {
		out = append(out,
			verdict("2.3.1", StatusPass,
				fmt.Sprintf("Flash frequency %.1f/s is at or below the %d/s threshold", freq, maxFlashesPerSecond)).
				withValues(freq, maxFlashesPerSecond),
			verdict("2.3.2", StatusPass,
				fmt.Sprintf("Flash frequency %.1f/s meets the enhanced threshold", freq)).
				withValues(freq, maxFlashesPerSecond))
	} else {
		out = append(out,
			verdict("2.3.1", StatusFail,
				fmt.Sprintf("Flash frequency %.1f/s exceeds the %d/s threshold", freq, maxFlashesPerSecond)).
				withValues(freq, maxFlashesPerSecond).
				withRecommendation("Reduce flashing to three flashes per second or fewer, or keep it below the general flash thresholds"),
			verdict("2.3.2", StatusWarning,
				fmt.Sprintf("Flash frequency %.1f/s exceeds the enhanced threshold", freq)).
				withValues(freq, maxFlashesPerSecond).
				withRecommendation("Remove flashing above three flashes per second entirely"))
	}
	if in.AreaFraction != nil && *in.AreaFraction > maxFlashAreaFraction {
		out = append(out, verdict("2.3.1", StatusWarning,
			fmt.Sprintf("Flashing covers %.0f%% of the viewport, above the %.0f%% guideline", *in.AreaFraction*100, maxFlashAreaFraction*100)).
			withValues(*in.AreaFraction, maxFlashAreaFraction).
			withRecommendation("Keep flashing regions small relative to the viewport"))
	}
	return out
}

// SignLanguageInput describes sign-language provisioning.
type SignLanguageInput struct {
	HasAudioContent bool `json:"has_audio_content" doc:"Whether prerecorded media contains audio"`
	HasSignLanguage bool `json:"has_sign_language" doc:"Whether sign language interpretation is provided"`
}

// CheckSignLanguage evaluates 1.2.6, an AAA criterion.
func CheckSignLanguage(in SignLanguageInput) []Verdict {
	if !in.HasAudioContent {
		return []Verdict{verdict("1.2.6", StatusInfo, "Media contains no audio; sign language interpretation does not apply")}
	}
	if in.HasSignLanguage {
		return []Verdict{verdict("1.2.6", StatusPass, "Sign language interpretation is provided")}
	}
	return []Verdict{
		verdict("1.2.6", StatusWarning, "No sign language interpretation is provided").
			withRecommendation("Provide sign language interpretation for prerecorded audio content"),
	}
}
