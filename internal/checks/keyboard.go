package checks

import (
	"fmt"
	"math"
)

// Target-size thresholds in CSS pixels from 2.5.5.
const (
	targetSizePx    = 44.0
	targetMinimumPx = 24.0
)

// KeyboardAccessInput describes operability of the page's functionality.
type KeyboardAccessInput struct {
	AllFunctionalityKeyboardAccessible bool     `json:"all_functionality_keyboard_accessible" doc:"Whether every function is reachable and operable by keyboard"`
	InaccessibleElements               []string `json:"inaccessible_elements,omitempty" doc:"Elements not operable by keyboard"`
	HasKeyboardTrap                    bool     `json:"has_keyboard_trap" doc:"Whether focus can become trapped in a component"`
	TrapLocation                       *string  `json:"trap_location,omitempty" doc:"Where focus gets trapped"`
}

// CheckKeyboardAccess evaluates 2.1.1 and 2.1.2 as independent verdicts.
func CheckKeyboardAccess(in KeyboardAccessInput) []Verdict {
	var out []Verdict
	if in.AllFunctionalityKeyboardAccessible {
		out = append(out, verdict("2.1.1", StatusPass, "All functionality is operable through the keyboard"))
	} else {
		msg := "Some functionality is not operable through the keyboard"
		if len(in.InaccessibleElements) > 0 {
			msg = fmt.Sprintf("%d element(s) are not operable through the keyboard", len(in.InaccessibleElements))
		}
		out = append(out, verdict("2.1.1", StatusFail, msg).
			withValues(in.InaccessibleElements, "all functionality keyboard-operable").
			withRecommendation("Make every interactive element reachable and operable with the keyboard alone"))
	}
	if in.HasKeyboardTrap {
		msg := "Keyboard focus can become trapped"
		if in.TrapLocation != nil && *in.TrapLocation != "" {
			msg = fmt.Sprintf("Keyboard focus can become trapped in %q", *in.TrapLocation)
		}
		out = append(out, verdict("2.1.2", StatusFail, msg).
			withRecommendation("Ensure focus can always be moved away using the keyboard alone"))
	} else {
		out = append(out, verdict("2.1.2", StatusPass, "Keyboard focus is never trapped"))
	}
	return out
}

// FocusInput carries the focus-visibility and focus-order signals.
type FocusInput struct {
	FocusIndicatorVisible bool  `json:"focus_indicator_visible" doc:"Whether focused elements show a visible indicator"`
	OutlineSuppressed     *bool `json:"outline_suppressed,omitempty" doc:"Whether CSS removes the default outline without a replacement"`
	FocusOrderLogical     *bool `json:"focus_order_logical,omitempty" doc:"Whether tab order follows meaning and operability"`
}

// CheckFocus evaluates 2.4.7 and, when the order signal is supplied, 2.4.3.
func CheckFocus(in FocusInput) []Verdict {
	var out []Verdict
	switch {
	case !in.FocusIndicatorVisible:
		out = append(out, verdict("2.4.7", StatusFail, "Focused elements have no visible focus indicator").
			withRecommendation("Provide a visible focus style for every focusable element"))
	case in.OutlineSuppressed != nil && *in.OutlineSuppressed:
		out = append(out, verdict("2.4.7", StatusWarning, "Default focus outline is suppressed; verify the replacement indicator is visible").
			withRecommendation("If outline:none is used, supply an equally visible replacement"))
	default:
		out = append(out, verdict("2.4.7", StatusPass, "Focused elements show a visible focus indicator"))
	}
	if in.FocusOrderLogical != nil {
		if *in.FocusOrderLogical {
			out = append(out, verdict("2.4.3", StatusPass, "Focus order preserves meaning and operability"))
		} else {
			out = append(out, verdict("2.4.3", StatusFail, "Focus order does not follow a sequence that preserves meaning").
				withRecommendation("Order focusable elements to match the reading and interaction sequence"))
		}
	}
	return out
}

// TimingInput describes time limits imposed on the user.
type TimingInput struct {
	HasTimeLimit  bool  `json:"has_time_limit" doc:"Whether any content imposes a time limit"`
	IsEssential   *bool `json:"is_essential,omitempty" doc:"Whether the limit is essential, e.g. an auction (exempt)"`
	CanTurnOff    bool  `json:"can_turn_off" doc:"User can disable the limit"`
	CanAdjust     bool  `json:"can_adjust" doc:"User can lengthen the limit at least tenfold"`
	CanExtend     bool  `json:"can_extend" doc:"User is warned and can extend with a simple action"`
	LongerThan20h *bool `json:"longer_than_20h,omitempty" doc:"Whether the limit exceeds 20 hours (exempt)"`
}

// CheckTiming evaluates 2.2.1. Essential and 20-hour limits are exempt.
func CheckTiming(in TimingInput) []Verdict {
	if !in.HasTimeLimit {
		return []Verdict{verdict("2.2.1", StatusPass, "No time limits are imposed")}
	}
	if in.IsEssential != nil && *in.IsEssential {
		return []Verdict{verdict("2.2.1", StatusPass, "Time limit is essential to the activity and exempt")}
	}
	if in.LongerThan20h != nil && *in.LongerThan20h {
		return []Verdict{verdict("2.2.1", StatusPass, "Time limit exceeds 20 hours and is exempt")}
	}
	if in.CanTurnOff || in.CanAdjust || in.CanExtend {
		return []Verdict{verdict("2.2.1", StatusPass, "Time limit can be turned off, adjusted, or extended")}
	}
	return []Verdict{
		verdict("2.2.1", StatusFail, "A time limit is imposed with no way to turn it off, adjust, or extend it").
			withRecommendation("Let users turn off, extend tenfold, or extend the time limit before it expires"),
	}
}

// MotionInput describes motion-actuated functionality.
type MotionInput struct {
	UsesMotionActuation bool  `json:"uses_motion_actuation" doc:"Whether functionality is triggered by device or user motion"`
	IsEssential         *bool `json:"is_essential,omitempty" doc:"Whether motion is essential to the function (exempt)"`
	HasUIAlternative    bool  `json:"has_ui_alternative" doc:"Whether a conventional UI control triggers the same function"`
	CanDisableMotion    bool  `json:"can_disable_motion" doc:"Whether motion response can be disabled"`
}

// CheckMotion evaluates 2.5.4.
func CheckMotion(in MotionInput) []Verdict {
	if !in.UsesMotionActuation {
		return []Verdict{verdict("2.5.4", StatusPass, "No functionality is actuated by motion")}
	}
	if in.IsEssential != nil && *in.IsEssential {
		return []Verdict{verdict("2.5.4", StatusPass, "Motion actuation is essential to the function and exempt")}
	}
	var out []Verdict
	if in.HasUIAlternative {
		out = append(out, verdict("2.5.4", StatusPass, "Motion-actuated functions have a conventional UI alternative"))
	} else {
		out = append(out, verdict("2.5.4", StatusFail, "Motion-actuated functions have no conventional UI alternative").
			withRecommendation("Provide UI controls that trigger the same functions as motion"))
	}
	if !in.CanDisableMotion {
		out = append(out, verdict("2.5.4", StatusWarning, "Motion response cannot be disabled; accidental actuation is possible").
			withRecommendation("Allow users to disable motion actuation"))
	}
	return out
}

// GesturesInput describes multipoint and path-based gestures.
type GesturesInput struct {
	UsesComplexGestures  bool  `json:"uses_complex_gestures" doc:"Whether multipoint or path-based gestures are used"`
	IsEssential          *bool `json:"is_essential,omitempty" doc:"Whether the gesture is essential, e.g. freehand drawing (exempt)"`
	HasSimpleAlternative bool  `json:"has_simple_alternative" doc:"Whether a single-pointer alternative exists"`
}

// CheckPointerGestures evaluates 2.5.1.
func CheckPointerGestures(in GesturesInput) []Verdict {
	if !in.UsesComplexGestures {
		return []Verdict{verdict("2.5.1", StatusPass, "No multipoint or path-based gestures are required")}
	}
	if in.IsEssential != nil && *in.IsEssential {
		return []Verdict{verdict("2.5.1", StatusPass, "Complex gestures are essential to the function and exempt")}
	}
	if in.HasSimpleAlternative {
		return []Verdict{verdict("2.5.1", StatusPass, "Complex gestures have single-pointer alternatives")}
	}
	return []Verdict{
		verdict("2.5.1", StatusFail, "Multipoint or path-based gestures have no single-pointer alternative").
			withRecommendation("Offer a single-pointer alternative for every complex gesture"),
	}
}

// PointerCancellationInput describes down-event activation behavior.
type PointerCancellationInput struct {
	ActivatesOnDown bool  `json:"activates_on_down" doc:"Whether any function completes on the pointer down-event"`
	IsEssential     *bool `json:"is_essential,omitempty" doc:"Whether down-event activation is essential, e.g. a piano key (exempt)"`
	CanAbortOrUndo  bool  `json:"can_abort_or_undo" doc:"Whether the action can be aborted before completion or undone after"`
}

// CheckPointerCancellation evaluates 2.5.2. Up-event activation is safe by
// construction.
func CheckPointerCancellation(in PointerCancellationInput) []Verdict {
	if !in.ActivatesOnDown {
		return []Verdict{verdict("2.5.2", StatusPass, "Functions complete on the up-event; activation can be cancelled")}
	}
	if in.IsEssential != nil && *in.IsEssential {
		return []Verdict{verdict("2.5.2", StatusPass, "Down-event activation is essential to the function and exempt")}
	}
	if in.CanAbortOrUndo {
		return []Verdict{verdict("2.5.2", StatusPass, "Down-event activations can be aborted or undone")}
	}
	return []Verdict{
		verdict("2.5.2", StatusFail, "Functions complete on the down-event and cannot be aborted or undone").
			withRecommendation("Complete activation on the up-event, or make down-event actions abortable"),
	}
}

// TargetSizeInput is the bounding box of one pointer target.
type TargetSizeInput struct {
	WidthPx  float64 `json:"width_px" doc:"Target width in CSS pixels"`
	HeightPx float64 `json:"height_px" doc:"Target height in CSS pixels"`
	IsInline *bool   `json:"is_inline,omitempty" doc:"Whether the target sits inline in a sentence (exempt)"`
}

// CheckTargetSize evaluates 2.5.5 against 44x44 and separately warns when
// either dimension falls under 24 pixels, a floor small enough to miss even
// with precise pointing.
func CheckTargetSize(in TargetSizeInput) []Verdict {
	observed := fmt.Sprintf("%.0fx%.0f", in.WidthPx, in.HeightPx)
	var out []Verdict
	if in.IsInline != nil && *in.IsInline {
		out = append(out, verdict("2.5.5", StatusPass, "Inline targets within a sentence are exempt from the size requirement"))
	} else if in.WidthPx >= targetSizePx && in.HeightPx >= targetSizePx {
		out = append(out, verdict("2.5.5", StatusPass,
			fmt.Sprintf("Target is %s CSS pixels, meeting the %.0fx%.0f requirement", observed, targetSizePx, targetSizePx)).
			withValues(observed, fmt.Sprintf("%.0fx%.0f", targetSizePx, targetSizePx)))
	} else {
		out = append(out, verdict("2.5.5", StatusFail,
			fmt.Sprintf("Target is %s CSS pixels, below the %.0fx%.0f requirement", observed, targetSizePx, targetSizePx)).
			withValues(observed, fmt.Sprintf("%.0fx%.0f", targetSizePx, targetSizePx)).
			withRecommendation(fmt.Sprintf("Enlarge the target to at least %.0fx%.0f CSS pixels", targetSizePx, targetSizePx)))
	}
	if min := math.Min(in.WidthPx, in.HeightPx); min < targetMinimumPx {
		out = append(out, verdict("2.5.5", StatusWarning,
			fmt.Sprintf("Smallest target dimension is %.0f CSS pixels, under the %.0f-pixel floor", min, targetMinimumPx)).
			withValues(min, targetMinimumPx).
			withRecommendation(fmt.Sprintf("Keep every target dimension at %.0f CSS pixels or more", targetMinimumPx)))
	}
	return out
}
