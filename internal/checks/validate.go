package checks

// Validation orchestrators. Each gathers the optional per-topic inputs,
// runs the present ones in a fixed order, and concatenates the verdicts.
// A nil sub-input skips that check entirely rather than emitting info.

// TextValidationInput bundles every text-topic check input.
type TextValidationInput struct {
	Contrast      *ContrastInput      `json:"contrast,omitempty" doc:"Contrast check input"`
	Spacing       *SpacingInput       `json:"spacing,omitempty" doc:"Text spacing check input"`
	LineLength    *LineLengthInput    `json:"line_length,omitempty" doc:"Line length check input"`
	Justification *JustificationInput `json:"justification,omitempty" doc:"Justification check input"`
	ResizeReflow  *ResizeReflowInput  `json:"resize_reflow,omitempty" doc:"Resize and reflow check input"`
	Language      *LanguageInput      `json:"language,omitempty" doc:"Language declaration check input"`
	ImagesOfText  *ImagesOfTextInput  `json:"images_of_text,omitempty" doc:"Images-of-text check input"`
}

// ValidateText runs the text-topic checks in a fixed order.
func ValidateText(in TextValidationInput) []Verdict {
	var out []Verdict
	if in.Contrast != nil {
		out = append(out, CheckContrast(*in.Contrast)...)
	}
	if in.Spacing != nil {
		out = append(out, CheckTextSpacing(*in.Spacing)...)
	}
	if in.LineLength != nil {
		out = append(out, CheckLineLength(*in.LineLength)...)
	}
	if in.Justification != nil {
		out = append(out, CheckJustification(*in.Justification)...)
	}
	if in.ResizeReflow != nil {
		out = append(out, CheckResizeReflow(*in.ResizeReflow)...)
	}
	if in.Language != nil {
		out = append(out, CheckLanguage(*in.Language)...)
	}
	if in.ImagesOfText != nil {
		out = append(out, CheckImagesOfText(*in.ImagesOfText)...)
	}
	return out
}

// StructureValidationInput bundles every structure-topic check input.
type StructureValidationInput struct {
	Headings                 *HeadingsInput                 `json:"headings,omitempty" doc:"Heading structure check input"`
	PageTitle                *PageTitleInput                `json:"page_title,omitempty" doc:"Page title check input"`
	LinkPurpose              *LinkPurposeInput              `json:"link_purpose,omitempty" doc:"Link purpose check input"`
	BypassBlocks             *BypassBlocksInput             `json:"bypass_blocks,omitempty" doc:"Bypass blocks check input"`
	ReadingOrder             *ReadingOrderInput             `json:"reading_order,omitempty" doc:"Reading order check input"`
	InfoRelationships        *InfoRelationshipsInput        `json:"info_relationships,omitempty" doc:"Info and relationships check input"`
	MultipleWays             *MultipleWaysInput             `json:"multiple_ways,omitempty" doc:"Multiple ways check input"`
	ConsistentNavigation     *ConsistentNavigationInput     `json:"consistent_navigation,omitempty" doc:"Consistent navigation check input"`
	ConsistentIdentification *ConsistentIdentificationInput `json:"consistent_identification,omitempty" doc:"Consistent identification check input"`
}

// ValidateStructure runs the structure-topic checks in a fixed order.
func ValidateStructure(in StructureValidationInput) []Verdict {
	var out []Verdict
	if in.Headings != nil {
		out = append(out, CheckHeadings(*in.Headings)...)
	}
	if in.PageTitle != nil {
		out = append(out, CheckPageTitle(*in.PageTitle)...)
	}
	if in.LinkPurpose != nil {
		out = append(out, CheckLinkPurpose(*in.LinkPurpose)...)
	}
	if in.BypassBlocks != nil {
		out = append(out, CheckBypassBlocks(*in.BypassBlocks)...)
	}
	if in.ReadingOrder != nil {
		out = append(out, CheckReadingOrder(*in.ReadingOrder)...)
	}
	if in.InfoRelationships != nil {
		out = append(out, CheckInfoRelationships(*in.InfoRelationships)...)
	}
	if in.MultipleWays != nil {
		out = append(out, CheckMultipleWays(*in.MultipleWays)...)
	}
	if in.ConsistentNavigation != nil {
		out = append(out, CheckConsistentNavigation(*in.ConsistentNavigation)...)
	}
	if in.ConsistentIdentification != nil {
		out = append(out, CheckConsistentIdentification(*in.ConsistentIdentification)...)
	}
	return out
}

// KeyboardValidationInput bundles every keyboard-topic check input.
type KeyboardValidationInput struct {
	KeyboardAccess      *KeyboardAccessInput      `json:"keyboard_access,omitempty" doc:"Keyboard access check input"`
	Focus               *FocusInput               `json:"focus,omitempty" doc:"Focus visibility and order check input"`
	Timing              *TimingInput              `json:"timing,omitempty" doc:"Timing adjustability check input"`
	Motion              *MotionInput              `json:"motion,omitempty" doc:"Motion actuation check input"`
	Gestures            *GesturesInput            `json:"gestures,omitempty" doc:"Pointer gestures check input"`
	PointerCancellation *PointerCancellationInput `json:"pointer_cancellation,omitempty" doc:"Pointer cancellation check input"`
	TargetSize          *TargetSizeInput          `json:"target_size,omitempty" doc:"Target size check input"`
}

// ValidateKeyboard runs the keyboard-topic checks in a fixed order.
func ValidateKeyboard(in KeyboardValidationInput) []Verdict {
	var out []Verdict
	if in.KeyboardAccess != nil {
		out = append(out, CheckKeyboardAccess(*in.KeyboardAccess)...)
	}
	if in.Focus != nil {
		out = append(out, CheckFocus(*in.Focus)...)
	}
	if in.Timing != nil {
		out = append(out, CheckTiming(*in.Timing)...)
	}
	if in.Motion != nil {
		out = append(out, CheckMotion(*in.Motion)...)
	}
	if in.Gestures != nil {
		out = append(out, CheckPointerGestures(*in.Gestures)...)
	}
	if in.PointerCancellation != nil {
		out = append(out, CheckPointerCancellation(*in.PointerCancellation)...)
	}
	if in.TargetSize != nil {
		out = append(out, CheckTargetSize(*in.TargetSize)...)
	}
	return out
}

// AriaValidationInput bundles every ARIA-topic check input.
type AriaValidationInput struct {
	NameRoleValue  *NameRoleValueInput  `json:"name_role_value,omitempty" doc:"Name, role, value check input"`
	StatusMessages *StatusMessagesInput `json:"status_messages,omitempty" doc:"Status messages check input"`
	Attributes     *AriaAttributesInput `json:"attributes,omitempty" doc:"ARIA attribute validity check input"`
	Landmarks      *LandmarksInput      `json:"landmarks,omitempty" doc:"Landmark labeling check input"`
	LabelInName    *LabelInNameInput    `json:"label_in_name,omitempty" doc:"Label-in-name check input"`
}

// ValidateAria runs the ARIA-topic checks in a fixed order.
func ValidateAria(in AriaValidationInput) []Verdict {
	var out []Verdict
	if in.NameRoleValue != nil {
		out = append(out, CheckNameRoleValue(*in.NameRoleValue)...)
	}
	if in.StatusMessages != nil {
		out = append(out, CheckStatusMessages(*in.StatusMessages)...)
	}
	if in.Attributes != nil {
		out = append(out, CheckAriaAttributes(*in.Attributes)...)
	}
	if in.Landmarks != nil {
		out = append(out, CheckLandmarks(*in.Landmarks)...)
	}
	if in.LabelInName != nil {
		out = append(out, CheckLabelInName(*in.LabelInName)...)
	}
	return out
}

// FormsValidationInput bundles every forms-topic check input.
type FormsValidationInput struct {
	Labels              *FormLabelsInput          `json:"labels,omitempty" doc:"Form labels check input"`
	InputPurpose        *InputPurposeInput        `json:"input_purpose,omitempty" doc:"Input purpose check input"`
	ErrorIdentification *ErrorIdentificationInput `json:"error_identification,omitempty" doc:"Error identification check input"`
	ErrorPrevention     *ErrorPreventionInput     `json:"error_prevention,omitempty" doc:"Error prevention check input"`
	InputConstraints    *InputConstraintsInput    `json:"input_constraints,omitempty" doc:"Input constraints check input"`
	OnInput             *OnInputInput             `json:"on_input,omitempty" doc:"On-input behavior check input"`
}

// ValidateForms runs the forms-topic checks in a fixed order.
func ValidateForms(in FormsValidationInput) []Verdict {
	var out []Verdict
	if in.Labels != nil {
		out = append(out, CheckFormLabels(*in.Labels)...)
	}
	if in.InputPurpose != nil {
		out = append(out, CheckInputPurpose(*in.InputPurpose)...)
	}
	if in.ErrorIdentification != nil {
		out = append(out, CheckErrorIdentification(*in.ErrorIdentification)...)
	}
	if in.ErrorPrevention != nil {
		out = append(out, CheckErrorPrevention(*in.ErrorPrevention)...)
	}
	if in.InputConstraints != nil {
		out = append(out, CheckInputConstraints(*in.InputConstraints)...)
	}
	if in.OnInput != nil {
		out = append(out, CheckOnInput(*in.OnInput)...)
	}
	return out
}

// MediaValidationInput bundles every media-topic check input.
type MediaValidationInput struct {
	Captions         *CaptionsInput         `json:"captions,omitempty" doc:"Captions check input"`
	AudioDescription *AudioDescriptionInput `json:"audio_description,omitempty" doc:"Audio description check input"`
	Transcript       *TranscriptInput       `json:"transcript,omitempty" doc:"Transcript check input"`
	MediaControls    *MediaControlsInput    `json:"media_controls,omitempty" doc:"Media controls check input"`
	Animation        *AnimationInput        `json:"animation,omitempty" doc:"Animation check input"`
	Flashing         *FlashingInput         `json:"flashing,omitempty" doc:"Flashing check input"`
	SignLanguage     *SignLanguageInput     `json:"sign_language,omitempty" doc:"Sign language check input"`
}

// ValidateMedia runs the media-topic checks in a fixed order.
func ValidateMedia(in MediaValidationInput) []Verdict {
	var out []Verdict
	if in.Captions != nil {
		out = append(out, CheckCaptions(*in.Captions)...)
	}
	if in.AudioDescription != nil {
		out = append(out, CheckAudioDescription(*in.AudioDescription)...)
	}
	if in.Transcript != nil {
		out = append(out, CheckTranscript(*in.Transcript)...)
	}
	if in.MediaControls != nil {
		out = append(out, CheckMediaControls(*in.MediaControls)...)
	}
	if in.Animation != nil {
		out = append(out, CheckAnimation(*in.Animation)...)
	}
	if in.Flashing != nil {
		out = append(out, CheckFlashing(*in.Flashing)...)
	}
	if in.SignLanguage != nil {
		out = append(out, CheckSignLanguage(*in.SignLanguage)...)
	}
	return out
}
