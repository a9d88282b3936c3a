package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"accesslint/internal/catalog"
	"accesslint/internal/checks"
	"accesslint/internal/report"
	"accesslint/internal/store"
)

type reportBody struct {
	Text    string               `json:"text" doc:"Human report followed by the machine-readable block"`
	Machine report.MachineReport `json:"machine" doc:"Structured report"`
}

type reportResponse struct {
	Body reportBody
}

// registerCheck wires one check function as a named POST operation. The
// input type's fields become the operation's declared JSON schema.
func registerCheck[I any](api huma.API, svc *Service, opID, path, summary string, category catalog.Category, run func(I) []checks.Verdict) {
	huma.Register(api, huma.Operation{
		OperationID: opID,
		Method:      http.MethodPost,
		Path:        path,
		Summary:     summary,
		Tags:        []string{string(category)},
	}, func(ctx context.Context, input *struct {
		Title string `query:"title" required:"false" doc:"Report title"`
		Body  I
	}) (*reportResponse, error) {
		title := input.Title
		if title == "" {
			title = svc.DefaultTitle
		}
		rep := report.Build(run(input.Body), title, category)
		now := svc.Now()
		text, err := rep.FormatResponse(now)
		if err != nil {
			return nil, handleError(err)
		}
		machine := rep.Machine(now)
		svc.recordAudit(ctx, opID, category, now, rep, machine)
		return &reportResponse{Body: reportBody{Text: text, Machine: machine}}, nil
	})
}

// recordAudit persists the run. Auditing is best effort and never fails
// the request.
func (svc *Service) recordAudit(ctx context.Context, opID string, category catalog.Category, now time.Time, rep report.Report, machine report.MachineReport) {
	if svc.Store == nil {
		return
	}
	raw, err := json.Marshal(machine)
	if err != nil {
		log.Printf("audit: marshal report for %s: %v", opID, err)
		return
	}
	a := store.Audit{
		ID:         uuid.NewString(),
		CreatedAt:  now.UTC().Format(time.RFC3339Nano),
		Operation:  opID,
		Category:   string(category),
		Actor:      actorFromContext(ctx),
		Total:      rep.Summary.Total,
		Passed:     rep.Summary.Passed,
		Failed:     rep.Summary.Failed,
		Warnings:   rep.Summary.Warnings,
		Info:       rep.Summary.Info,
		ReportJSON: string(raw),
	}
	if err := svc.Store.InsertAudit(ctx, a); err != nil {
		log.Printf("audit: insert for %s: %v", opID, err)
		return
	}
	if err := svc.Store.PruneAudits(ctx, svc.AuditKeep); err != nil {
		log.Printf("audit: prune: %v", err)
	}
}

func registerChecks(api huma.API, svc *Service) {
	registerCheck(api, svc, "check-contrast", "/checks/contrast",
		"Check text color contrast", catalog.CategoryText, checks.CheckContrast)
	registerCheck(api, svc, "check-text-spacing", "/checks/text-spacing",
		"Check text spacing metrics", catalog.CategoryText, checks.CheckTextSpacing)
	registerCheck(api, svc, "check-line-length", "/checks/line-length",
		"Check maximum line length", catalog.CategoryText, checks.CheckLineLength)
	registerCheck(api, svc, "check-justification", "/checks/justification",
		"Check text justification", catalog.CategoryText, checks.CheckJustification)
	registerCheck(api, svc, "check-resize-reflow", "/checks/resize-reflow",
		"Check text resize and reflow", catalog.CategoryText, checks.CheckResizeReflow)
	registerCheck(api, svc, "check-language", "/checks/language",
		"Check page language declaration", catalog.CategoryText, checks.CheckLanguage)
	registerCheck(api, svc, "check-images-of-text", "/checks/images-of-text",
		"Check for images of text", catalog.CategoryText, checks.CheckImagesOfText)

	registerCheck(api, svc, "check-headings", "/checks/headings",
		"Check heading structure", catalog.CategoryStructure, checks.CheckHeadings)
	registerCheck(api, svc, "check-page-title", "/checks/page-title",
		"Check document title", catalog.CategoryStructure, checks.CheckPageTitle)
	registerCheck(api, svc, "check-link-purpose", "/checks/link-purpose",
		"Check link purpose", catalog.CategoryStructure, checks.CheckLinkPurpose)
	registerCheck(api, svc, "check-bypass-blocks", "/checks/bypass-blocks",
		"Check bypass mechanisms", catalog.CategoryStructure, checks.CheckBypassBlocks)
	registerCheck(api, svc, "check-reading-order", "/checks/reading-order",
		"Check reading order", catalog.CategoryStructure, checks.CheckReadingOrder)
	registerCheck(api, svc, "check-info-relationships", "/checks/info-relationships",
		"Check structural relationships", catalog.CategoryStructure, checks.CheckInfoRelationships)
	registerCheck(api, svc, "check-multiple-ways", "/checks/multiple-ways",
		"Check ways to locate a page", catalog.CategoryStructure, checks.CheckMultipleWays)
	registerCheck(api, svc, "check-consistent-navigation", "/checks/consistent-navigation",
		"Check navigation consistency across pages", catalog.CategoryStructure, checks.CheckConsistentNavigation)
	registerCheck(api, svc, "check-consistent-identification", "/checks/consistent-identification",
		"Check component identification consistency", catalog.CategoryStructure, checks.CheckConsistentIdentification)

	registerCheck(api, svc, "check-keyboard-access", "/checks/keyboard-access",
		"Check keyboard operability", catalog.CategoryKeyboard, checks.CheckKeyboardAccess)
	registerCheck(api, svc, "check-focus", "/checks/focus",
		"Check focus visibility and order", catalog.CategoryKeyboard, checks.CheckFocus)
	registerCheck(api, svc, "check-timing", "/checks/timing",
		"Check adjustable time limits", catalog.CategoryKeyboard, checks.CheckTiming)
	registerCheck(api, svc, "check-motion", "/checks/motion",
		"Check motion actuation", catalog.CategoryKeyboard, checks.CheckMotion)
	registerCheck(api, svc, "check-pointer-gestures", "/checks/pointer-gestures",
		"Check pointer gesture alternatives", catalog.CategoryKeyboard, checks.CheckPointerGestures)
	registerCheck(api, svc, "check-pointer-cancellation", "/checks/pointer-cancellation",
		"Check pointer cancellation", catalog.CategoryKeyboard, checks.CheckPointerCancellation)
	registerCheck(api, svc, "check-target-size", "/checks/target-size",
		"Check pointer target size", catalog.CategoryKeyboard, checks.CheckTargetSize)

	registerCheck(api, svc, "check-name-role-value", "/checks/name-role-value",
		"Check accessible name, role, and value", catalog.CategoryARIA, checks.CheckNameRoleValue)
	registerCheck(api, svc, "check-status-messages", "/checks/status-messages",
		"Check status message semantics", catalog.CategoryARIA, checks.CheckStatusMessages)
	registerCheck(api, svc, "check-aria-attributes", "/checks/aria-attributes",
		"Check ARIA attribute validity", catalog.CategoryARIA, checks.CheckAriaAttributes)
	registerCheck(api, svc, "check-landmarks", "/checks/landmarks",
		"Check landmark labeling", catalog.CategoryARIA, checks.CheckLandmarks)
	registerCheck(api, svc, "check-label-in-name", "/checks/label-in-name",
		"Check label in accessible name", catalog.CategoryARIA, checks.CheckLabelInName)

	registerCheck(api, svc, "check-form-labels", "/checks/form-labels",
		"Check form field labels", catalog.CategoryForms, checks.CheckFormLabels)
	registerCheck(api, svc, "check-input-purpose", "/checks/input-purpose",
		"Check declared input purpose", catalog.CategoryForms, checks.CheckInputPurpose)
	registerCheck(api, svc, "check-error-identification", "/checks/error-identification",
		"Check error identification", catalog.CategoryForms, checks.CheckErrorIdentification)
	registerCheck(api, svc, "check-error-prevention", "/checks/error-prevention",
		"Check error prevention safeguards", catalog.CategoryForms, checks.CheckErrorPrevention)
	registerCheck(api, svc, "check-input-constraints", "/checks/input-constraints",
		"Check input format documentation", catalog.CategoryForms, checks.CheckInputConstraints)
	registerCheck(api, svc, "check-on-input", "/checks/on-input",
		"Check on-input context changes", catalog.CategoryForms, checks.CheckOnInput)

	registerCheck(api, svc, "check-captions", "/checks/captions",
		"Check caption provisioning", catalog.CategoryMedia, checks.CheckCaptions)
	registerCheck(api, svc, "check-audio-description", "/checks/audio-description",
		"Check audio description", catalog.CategoryMedia, checks.CheckAudioDescription)
	registerCheck(api, svc, "check-transcript", "/checks/transcript",
		"Check transcripts and text alternatives", catalog.CategoryMedia, checks.CheckTranscript)
	registerCheck(api, svc, "check-media-controls", "/checks/media-controls",
		"Check media control mechanisms", catalog.CategoryMedia, checks.CheckMediaControls)
	registerCheck(api, svc, "check-animation", "/checks/animation",
		"Check interaction animation", catalog.CategoryMedia, checks.CheckAnimation)
	registerCheck(api, svc, "check-flashing", "/checks/flashing",
		"Check flashing content", catalog.CategoryMedia, checks.CheckFlashing)
	registerCheck(api, svc, "check-sign-language", "/checks/sign-language",
		"Check sign language interpretation", catalog.CategoryMedia, checks.CheckSignLanguage)
}

func registerValidators(api huma.API, svc *Service) {
	registerCheck(api, svc, "validate-text", "/validate/text",
		"Run every text check", catalog.CategoryText, checks.ValidateText)
	registerCheck(api, svc, "validate-structure", "/validate/structure",
		"Run every structure check", catalog.CategoryStructure, checks.ValidateStructure)
	registerCheck(api, svc, "validate-keyboard", "/validate/keyboard",
		"Run every keyboard check", catalog.CategoryKeyboard, checks.ValidateKeyboard)
	registerCheck(api, svc, "validate-aria", "/validate/aria",
		"Run every ARIA check", catalog.CategoryARIA, checks.ValidateAria)
	registerCheck(api, svc, "validate-forms", "/validate/forms",
		"Run every forms check", catalog.CategoryForms, checks.ValidateForms)
	registerCheck(api, svc, "validate-media", "/validate/media",
		"Run every media check", catalog.CategoryMedia, checks.ValidateMedia)
}
