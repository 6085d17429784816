package domain

import "errors"

// TransformStep is the state of the photo-editing workflow.
type TransformStep string

const (
	TransformStepUpload TransformStep = "upload"
	TransformStepEdit   TransformStep = "edit"
	TransformStepResult TransformStep = "result"
)

// GenerateStep is the state of the from-scratch creation workflow.
type GenerateStep string

const (
	GenerateStepPrompt GenerateStep = "prompt"
	GenerateStepResult GenerateStep = "result"
)

var (
	ErrInvalidFileType = errors.New("please upload a valid image file (JPG, PNG, WebP)")
	ErrFileRead        = errors.New("failed to read file")
	ErrNoImage         = errors.New("no image loaded")
	ErrEmptyPrompt     = errors.New("prompt must not be empty")
	ErrWrongStep       = errors.New("action not available in the current step")
	// ErrBusy rejects a second request while one is already in flight for
	// the same workflow instance.
	ErrBusy = errors.New("another request is already in progress")
	// ErrServiceUnavailable rejects AI-backed operations when no image
	// service is configured (missing GEMINI_API_KEY).
	ErrServiceUnavailable = errors.New("image service is not configured")
)

// OriginalImage is the uploaded base image of a transform run. It lives only
// in memory for the duration of the workflow and is discarded on reset.
type OriginalImage struct {
	Filename string `json:"filename"`
	DataURL  string `json:"data_url"`
}

// TransformSession is the transient state of one user's Transform workflow.
type TransformSession struct {
	Step          TransformStep  `json:"step"`
	OriginalImage *OriginalImage `json:"original_image,omitempty"`
	EditedImage   string         `json:"edited_image,omitempty"`
	Prompt        string         `json:"prompt,omitempty"`
	Suggestions   []string       `json:"suggestions,omitempty"`
	Error         string         `json:"error,omitempty"`
	Busy          bool           `json:"busy"`

	// Generation is bumped on every reset; async continuations compare it
	// so a stale response never clobbers state that has moved on.
	Generation int `json:"-"`
}

// NewTransformSession returns a fresh session carrying the next generation.
func NewTransformSession(generation int) *TransformSession {
	return &TransformSession{
		Step:       TransformStepUpload,
		Generation: generation,
	}
}

// GenerateSession is the transient state of one user's Generate workflow.
type GenerateSession struct {
	Step    GenerateStep `json:"step"`
	Prompt  string       `json:"prompt,omitempty"`
	Current string       `json:"current_image,omitempty"`
	// Previous holds the pre-refine image for before/after comparison.
	Previous string `json:"previous_image,omitempty"`
	// Initial is the very first generated image; refine lineage is rooted
	// here, never at an intermediate refinement.
	Initial string `json:"-"`
	Error   string `json:"error,omitempty"`
	Busy    bool   `json:"busy"`

	Generation int `json:"-"`
}

// NewGenerateSession returns a fresh session carrying the next generation.
func NewGenerateSession(generation int) *GenerateSession {
	return &GenerateSession{
		Step:       GenerateStepPrompt,
		Generation: generation,
	}
}
