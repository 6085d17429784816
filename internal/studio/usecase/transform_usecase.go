package usecase

import (
	"context"
	"io"
	"strings"
	"sync"

	creditusecase "sellshot-backend/internal/credits/usecase"
	gallerydomain "sellshot-backend/internal/gallery/domain"
	galleryusecase "sellshot-backend/internal/gallery/usecase"
	studiodomain "sellshot-backend/internal/studio/domain"
	"sellshot-backend/pkg/ai"
	"sellshot-backend/pkg/imagedata"
)

// transformUsecase implements TransformUsecase. Sessions are transient and
// per-user; the mutex is released for the duration of every AI call so the
// two workflows stay independent, and continuations re-check the session
// generation before applying results.
type transformUsecase struct {
	mu       sync.Mutex
	sessions map[string]*studiodomain.TransformSession

	imageService ai.ImageService
	creditGate   creditusecase.CreditGate
	gallery      galleryusecase.GalleryUsecase
}

// NewTransformUsecase creates a new instance of transformUsecase
func NewTransformUsecase(imageService ai.ImageService, creditGate creditusecase.CreditGate, gallery galleryusecase.GalleryUsecase) TransformUsecase {
	return &transformUsecase{
		sessions:     make(map[string]*studiodomain.TransformSession),
		imageService: imageService,
		creditGate:   creditGate,
		gallery:      gallery,
	}
}

// session returns the live session for a user, creating it on first use.
// Callers must hold the mutex.
func (u *transformUsecase) session(userID string) *studiodomain.TransformSession {
	sess, ok := u.sessions[userID]
	if !ok {
		sess = studiodomain.NewTransformSession(0)
		u.sessions[userID] = sess
	}
	return sess
}

func snapshotTransform(sess *studiodomain.TransformSession) *studiodomain.TransformSession {
	snap := *sess
	return &snap
}

func (u *transformUsecase) Upload(ctx context.Context, userID, filename, contentType string, file io.Reader) (*studiodomain.TransformSession, error) {
	u.mu.Lock()
	sess := u.session(userID)
	if sess.Busy {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrBusy
	}
	if sess.Step != studiodomain.TransformStepUpload {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrWrongStep
	}
	if !imagedata.IsAllowedType(contentType) {
		defer u.mu.Unlock()
		sess.Error = studiodomain.ErrInvalidFileType.Error()
		return snapshotTransform(sess), studiodomain.ErrInvalidFileType
	}
	if u.imageService == nil {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrServiceUnavailable
	}
	sess.Busy = true
	sess.Error = ""
	gen := sess.Generation
	u.mu.Unlock()

	data, err := io.ReadAll(file)
	if err != nil {
		u.mu.Lock()
		defer u.mu.Unlock()
		cur := u.session(userID)
		if cur.Generation == gen {
			cur.Busy = false
			cur.Error = studiodomain.ErrFileRead.Error()
		}
		return snapshotTransform(cur), studiodomain.ErrFileRead
	}
	dataURL := imagedata.Encode(imagedata.MediaType(contentType), data)

	// Analysis is best-effort; a failure degrades suggestions to empty but
	// never blocks the edit step.
	suggestions, analyzeErr := u.imageService.Analyze(ctx, dataURL)

	u.mu.Lock()
	defer u.mu.Unlock()
	cur := u.session(userID)
	if cur.Generation != gen {
		// The workflow was reset while we were analyzing.
		return snapshotTransform(cur), nil
	}
	cur.Busy = false
	cur.OriginalImage = &studiodomain.OriginalImage{Filename: filename, DataURL: dataURL}
	cur.Step = studiodomain.TransformStepEdit
	if analyzeErr != nil {
		cur.Error = analyzeErr.Error()
		cur.Suggestions = nil
	} else {
		cur.Suggestions = suggestions
		if len(suggestions) > 0 {
			cur.Prompt = suggestions[0]
		}
	}
	return snapshotTransform(cur), nil
}

func (u *transformUsecase) Transform(ctx context.Context, userID, prompt string) (*studiodomain.TransformSession, error) {
	prompt = strings.TrimSpace(prompt)

	u.mu.Lock()
	sess := u.session(userID)
	if sess.Busy {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrBusy
	}
	if sess.Step != studiodomain.TransformStepEdit {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrWrongStep
	}
	if sess.OriginalImage == nil {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrNoImage
	}
	if prompt == "" {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrEmptyPrompt
	}
	if u.imageService == nil {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrServiceUnavailable
	}
	if err := u.creditGate.Allow(userID); err != nil {
		defer u.mu.Unlock()
		return snapshotTransform(sess), err
	}
	sess.Busy = true
	sess.Error = ""
	sess.Prompt = prompt
	gen := sess.Generation
	original := sess.OriginalImage.DataURL
	u.mu.Unlock()

	result, err := u.imageService.Edit(ctx, original, prompt)

	u.mu.Lock()
	defer u.mu.Unlock()
	cur := u.session(userID)
	if cur.Generation != gen {
		return snapshotTransform(cur), nil
	}
	cur.Busy = false
	if err != nil {
		svcErr := ai.NewServiceError("edit", err.Error())
		cur.Error = svcErr.Message
		return snapshotTransform(cur), svcErr
	}

	cur.EditedImage = result
	cur.Step = studiodomain.TransformStepResult
	if err := u.creditGate.Consume(userID); err != nil {
		return snapshotTransform(cur), err
	}
	if _, err := u.gallery.Append(userID, gallerydomain.Item{
		Src:         result,
		Prompt:      prompt,
		Type:        gallerydomain.ItemTypeEdited,
		OriginalSrc: original,
	}); err != nil {
		return snapshotTransform(cur), err
	}
	return snapshotTransform(cur), nil
}

func (u *transformUsecase) Refine(ctx context.Context, userID, prompt string) (*studiodomain.TransformSession, error) {
	prompt = strings.TrimSpace(prompt)

	u.mu.Lock()
	sess := u.session(userID)
	if sess.Busy {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrBusy
	}
	if sess.Step != studiodomain.TransformStepResult || sess.EditedImage == "" {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrWrongStep
	}
	if prompt == "" {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrEmptyPrompt
	}
	if u.imageService == nil {
		defer u.mu.Unlock()
		return snapshotTransform(sess), studiodomain.ErrServiceUnavailable
	}
	if err := u.creditGate.Allow(userID); err != nil {
		defer u.mu.Unlock()
		return snapshotTransform(sess), err
	}
	sess.Busy = true
	sess.Error = ""
	gen := sess.Generation
	current := sess.EditedImage
	// Lineage stays rooted at the uploaded image across the whole refine
	// chain, never at an intermediate refinement.
	root := sess.OriginalImage.DataURL
	u.mu.Unlock()

	result, err := u.imageService.Edit(ctx, current, prompt)

	u.mu.Lock()
	defer u.mu.Unlock()
	cur := u.session(userID)
	if cur.Generation != gen {
		return snapshotTransform(cur), nil
	}
	cur.Busy = false
	if err != nil {
		svcErr := ai.NewServiceError("edit", err.Error())
		cur.Error = svcErr.Message
		return snapshotTransform(cur), svcErr
	}

	cur.EditedImage = result
	if err := u.creditGate.Consume(userID); err != nil {
		return snapshotTransform(cur), err
	}
	if _, err := u.gallery.Append(userID, gallerydomain.Item{
		Src:         result,
		Prompt:      prompt,
		Type:        gallerydomain.ItemTypeEdited,
		OriginalSrc: root,
	}); err != nil {
		return snapshotTransform(cur), err
	}
	return snapshotTransform(cur), nil
}

func (u *transformUsecase) Reset(userID string) *studiodomain.TransformSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	old := u.session(userID)
	fresh := studiodomain.NewTransformSession(old.Generation + 1)
	u.sessions[userID] = fresh
	return snapshotTransform(fresh)
}

func (u *transformUsecase) State(userID string) *studiodomain.TransformSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	return snapshotTransform(u.session(userID))
}
