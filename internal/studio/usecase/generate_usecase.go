package usecase

import (
	"context"
	"strings"
	"sync"

	creditusecase "sellshot-backend/internal/credits/usecase"
	gallerydomain "sellshot-backend/internal/gallery/domain"
	galleryusecase "sellshot-backend/internal/gallery/usecase"
	studiodomain "sellshot-backend/internal/studio/domain"
	"sellshot-backend/pkg/ai"
)

// generateUsecase implements GenerateUsecase. It is fully independent of the
// Transform workflow; the two only share the credit gate and the gallery.
type generateUsecase struct {
	mu       sync.Mutex
	sessions map[string]*studiodomain.GenerateSession

	imageService ai.ImageService
	creditGate   creditusecase.CreditGate
	gallery      galleryusecase.GalleryUsecase
}

// NewGenerateUsecase creates a new instance of generateUsecase
func NewGenerateUsecase(imageService ai.ImageService, creditGate creditusecase.CreditGate, gallery galleryusecase.GalleryUsecase) GenerateUsecase {
	return &generateUsecase{
		sessions:     make(map[string]*studiodomain.GenerateSession),
		imageService: imageService,
		creditGate:   creditGate,
		gallery:      gallery,
	}
}

func (u *generateUsecase) session(userID string) *studiodomain.GenerateSession {
	sess, ok := u.sessions[userID]
	if !ok {
		sess = studiodomain.NewGenerateSession(0)
		u.sessions[userID] = sess
	}
	return sess
}

func snapshotGenerate(sess *studiodomain.GenerateSession) *studiodomain.GenerateSession {
	snap := *sess
	return &snap
}

func (u *generateUsecase) Generate(ctx context.Context, userID, prompt string) (*studiodomain.GenerateSession, error) {
	prompt = strings.TrimSpace(prompt)

	u.mu.Lock()
	sess := u.session(userID)
	if sess.Busy {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrBusy
	}
	if sess.Step != studiodomain.GenerateStepPrompt {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrWrongStep
	}
	if prompt == "" {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrEmptyPrompt
	}
	if u.imageService == nil {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrServiceUnavailable
	}
	if err := u.creditGate.Allow(userID); err != nil {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), err
	}
	sess.Busy = true
	sess.Error = ""
	sess.Prompt = prompt
	sess.Previous = ""
	gen := sess.Generation
	u.mu.Unlock()

	result, err := u.imageService.Generate(ctx, prompt)

	u.mu.Lock()
	defer u.mu.Unlock()
	cur := u.session(userID)
	if cur.Generation != gen {
		return snapshotGenerate(cur), nil
	}
	cur.Busy = false
	if err != nil {
		svcErr := ai.NewServiceError("generate", err.Error())
		cur.Error = svcErr.Message
		return snapshotGenerate(cur), svcErr
	}

	cur.Current = result
	cur.Initial = result
	cur.Step = studiodomain.GenerateStepResult
	if err := u.creditGate.Consume(userID); err != nil {
		return snapshotGenerate(cur), err
	}
	if _, err := u.gallery.Append(userID, gallerydomain.Item{
		Src:    result,
		Prompt: prompt,
		Type:   gallerydomain.ItemTypeGenerated,
	}); err != nil {
		return snapshotGenerate(cur), err
	}
	return snapshotGenerate(cur), nil
}

func (u *generateUsecase) Refine(ctx context.Context, userID, prompt string) (*studiodomain.GenerateSession, error) {
	prompt = strings.TrimSpace(prompt)

	u.mu.Lock()
	sess := u.session(userID)
	if sess.Busy {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrBusy
	}
	if sess.Step != studiodomain.GenerateStepResult || sess.Current == "" {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrWrongStep
	}
	if prompt == "" {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrEmptyPrompt
	}
	if u.imageService == nil {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), studiodomain.ErrServiceUnavailable
	}
	if err := u.creditGate.Allow(userID); err != nil {
		defer u.mu.Unlock()
		return snapshotGenerate(sess), err
	}
	sess.Busy = true
	sess.Error = ""
	// Cache the pre-refine image for the before/after comparison view.
	sess.Previous = sess.Current
	gen := sess.Generation
	current := sess.Current
	root := sess.Initial
	if root == "" {
		root = current
	}
	u.mu.Unlock()

	result, err := u.imageService.Edit(ctx, current, prompt)

	u.mu.Lock()
	defer u.mu.Unlock()
	cur := u.session(userID)
	if cur.Generation != gen {
		return snapshotGenerate(cur), nil
	}
	cur.Busy = false
	if err != nil {
		svcErr := ai.NewServiceError("edit", err.Error())
		cur.Error = svcErr.Message
		return snapshotGenerate(cur), svcErr
	}

	cur.Current = result
	if err := u.creditGate.Consume(userID); err != nil {
		return snapshotGenerate(cur), err
	}
	if _, err := u.gallery.Append(userID, gallerydomain.Item{
		Src:    result,
		Prompt: prompt,
		Type:   gallerydomain.ItemTypeEdited,
		// Lineage is rooted at the first generated image of this run.
		OriginalSrc: root,
	}); err != nil {
		return snapshotGenerate(cur), err
	}
	return snapshotGenerate(cur), nil
}

func (u *generateUsecase) Reset(userID string) *studiodomain.GenerateSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	old := u.session(userID)
	fresh := studiodomain.NewGenerateSession(old.Generation + 1)
	u.sessions[userID] = fresh
	return snapshotGenerate(fresh)
}

func (u *generateUsecase) State(userID string) *studiodomain.GenerateSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	return snapshotGenerate(u.session(userID))
}
