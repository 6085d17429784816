package usecase

import (
	"context"
	"sync"
	"testing"

	creditrepo "sellshot-backend/internal/credits/repository"
	creditusecase "sellshot-backend/internal/credits/usecase"
	galleryrepo "sellshot-backend/internal/gallery/repository"
	galleryusecase "sellshot-backend/internal/gallery/usecase"
	"sellshot-backend/pkg/store"
)

// fakeImageService is a scriptable ai.ImageService. Call counters let tests
// assert that denied or discarded actions never reached the gateway.
type fakeImageService struct {
	mu sync.Mutex

	analyzeFn  func(ctx context.Context, image string) ([]string, error)
	editFn     func(ctx context.Context, image, instruction string) (string, error)
	generateFn func(ctx context.Context, prompt string) (string, error)

	analyzeCalls  int
	editCalls     int
	editInputs    []string
	generateCalls int
}

func (f *fakeImageService) Analyze(ctx context.Context, image string) ([]string, error) {
	f.mu.Lock()
	f.analyzeCalls++
	fn := f.analyzeFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, image)
	}
	return []string{"Place on a white background", "Add soft studio lighting"}, nil
}

func (f *fakeImageService) Edit(ctx context.Context, image, instruction string) (string, error) {
	f.mu.Lock()
	f.editCalls++
	f.editInputs = append(f.editInputs, image)
	fn := f.editFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, image, instruction)
	}
	return "edited:" + instruction, nil
}

func (f *fakeImageService) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.generateCalls++
	fn := f.generateFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, prompt)
	}
	return "generated:" + prompt, nil
}

func (f *fakeImageService) counts() (analyze, edit, generate int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analyzeCalls, f.editCalls, f.generateCalls
}

// studioEnv wires usecases against in-memory persistence with only the AI
// gateway faked.
type studioEnv struct {
	service *fakeImageService
	credits creditusecase.CreditGate
	gallery galleryusecase.GalleryUsecase
}

func newStudioEnv(t *testing.T, startingCredits int) *studioEnv {
	t.Helper()
	s := store.NewMemoryStore()
	return &studioEnv{
		service: &fakeImageService{},
		credits: creditusecase.NewCreditUsecase(creditrepo.NewStoreCreditRepository(s, startingCredits)),
		gallery: galleryusecase.NewGalleryUsecase(galleryrepo.NewStoreGalleryRepository(s)),
	}
}

func (e *studioEnv) creditsLeft(t *testing.T, userID string) int {
	t.Helper()
	balance, err := e.credits.Balance(userID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	return balance.Credits
}
