package usecase

import (
	"testing"

	gallerydomain "sellshot-backend/internal/gallery/domain"
	"sellshot-backend/internal/gallery/repository"
	"sellshot-backend/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

func newTestGallery(t *testing.T) GalleryUsecase {
	t.Helper()
	return NewGalleryUsecase(repository.NewStoreGalleryRepository(store.NewMemoryStore()))
}

func appendItems(t *testing.T, g GalleryUsecase, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := g.Append(testUser, gallerydomain.Item{
			ID:   id,
			Src:  "data:image/png;base64,AAAA",
			Type: gallerydomain.ItemTypeGenerated,
		})
		require.NoError(t, err)
	}
}

func listIDs(t *testing.T, g GalleryUsecase) []string {
	t.Helper()
	items, err := g.List(testUser)
	require.NoError(t, err)
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestGallery_EmptyList(t *testing.T) {
	g := newTestGallery(t)

	items, err := g.List(testUser)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGallery_AppendPrepends(t *testing.T) {
	g := newTestGallery(t)

	appendItems(t, g, "a", "b", "c")

	assert.Equal(t, []string{"c", "b", "a"}, listIDs(t, g))
}

func TestGallery_AppendAssignsID(t *testing.T) {
	g := newTestGallery(t)

	item, err := g.Append(testUser, gallerydomain.Item{
		Src:    "data:image/png;base64,AAAA",
		Prompt: "white background",
		Type:   gallerydomain.ItemTypeEdited,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	got, err := g.Get(testUser, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "white background", got.Prompt)
}

func TestGallery_RemoveKeepsOrder(t *testing.T) {
	g := newTestGallery(t)

	appendItems(t, g, "a", "b", "c", "d")

	require.NoError(t, g.Remove(testUser, "c"))
	assert.Equal(t, []string{"d", "b", "a"}, listIDs(t, g))
}

func TestGallery_RemoveUnknownID(t *testing.T) {
	g := newTestGallery(t)

	appendItems(t, g, "a", "b")

	require.NoError(t, g.Remove(testUser, "nope"))
	assert.Equal(t, []string{"b", "a"}, listIDs(t, g))
}

func TestGallery_GetMissing(t *testing.T) {
	g := newTestGallery(t)

	got, err := g.Get(testUser, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}
