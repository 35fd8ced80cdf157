package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/optcg"
	"github.com/fwojciec/optcg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFilename(t *testing.T) {
	t.Parallel()

	t.Run("takes the last path segment", func(t *testing.T) {
		t.Parallel()

		name, err := fs.ImageFilename("../images/cardlist/card/OP01-001.png")
		require.NoError(t, err)
		assert.Equal(t, "OP01-001.png", name)
	})

	t.Run("strips the query string", func(t *testing.T) {
		t.Parallel()

		name, err := fs.ImageFilename("../images/cardlist/card/OP01-001.png?241004")
		require.NoError(t, err)
		assert.Equal(t, "OP01-001.png", name)
	})

	t.Run("rejects a URL without a path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ImageFilename("OP01-001.png")
		assert.Equal(t, optcg.EINVALID, optcg.ErrorCode(err))
	})

	t.Run("rejects a URL ending in a slash", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ImageFilename("../images/cardlist/card/")
		assert.Equal(t, optcg.EINVALID, optcg.ErrorCode(err))
	})
}

func TestStore_Packs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("saves and finds packs", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "en")
		packs := []*optcg.Pack{
			{ID: "569101", RawTitle: "ROMANCE DAWN [OP-01]", TitleParts: optcg.DecomposeTitle("ROMANCE DAWN [OP-01]")},
			{ID: "569102", RawTitle: "PARAMOUNT WAR [OP-02]", TitleParts: optcg.DecomposeTitle("PARAMOUNT WAR [OP-02]")},
		}
		require.NoError(t, store.SavePacks(ctx, packs))

		got, err := store.FindPacks(ctx)
		require.NoError(t, err)
		assert.Equal(t, packs, got)

		pack, err := store.FindPackByID(ctx, "569102")
		require.NoError(t, err)
		assert.Equal(t, packs[1], pack)
	})

	t.Run("finding before any save is not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "en")
		_, err := store.FindPacks(ctx)
		assert.Equal(t, optcg.ENOTFOUND, optcg.ErrorCode(err))
	})

	t.Run("finding an unknown pack ID is not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "en")
		require.NoError(t, store.SavePacks(ctx, []*optcg.Pack{{ID: "569101", RawTitle: "ROMANCE DAWN"}}))

		_, err := store.FindPackByID(ctx, "999999")
		assert.Equal(t, optcg.ENOTFOUND, optcg.ErrorCode(err))
	})

	t.Run("rejects an invalid pack", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "en")
		err := store.SavePacks(ctx, []*optcg.Pack{{ID: "", RawTitle: "x"}})
		assert.Equal(t, optcg.EINVALID, optcg.ErrorCode(err))
	})
}

func TestStore_Cards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("saves and finds cards per pack", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "en")
		cost := 4
		cards := []*optcg.Card{{
			ID:       "OP01-001",
			PackID:   "569101",
			Name:     "Roronoa Zoro",
			Rarity:   optcg.RarityLeader,
			Category: optcg.CategoryLeader,
			ImgURL:   "../images/cardlist/card/OP01-001.png",
			Colors:   []optcg.Color{optcg.ColorRed},
			Cost:     &cost,
			Effect:   "[DON!! x1] [Your Turn] All of your Characters gain +1000 power.",
		}}
		require.NoError(t, store.SaveCards(ctx, "569101", cards))

		got, err := store.FindCardsByPack(ctx, "569101")
		require.NoError(t, err)
		assert.Equal(t, cards, got)

		_, err = store.FindCardsByPack(ctx, "569102")
		assert.Equal(t, optcg.ENOTFOUND, optcg.ErrorCode(err))
	})

	t.Run("rejects an empty pack ID", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "en")
		err := store.SaveCards(ctx, "", nil)
		assert.Equal(t, optcg.EINVALID, optcg.ErrorCode(err))
	})
}

func TestStore_SaveImage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes under the locale's images dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir, "jp")
		card := &optcg.Card{ID: "OP01-001", PackID: "569101", Name: "Roronoa Zoro",
			ImgURL: "../images/cardlist/card/OP01-001.png?241004"}

		require.NoError(t, store.SaveImage(ctx, card, []byte("png-bytes")))

		data, err := os.ReadFile(filepath.Join(dir, "jp", "images", "OP01-001.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("rejects a card with an unusable image URL", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir(), "jp")
		card := &optcg.Card{ID: "OP01-001", PackID: "569101", Name: "Roronoa Zoro", ImgURL: "nopath"}
		err := store.SaveImage(ctx, card, []byte("x"))
		assert.Equal(t, optcg.EINVALID, optcg.ErrorCode(err))
	})
}
