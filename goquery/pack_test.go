package goquery_test

import (
	"testing"

	"github.com/fwojciec/optcg"
	optgoquery "github.com/fwojciec/optcg/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packListPage = `<!DOCTYPE html><html><body>
<div class="seriesCol">
<select id="series" name="series">
<option value="">ALL</option>
<option value="569101">BOOSTER PACK&lt;br class="br01"&gt; -ROMANCE DAWN- [OP-01]</option>
<option value="569102">-PARAMOUNT WAR- [OP-02]</option>
<option value="569901">PROMOTION CARDS</option>
</select>
</div>
</body></html>`

func TestParsePacks(t *testing.T) {
	t.Parallel()

	t.Run("extracts packs with decomposed titles", func(t *testing.T) {
		t.Parallel()

		doc, err := optgoquery.NewDocument(packListPage)
		require.NoError(t, err)

		packs, err := optgoquery.ParsePacks(doc)
		require.NoError(t, err)
		require.Len(t, packs, 3)

		assert.Equal(t, "569101", packs[0].ID)
		assert.Equal(t, "BOOSTER PACK -ROMANCE DAWN- [OP-01]", packs[0].RawTitle)
		require.NotNil(t, packs[0].TitleParts.Prefix)
		assert.Equal(t, "BOOSTER PACK", *packs[0].TitleParts.Prefix)
		assert.Equal(t, "ROMANCE DAWN", packs[0].TitleParts.Title)
		require.NotNil(t, packs[0].TitleParts.Label)
		assert.Equal(t, "OP-01", *packs[0].TitleParts.Label)

		assert.Equal(t, "569102", packs[1].ID)
		assert.Nil(t, packs[1].TitleParts.Prefix)
		assert.Equal(t, "PARAMOUNT WAR", packs[1].TitleParts.Title)

		assert.Equal(t, "569901", packs[2].ID)
		assert.Equal(t, "PROMOTION CARDS", packs[2].TitleParts.Title)
		assert.Nil(t, packs[2].TitleParts.Label)
	})

	t.Run("excludes the all-packs sentinel option", func(t *testing.T) {
		t.Parallel()

		doc, err := optgoquery.NewDocument(packListPage)
		require.NoError(t, err)

		packs, err := optgoquery.ParsePacks(doc)
		require.NoError(t, err)
		for _, p := range packs {
			assert.NotEmpty(t, p.ID)
		}
	})

	t.Run("page without the selector yields no packs", func(t *testing.T) {
		t.Parallel()

		doc, err := optgoquery.NewDocument(`<html><body><p>maintenance</p></body></html>`)
		require.NoError(t, err)

		packs, err := optgoquery.ParsePacks(doc)
		require.NoError(t, err)
		assert.Empty(t, packs)
	})
}

func TestParseCardIDs(t *testing.T) {
	t.Parallel()

	t.Run("extracts IDs in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := optgoquery.NewDocument(`<html><body><div class="resultCol">
<a href="" data-src="#OP01-001"><img src="spacer.gif"></a>
<a href="" data-src="#OP01-002"><img src="spacer.gif"></a>
<a href="" data-src="#OP01-003"><img src="spacer.gif"></a>
</div></body></html>`)
		require.NoError(t, err)

		ids, err := optgoquery.ParseCardIDs(doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"OP01-001", "OP01-002", "OP01-003"}, ids)
	})

	t.Run("link without data-src is missing an attribute", func(t *testing.T) {
		t.Parallel()

		doc, err := optgoquery.NewDocument(`<html><body><div class="resultCol">
<a href="#OP01-001"><img src="spacer.gif"></a>
</div></body></html>`)
		require.NoError(t, err)

		_, err = optgoquery.ParseCardIDs(doc)
		assert.Equal(t, optcg.ENOATTR, optcg.ErrorCode(err))
	})
}
