package scrape_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/optcg"
	"github.com/fwojciec/optcg/mock"
	"github.com/fwojciec/optcg/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://en.example.test"

func enLocale() *optcg.Locale {
	return &optcg.Locale{
		Hostname: "en.example.test",
		Colors: map[string]string{
			"red": "Red", "green": "Green", "blue": "Blue",
			"purple": "Purple", "black": "Black", "yellow": "Yellow",
		},
		Attributes: map[string]string{
			"slash": "Slash", "strike": "Strike", "ranged": "Ranged",
			"special": "Special", "wisdom": "Wisdom",
		},
		Categories: map[string]string{
			"leader": "LEADER", "character": "CHARACTER", "event": "EVENT",
			"stage": "STAGE", "don": "DON!!",
		},
		Rarities: map[string]string{
			"common": "C", "uncommon": "UC", "rare": "R", "super_rare": "SR",
			"secret_rare": "SEC", "leader": "L", "special": "SP CARD",
			"treasure_rare": "TR", "promo": "P",
		},
	}
}

const packListPage = `<html><body>
<div class="seriesCol"><select id="series">
<option value="">ALL</option>
<option value="569101">BOOSTER PACK -ROMANCE DAWN- [OP-01]</option>
</select></div>
</body></html>`

const cardListPage = `<html><body>
<div class="resultCol">
<a href="" data-src="#OP01-001"></a>
<a href="" data-src="#OP01-002"></a>
</div>
<dl id="OP01-001">
 <dt>
  <div class="infoCol"><span>OP01-001</span><span>L</span><span>LEADER</span></div>
  <div class="cardName">Roronoa Zoro</div>
 </dt>
 <dd>
  <div class="frontCol"><img src="spacer.gif" data-src="../images/cardlist/card/OP01-001.png" alt=""></div>
  <div class="backCol">
   <div class="col2">
    <div class="cost"><h3>Life</h3>4</div>
    <div class="attribute"><img src="ico.png" alt="Slash"></div>
   </div>
   <div class="col2">
    <div class="power"><h3>Power</h3>5000</div>
    <div class="counter"><h3>Counter</h3>-</div>
   </div>
   <div class="color"><h3>Color</h3>Red</div>
   <div class="feature"><h3>Type</h3>Straw Hat Crew</div>
   <div class="text"><h3>Effect</h3>Effect text.</div>
  </div>
 </dd>
</dl>
<dl id="OP01-002">
 <dt>
  <div class="infoCol"><span>OP01-002</span><span>R</span><span>CHARACTER</span></div>
  <div class="cardName">Nami</div>
 </dt>
 <dd>
  <div class="frontCol"><img src="spacer.gif" data-src="../images/cardlist/card/OP01-002.png" alt=""></div>
  <div class="backCol">
   <div class="col2">
    <div class="cost"><h3>Cost</h3>broken</div>
   </div>
   <div class="col2">
    <div class="power"><h3>Power</h3>3000</div>
    <div class="counter"><h3>Counter</h3>1000</div>
   </div>
   <div class="color"><h3>Color</h3>Red</div>
   <div class="feature"><h3>Type</h3>Straw Hat Crew</div>
   <div class="text"><h3>Effect</h3>Effect text.</div>
  </div>
 </dd>
</dl>
</body></html>`

func TestScraper_FetchPacks(t *testing.T) {
	t.Parallel()

	t.Run("requests the unfiltered card list", func(t *testing.T) {
		t.Parallel()

		var fetched string
		s := &scrape.Scraper{
			BaseURL: baseURL,
			Locale:  enLocale(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return packListPage, nil
				},
			},
		}

		packs, err := s.FetchPacks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, baseURL+"/cardlist", fetched)
		require.Len(t, packs, 1)
		assert.Equal(t, "569101", packs[0].ID)
	})

	t.Run("waits for the rate limiter per request", func(t *testing.T) {
		t.Parallel()

		var waited []string
		s := &scrape.Scraper{
			BaseURL: baseURL,
			Locale:  enLocale(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return packListPage, nil
				},
			},
			Limiter: &mock.Limiter{
				WaitFn: func(_ context.Context, domain string) error {
					waited = append(waited, domain)
					return nil
				},
			},
		}

		_, err := s.FetchPacks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"en.example.test"}, waited)
	})
}

func TestScraper_FetchCards(t *testing.T) {
	t.Parallel()

	t.Run("filters the card list to one pack", func(t *testing.T) {
		t.Parallel()

		var fetched string
		s := &scrape.Scraper{
			BaseURL: baseURL,
			Locale:  enLocale(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return cardListPage, nil
				},
			},
		}

		_, err := s.FetchCards(context.Background(), "569101", nil)
		require.NoError(t, err)
		assert.Equal(t, baseURL+"/cardlist?series=569101", fetched)
	})

	t.Run("skips a failed card and reports it through progress", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			BaseURL: baseURL,
			Locale:  enLocale(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return cardListPage, nil
				},
			},
		}

		var seen []optcg.CardProgress
		cards, err := s.FetchCards(context.Background(), "569101", func(p optcg.CardProgress) {
			seen = append(seen, p)
		})
		require.NoError(t, err)

		// OP01-002 has a malformed cost and must not abort OP01-001.
		require.Len(t, cards, 1)
		assert.Equal(t, "OP01-001", cards[0].ID)

		require.Len(t, seen, 2)
		assert.Equal(t, "OP01-001", seen[0].CardID)
		assert.NoError(t, seen[0].Err)
		assert.Equal(t, 1, seen[0].Completed)
		assert.Equal(t, 2, seen[0].Total)
		assert.Equal(t, "OP01-002", seen[1].CardID)
		assert.Equal(t, optcg.EMALFORMED, optcg.ErrorCode(seen[1].Err))
		assert.Equal(t, 2, seen[1].Completed)
	})

	t.Run("resolves the full image URL against the base URL", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			BaseURL: baseURL,
			Locale:  enLocale(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return cardListPage, nil
				},
			},
		}

		cards, err := s.FetchCards(context.Background(), "569101", nil)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		require.NotNil(t, cards[0].ImgFullURL)
		assert.Equal(t, baseURL+"/images/cardlist/card/OP01-001.png", *cards[0].ImgFullURL)
	})
}

func TestScraper_DownloadImage(t *testing.T) {
	t.Parallel()

	t.Run("prefers the stored full URL", func(t *testing.T) {
		t.Parallel()

		full := "https://cdn.example.test/OP01-001.png"
		var fetched string
		s := &scrape.Scraper{
			BaseURL: baseURL,
			Fetcher: &mock.Fetcher{
				FetchBytesFn: func(_ context.Context, url string) ([]byte, error) {
					fetched = url
					return []byte("png"), nil
				},
			},
		}

		card := &optcg.Card{ID: "OP01-001", ImgURL: "../images/cardlist/card/OP01-001.png", ImgFullURL: &full}
		data, err := s.DownloadImage(context.Background(), card)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), data)
		assert.Equal(t, full, fetched)
	})

	t.Run("derives the full URL when none is stored", func(t *testing.T) {
		t.Parallel()

		var fetched string
		s := &scrape.Scraper{
			BaseURL: baseURL,
			Fetcher: &mock.Fetcher{
				FetchBytesFn: func(_ context.Context, url string) ([]byte, error) {
					fetched = url
					return []byte("png"), nil
				},
			},
		}

		card := &optcg.Card{ID: "OP01-001", ImgURL: "../images/cardlist/card/OP01-001.png"}
		_, err := s.DownloadImage(context.Background(), card)
		require.NoError(t, err)
		assert.Equal(t, baseURL+"/images/cardlist/card/OP01-001.png", fetched)
	})
}

func TestDownloadImages(t *testing.T) {
	t.Parallel()

	cards := []*optcg.Card{
		{ID: "OP01-001", ImgURL: "../images/cardlist/card/OP01-001.png"},
		{ID: "OP01-002", ImgURL: "../images/cardlist/card/OP01-002.png"},
		{ID: "OP01-003", ImgURL: "../images/cardlist/card/OP01-003.png"},
	}

	t.Run("downloads and saves every image", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		saved := map[string][]byte{}

		scraper := &mock.Scraper{
			DownloadImageFn: func(_ context.Context, card *optcg.Card) ([]byte, error) {
				return []byte("png:" + card.ID), nil
			},
		}
		writer := &mock.ImageWriter{
			SaveImageFn: func(_ context.Context, card *optcg.Card, data []byte) error {
				mu.Lock()
				defer mu.Unlock()
				saved[card.ID] = data
				return nil
			},
		}

		n, err := scrape.DownloadImages(context.Background(), scraper, writer, cards, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		require.Len(t, saved, 3)
		assert.Equal(t, []byte("png:OP01-002"), saved["OP01-002"])
	})

	t.Run("a failed download surfaces with the card ID", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			DownloadImageFn: func(_ context.Context, card *optcg.Card) ([]byte, error) {
				if card.ID == "OP01-002" {
					return nil, optcg.Errorf(optcg.EINTERNAL, "boom")
				}
				return []byte("png"), nil
			},
		}
		writer := &mock.ImageWriter{
			SaveImageFn: func(_ context.Context, _ *optcg.Card, _ []byte) error {
				return nil
			},
		}

		_, err := scrape.DownloadImages(context.Background(), scraper, writer, cards, 1)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "OP01-002"))
	})
}
