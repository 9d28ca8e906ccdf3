package hpweb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func consumable(label string, level int) string {
	return fmt.Sprintf(`<ccdyn:ConsumableInfo>
		<dd:ConsumableLabelCode>%s</dd:ConsumableLabelCode>
		<dd:ConsumableTypeEnum>ink</dd:ConsumableTypeEnum>
		<dd:ConsumablePercentageLevelRemaining>%d</dd:ConsumablePercentageLevelRemaining>
	</ccdyn:ConsumableInfo>`, label, level)
}

func document(consumables ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><ccdyn:ConsumableConfigDyn>` +
		strings.Join(consumables, "\n") + `</ccdyn:ConsumableConfigDyn>`
}

func TestParseIndividualCartridges(t *testing.T) {
	is := is.New(t)

	levels := ParseConsumables(document(
		consumable("K", 40),
		consumable("C", 81),
		consumable("M", 83),
		consumable("Y", 89),
	))

	is.Equal(*levels.Black, 40)
	is.Equal(*levels.Cyan, 81)
	is.Equal(*levels.Magenta, 83)
	is.Equal(*levels.Yellow, 89)
}

func TestParseCombinedCMYReservoir(t *testing.T) {
	is := is.New(t)

	levels := ParseConsumables(document(
		consumable("K", 40),
		consumable("CMY", 75),
	))

	is.Equal(*levels.Black, 40)
	is.Equal(*levels.Cyan, 75)
	is.Equal(*levels.Magenta, 75)
	is.Equal(*levels.Yellow, 75)
}

func TestFirstOccurrenceWins(t *testing.T) {
	is := is.New(t)

	// cartridge first, secondary tank second
	levels := ParseConsumables(document(
		consumable("K", 40),
		consumable("K", 95),
		consumable("CMY", 75),
		consumable("C", 12),
	))

	is.Equal(*levels.Black, 40)
	is.Equal(*levels.Cyan, 75)
}

func TestUnknownLabelsAreIgnored(t *testing.T) {
	is := is.New(t)

	levels := ParseConsumables(document(
		consumable("WASTE", 50),
		consumable("K", 40),
	))

	is.Equal(*levels.Black, 40)
	is.True(levels.Cyan == nil)
}

func TestBlockWithoutLevelDoesNotShiftPairs(t *testing.T) {
	is := is.New(t)

	broken := `<dd:ConsumableLabelCode>K</dd:ConsumableLabelCode>` + consumable("C", 81)

	levels := ParseConsumables(document(broken))

	is.True(levels.Black == nil)
	is.Equal(*levels.Cyan, 81)
}

func TestUnparsableDocumentYieldsAllUnknown(t *testing.T) {
	is := is.New(t)

	levels := ParseConsumables("<html><body>404 not found</body></html>")
	is.True(levels.Empty())
}

func TestFetchInkLevels(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/DevMgmt/ConsumableConfigDyn.xml")
		fmt.Fprint(w, document(consumable("K", 40), consumable("CMY", 75)))
	}))
	defer srv.Close()

	client := NewClient()

	levels, err := client.FetchInkLevels(context.Background(), strings.TrimPrefix(srv.URL, "http://"))
	is.NoErr(err)
	is.Equal(*levels.Black, 40)
	is.Equal(*levels.Yellow, 75)
}

func TestFetchInkLevelsUnavailable(t *testing.T) {
	is := is.New(t)

	client := NewClient()

	_, err := client.FetchInkLevels(context.Background(), "127.0.0.1:1")
	is.True(errors.Is(err, ErrFallbackUnavailable))
}

func TestFetchInkLevelsBadStatus(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient()

	_, err := client.FetchInkLevels(context.Background(), strings.TrimPrefix(srv.URL, "http://"))
	is.True(errors.Is(err, ErrFallbackUnavailable))
}
