package hpweb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrFallbackUnavailable means the device web endpoint could not be fetched.
// An unparsable document is NOT an error: it degrades to an all-unknown
// result so the fallback path can never take a poll cycle down.
var ErrFallbackUnavailable = errors.New("fallback endpoint unavailable")

const (
	consumablePath = "/DevMgmt/ConsumableConfigDyn.xml"
	defaultTimeout = 10 * time.Second
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// InkLevels holds percentage-remaining per color. Nil means the document did
// not report that color.
type InkLevels struct {
	Black   *int
	Cyan    *int
	Magenta *int
	Yellow  *int
}

func (l InkLevels) Empty() bool {
	return l.Black == nil && l.Cyan == nil && l.Magenta == nil && l.Yellow == nil
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientWithTimeout(defaultTimeout)
}

func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchInkLevels requests the device consumable document and extracts the
// percentage remaining per color.
func (c *Client) FetchInkLevels(ctx context.Context, addr string) (InkLevels, error) {
	url := fmt.Sprintf("http://%s%s", addr, consumablePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return InkLevels{}, fmt.Errorf("%w: %s", ErrFallbackUnavailable, err.Error())
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return InkLevels{}, fmt.Errorf("%w: %s", ErrFallbackUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return InkLevels{}, fmt.Errorf("%w: unexpected status %d", ErrFallbackUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return InkLevels{}, fmt.Errorf("%w: %s", ErrFallbackUnavailable, err.Error())
	}

	return ParseConsumables(string(body)), nil
}

const labelMarker = "<dd:ConsumableLabelCode>"

var (
	labelRe = regexp.MustCompile(`^([^<]+)</dd:ConsumableLabelCode>`)
	levelRe = regexp.MustCompile(`<dd:ConsumablePercentageLevelRemaining>([^<]+)</dd:ConsumablePercentageLevelRemaining>`)
)

// ParseConsumables extracts (label, percentage) pairs per consumable block,
// in document order. The document is split at every label marker so a block
// missing its level can never borrow one from a later block. The first
// occurrence of a color wins (a cartridge is listed before its tank), a
// combined CMY reservoir fills any color not already set by an individual
// code, and unknown labels are ignored.
func ParseConsumables(document string) InkLevels {
	levels := InkLevels{}

	blocks := strings.Split(document, labelMarker)

	for _, block := range blocks[1:] {
		labelMatch := labelRe.FindStringSubmatch(block)
		if labelMatch == nil {
			continue
		}
		label := labelMatch[1]

		levelMatch := levelRe.FindStringSubmatch(block)
		if levelMatch == nil {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(levelMatch[1]))
		if err != nil {
			n = 0
		}
		level := n

		switch label {
		case "K":
			if levels.Black == nil {
				levels.Black = &level
			}
		case "C":
			if levels.Cyan == nil {
				levels.Cyan = &level
			}
		case "M":
			if levels.Magenta == nil {
				levels.Magenta = &level
			}
		case "Y":
			if levels.Yellow == nil {
				levels.Yellow = &level
			}
		case "CMY":
			if levels.Cyan == nil {
				levels.Cyan = &level
			}
			if levels.Magenta == nil {
				levels.Magenta = &level
			}
			if levels.Yellow == nil {
				levels.Yellow = &level
			}
		}
	}

	return levels
}
